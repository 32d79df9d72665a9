// This file maps OpenAPI type/format pairs to Go types.

package gen

// stringGoType maps an OpenAPI string format to a Go type.
func stringGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "date", "time":
		// Calendar values without a canonical Go mapping stay strings.
		return "string"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

// integerGoType maps an OpenAPI integer format to a Go type.
func integerGoType(format string) string {
	switch format {
	case "int32":
		return "int32"
	default:
		return "int64"
	}
}

// numberGoType maps an OpenAPI number format to a Go type.
func numberGoType(format string) string {
	switch format {
	case "float":
		return "float32"
	default:
		return "float64"
	}
}

// isRequired reports whether name appears in the schema's required list.
func isRequired(required []string, name string) bool {
	for _, r := range required {
		if r == name {
			return true
		}
	}
	return false
}

// strVal dereferences an optional string, returning "" when absent.
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
