package jsonwire

import "strconv"

// FieldPath joins a parent path and a field or map key with a dot.
// An empty parent yields the key itself, so top-level fields read naturally
// ("info", "paths./pets.get").
func FieldPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// IndexPath appends an array index to a path: "parameters" + 2 -> "parameters[2]".
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
