package oasdoc

// DetectResult reports what a document declares about itself, without the
// cost of a full structural decode.
type DetectResult struct {
	// Version is the declared version string ("2.0", "3.0.3", "3.1.0", ...).
	Version string
	// OASVersion is the canonical version constant, or Unknown for 3.x
	// releases this package has no constant for.
	OASVersion OASVersion
	// Format is the serialization format the source was parsed as.
	Format SourceFormat
	// SourceName identifies the input (path, URL, or synthetic name).
	SourceName string
	// SourceSize is the raw input size in bytes.
	SourceSize int64
}

// Detect reads the configured input source and reports which OpenAPI version
// it declares and which serialization format it carries, without decoding the
// document structure. The same input source options as Load apply, and the
// same dispatch rules: a document that declares both discriminants, neither,
// or an unsupported value fails exactly as Load would.
//
// Use Detect to route documents cheaply, then Load only the ones you need:
//
//	res, err := oasdoc.Detect(oasdoc.WithFilePath("api.yaml"))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s (%s)\n", res.Version, res.Format)
func Detect(opts ...Option) (DetectResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return DetectResult{}, err
	}

	data, name, format, _, err := cfg.readSource()
	if err != nil {
		return DetectResult{}, err
	}

	m, err := parseMap(data, name, format)
	if err != nil {
		return DetectResult{}, err
	}

	version, ov, _, err := detectVersion(m)
	if err != nil {
		return DetectResult{}, err
	}

	return DetectResult{
		Version:    version,
		OASVersion: ov,
		Format:     format,
		SourceName: name,
		SourceSize: int64(len(data)),
	}, nil
}
