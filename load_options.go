package oasdoc

import (
	"io"
	"net/http"

	"github.com/erraggy/oasdoc/internal/options"
	"github.com/erraggy/oasdoc/oaserrors"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	str      *string

	// Configuration options
	logger     Logger
	userAgent  string
	httpClient *http.Client

	// Resource limits
	maxDepth      int   // decode nesting ceiling; 0 means the default (100)
	maxSourceSize int64 // input size cap in bytes; 0 means unlimited

	// Source identification
	sourceName *string // Override SourceName in the result
}

// log returns the configured logger, or a no-op logger if none is set.
func (cfg *loadConfig) log() Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return NopLogger{}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		userAgent: UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"oasdoc: must specify an input source (use WithFilePath, WithBytes, WithString, or WithReader)",
		"oasdoc: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.str != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDecodeOptions applies option functions for the version-pinned decode
// entry points, which receive their input directly rather than via a source
// option.
func applyDecodeOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		userAgent: UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.filePath != nil || cfg.reader != nil || cfg.bytes != nil || cfg.str != nil {
		return nil, &oaserrors.ConfigError{
			Message: "input source options are not accepted here; pass the document bytes directly",
		}
	}

	return cfg, nil
}

// WithFilePath specifies a file path or http(s) URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithString specifies a string as the input source
func WithString(s string) Option {
	return func(cfg *loadConfig) error {
		cfg.str = &s
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithLogger sets a structured logger for debug output during loading.
// By default, no logging is performed (nil logger).
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
//
// Example:
//
//	logger := oasdoc.NewSlogAdapter(slog.Default())
//	doc, err := oasdoc.Load(
//	    oasdoc.WithFilePath("api.yaml"),
//	    oasdoc.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth for the structural decoder.
// This prevents stack exhaustion from deeply nested (but syntactically valid)
// documents; exceeding the ceiling surfaces as a SchemaError.
// A value of 0 means use the default (100).
// Returns a ConfigError if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(cfg *loadConfig) error {
		if depth < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxDepth", Value: depth, Message: "depth cannot be negative"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxSourceSize sets the maximum input size in bytes.
// Inputs larger than the cap fail with an IOError before any parsing.
// A value of 0 means unlimited.
// Returns a ConfigError if size is negative.
func WithMaxSourceSize(size int64) Option {
	return func(cfg *loadConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxSourceSize", Value: size, Message: "size cannot be negative"}
		}
		cfg.maxSourceSize = size
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is particularly useful when loading from bytes or a reader, where the
// default names ("FromBytes.json", "FromReader.yaml") are not descriptive.
// The name is used in error messages and diagnostic output.
//
// Example:
//
//	doc, err := oasdoc.Load(
//	    oasdoc.WithBytes(data),
//	    oasdoc.WithSourceName("users-api"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "WithSourceName", Message: "source name cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URL sources.
// When set, the client is used as-is for all HTTP requests; configure TLS,
// proxies, and timeouts on the client's transport.
//
// If the client is nil, this option has no effect (default client is used).
//
// Example with custom timeout:
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	doc, err := oasdoc.FromPath("https://example.com/api.yaml",
//	    oasdoc.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "oasdoc/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *loadConfig) error {
		cfg.userAgent = ua
		return nil
	}
}
