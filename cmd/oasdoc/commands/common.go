// Package commands provides CLI command handlers for oasdoc.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oasdoc"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// UsageError marks a failure caused by bad command-line arguments.
// main exits with status 2 for usage errors and 1 for everything else.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return Usagef("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// SourceOptions translates a CLI source argument into load options.
// StdinFilePath selects stdin; anything else is a file path or URL.
func SourceOptions(specPath string) []oasdoc.Option {
	if specPath == StdinFilePath {
		return []oasdoc.Option{oasdoc.WithReader(os.Stdin), oasdoc.WithSourceName("<stdin>")}
	}
	return []oasdoc.Option{oasdoc.WithFilePath(specPath)}
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath, inputPath string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != StdinFilePath {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// MarshalDocument renders the decoded document in its source serialization format.
func MarshalDocument(doc *oasdoc.Doc) ([]byte, error) {
	var tree any
	if v2, ok := doc.V2(); ok {
		tree = v2
	} else if v3, ok := doc.V3(); ok {
		tree = v3
	}
	if doc.SourceFormat() == oasdoc.SourceFormatJSON {
		return json.MarshalIndent(tree, "", "  ")
	}
	return yaml.Marshal(tree)
}

// FormatSpecPath returns a display-friendly path for the document source.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader outputs the common document header to stderr.
// This includes oasdoc version, document source, and OAS version.
func OutputSpecHeader(specPath, version string) {
	Writef(os.Stderr, "oasdoc version: %s\n", oasdoc.Version())
	Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(os.Stderr, "OAS Version: %s\n", version)
}

// OutputSpecStats outputs the common document statistics to stderr.
// This includes source size, path count, operation count, schema count, and load time.
func OutputSpecStats(sourceSize int64, stats oasdoc.DocumentStats, loadTime time.Duration) {
	Writef(os.Stderr, "Source Size: %s\n", oasdoc.FormatBytes(sourceSize))
	Writef(os.Stderr, "Paths: %d\n", stats.PathCount)
	Writef(os.Stderr, "Operations: %d\n", stats.OperationCount)
	Writef(os.Stderr, "Schemas: %d\n", stats.SchemaCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}
