package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdoc"
)

// StatsFlags contains flags for the stats command
type StatsFlags struct {
	Output string
}

// statsReport is the structured output of the stats command.
type statsReport struct {
	Version        string `json:"version" yaml:"version"`
	OASVersion     string `json:"oas_version" yaml:"oas_version"`
	Format         string `json:"format" yaml:"format"`
	SourceSize     int64  `json:"source_size" yaml:"source_size"`
	PathCount      int    `json:"path_count" yaml:"path_count"`
	OperationCount int    `json:"operation_count" yaml:"operation_count"`
	SchemaCount    int    `json:"schema_count" yaml:"schema_count"`
	LoadTime       string `json:"load_time" yaml:"load_time"`
}

// SetupStatsFlags creates and configures a FlagSet for the stats command.
// Returns the FlagSet and a StatsFlags struct with bound flag variables.
func SetupStatsFlags() (*flag.FlagSet, *StatsFlags) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	flags := &StatsFlags{}

	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc stats [flags] <file|url|->\n\n")
		Writef(output, "Decode an OpenAPI document and report path, operation, and schema counts.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc stats openapi.yaml\n")
		Writef(output, "  oasdoc stats -o json openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasdoc stats -o yaml -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Statistics reported\n")
		Writef(output, "  1    Parsing failed\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleStats executes the stats command
func HandleStats(args []string) error {
	fs, flags := SetupStatsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("stats command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	doc, err := oasdoc.Load(SourceOptions(specPath)...)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	stats := doc.Stats()

	if flags.Output != FormatText {
		report := statsReport{
			Version:        doc.Version(),
			OASVersion:     doc.OASVersion().String(),
			Format:         string(doc.SourceFormat()),
			SourceSize:     doc.SourceSize(),
			PathCount:      stats.PathCount,
			OperationCount: stats.OperationCount,
			SchemaCount:    stats.SchemaCount,
			LoadTime:       doc.LoadTime().String(),
		}
		return OutputStructured(report, flags.Output)
	}

	fmt.Printf("OpenAPI Document Statistics\n")
	fmt.Printf("===========================\n\n")
	fmt.Printf("oasdoc version: %s\n", oasdoc.Version())
	fmt.Printf("Specification: %s\n", FormatSpecPath(specPath))
	fmt.Printf("OAS Version: %s\n", doc.Version())
	fmt.Printf("Format: %s\n", doc.SourceFormat())
	fmt.Printf("Source Size: %s\n", oasdoc.FormatBytes(doc.SourceSize()))
	fmt.Printf("Paths: %d\n", stats.PathCount)
	fmt.Printf("Operations: %d\n", stats.OperationCount)
	fmt.Printf("Schemas: %d\n", stats.SchemaCount)
	fmt.Printf("Load Time: %v\n", doc.LoadTime())
	return nil
}
