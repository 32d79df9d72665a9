package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasdoc"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Quiet bool
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: print only the declared version and format")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: print only the declared version and format")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc detect [flags] <file|url|->\n\n")
		Writef(output, "Report which OpenAPI version a document declares and which serialization\n")
		Writef(output, "format it carries, without decoding the document structure.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc detect openapi.yaml\n")
		Writef(output, "  oasdoc detect https://example.com/api/openapi.json\n")
		Writef(output, "  cat openapi.yaml | oasdoc detect -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Detection successful\n")
		Writef(output, "  1    Detection failed\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("detect command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	result, err := oasdoc.Detect(SourceOptions(specPath)...)
	if err != nil {
		return fmt.Errorf("detecting document: %w", err)
	}

	if flags.Quiet {
		fmt.Printf("%s %s\n", result.Version, result.Format)
		return nil
	}

	fmt.Printf("oasdoc version: %s\n", oasdoc.Version())
	fmt.Printf("Specification: %s\n", FormatSpecPath(specPath))
	fmt.Printf("Declared Version: %s\n", result.Version)
	fmt.Printf("OAS Version: %s\n", result.OASVersion)
	fmt.Printf("Format: %s\n", result.Format)
	fmt.Printf("Source Size: %s\n", oasdoc.FormatBytes(result.SourceSize))
	return nil
}
