package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/gen"
)

// GenFlags contains flags for the gen command
type GenFlags struct {
	Package    string
	Output     string
	ValueTypes bool
	Quiet      bool
}

// SetupGenFlags creates and configures a FlagSet for the gen command.
// Returns the FlagSet and a GenFlags struct with bound flag variables.
func SetupGenFlags() (*flag.FlagSet, *GenFlags) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	flags := &GenFlags{}

	fs.StringVar(&flags.Package, "pkg", "api", "package name for the generated file")
	fs.StringVar(&flags.Output, "out", "", "output file path (default stdout)")
	fs.BoolVar(&flags.ValueTypes, "value-types", false, "emit value types instead of pointers for optional properties")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc gen [flags] <file|url|->\n\n")
		Writef(output, "Generate Go type declarations from the named schemas of an OpenAPI document\n")
		Writef(output, "(V2 definitions or V3 components.schemas).\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc gen openapi.yaml\n")
		Writef(output, "  oasdoc gen -pkg models -out models.go openapi.yaml\n")
		Writef(output, "  oasdoc gen --value-types swagger.json\n")
		Writef(output, "  cat openapi.yaml | oasdoc gen -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Generation successful\n")
		Writef(output, "  1    Parsing or generation failed\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleGen executes the gen command
func HandleGen(args []string) error {
	fs, flags := SetupGenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("gen command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	doc, err := oasdoc.Load(SourceOptions(specPath)...)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	opts := gen.DefaultOptions()
	opts.PackageName = flags.Package
	if flags.ValueTypes {
		opts.UsePointers = false
	}

	src, err := gen.Generate(doc, opts)
	if err != nil {
		return fmt.Errorf("generating types: %w", err)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, specPath); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(filepath.Clean(flags.Output)); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Output, src, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s (%s)\n", flags.Output, oasdoc.FormatBytes(int64(len(src))))
		}
	} else {
		// Write to stdout
		if _, err = os.Stdout.Write(src); err != nil {
			return fmt.Errorf("writing generated source to stdout: %w", err)
		}
	}

	return nil
}
