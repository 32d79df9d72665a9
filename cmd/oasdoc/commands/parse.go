package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Full  bool
	Quiet bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.Full, "full", false, "output the complete decoded document to stdout in its source format")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress the summary header")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress the summary header")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc parse [flags] <file|url|->\n\n")
		Writef(output, "Decode an OpenAPI document into its typed structure. The whole document must\n")
		Writef(output, "decode; any structural mismatch fails with the path to the offending field.\n\n")
		Writef(output, "The summary header goes to stderr; --full writes the document to stdout so the\n")
		Writef(output, "two streams can be separated in pipelines.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc parse openapi.yaml\n")
		Writef(output, "  oasdoc parse --full openapi.yaml\n")
		Writef(output, "  oasdoc parse https://example.com/api/openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasdoc parse -q --full -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
		Writef(output, "  2    Usage error\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return Usagef("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	doc, err := oasdoc.Load(SourceOptions(specPath)...)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if !flags.Quiet {
		OutputSpecHeader(specPath, doc.Version())
		OutputSpecStats(doc.SourceSize(), doc.Stats(), doc.LoadTime())
		if v2, ok := doc.V2(); ok && v2.Info != nil {
			Writef(os.Stderr, "Title: %s\n", v2.Info.Title)
			Writef(os.Stderr, "Version: %s\n", v2.Info.Version)
		}
		if v3, ok := doc.V3(); ok {
			if v3.Info != nil {
				Writef(os.Stderr, "Title: %s\n", v3.Info.Title)
				Writef(os.Stderr, "Version: %s\n", v3.Info.Version)
			}
			Writef(os.Stderr, "Servers: %d\n", len(v3.Servers))
		}
	}

	if flags.Full {
		data, err := MarshalDocument(doc)
		if err != nil {
			return fmt.Errorf("marshaling document: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}
