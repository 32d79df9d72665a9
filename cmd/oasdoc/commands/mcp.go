package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdoc/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc mcp\n\n")
		Writef(output, "Run a Model Context Protocol server over stdio exposing the detect, parse,\n")
		Writef(output, "and generate_types tools. The server runs until the client disconnects or\n")
		Writef(output, "the process receives an interrupt.\n\n")
		Writef(output, "Settings come from OASDOC_* environment variables (cache sizing, TTLs, and\n")
		Writef(output, "size limits); see docs/cli-reference.md.\n\n")
		Writef(output, "Examples:\n")
		Writef(output, "  oasdoc mcp\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &UsageError{Err: err}
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return Usagef("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
