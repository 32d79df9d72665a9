package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/cmd/oasdoc/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdoc v%s\n", oasdoc.Version())
	case "help", "-h", "--help":
		printUsage()
	case "detect":
		exitOnError(commands.HandleDetect(os.Args[2:]))
	case "parse":
		exitOnError(commands.HandleParse(os.Args[2:]))
	case "stats":
		exitOnError(commands.HandleStats(os.Args[2:]))
	case "gen":
		exitOnError(commands.HandleGen(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(2)
	}
}

// exitOnError prints the error and exits with status 2 for usage errors
// and 1 for everything else. A nil error is a no-op.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var usage *commands.UsageError
	if errors.As(err, &usage) {
		os.Exit(2)
	}
	os.Exit(1)
}

// commandNames lists every subcommand for typo suggestions.
var commandNames = []string{"detect", "parse", "stats", "gen", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough to suggest.
func suggestCommand(input string) string {
	const maxDistance = 2
	best := ""
	bestDistance := maxDistance + 1
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	if bestDistance > maxDistance {
		return ""
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasdoc - typed OpenAPI document loader

Usage:
  oasdoc <command> [options]

Commands:
  detect      Report the declared OpenAPI version and format of a document
  parse       Decode an OpenAPI document and print a summary or the full structure
  stats       Report path, operation, and schema counts for a document
  gen         Generate Go type declarations from a document's named schemas
  mcp         Run a Model Context Protocol server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasdoc detect openapi.yaml
  oasdoc parse https://example.com/api/openapi.yaml
  oasdoc parse --full openapi.json
  oasdoc stats -o json openapi.yaml
  oasdoc gen -pkg models -out models.go openapi.yaml
  oasdoc mcp

Run 'oasdoc <command> --help' for more information on a command.`)
}
