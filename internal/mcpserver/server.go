// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdoc capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasdoc MCP server — loads OpenAPI 2.0 and 3.x documents into a typed model and exposes them as tools.

Tools:
- detect: report the declared version and serialization format without decoding the document body. Cheap; use it to route documents.
- parse: strictly decode the document. Returns a structural summary (title, version, path/operation/schema counts, servers, tags); use full=true only for small documents.
- generate_types: emit Go type declarations for the document's named schemas.

Configuration: All defaults are configurable via OASDOC_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASDOC_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- OASDOC_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- OASDOC_CACHE_ENABLED (default: true) — disable document caching entirely
- OASDOC_MAX_INLINE_SIZE (default: 10MiB) — maximum inline content size
- OASDOC_MAX_SOURCE_SIZE (default: 100MiB) — maximum file/URL document size
- OASDOC_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches to private/loopback addresses

Caching: Loaded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdoc", Version: oasdoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect the declared version and serialization format of an OpenAPI document without decoding its structure. Reports the version literal (e.g. \"2.0\", \"3.0.3\"), the canonical version classification, and whether the source was JSON or YAML. Fails with the same version dispatch errors as parse: both discriminants, neither, or an unsupported value.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Strictly decode an OpenAPI 2.0 or 3.x document into the typed model. Returns a structural summary: title, version, OAS version, path/operation/schema counts, servers, and tags. Decoding is all-or-nothing; structural problems are reported with their JSON field path. Use full=true only for small documents to get the decoded tree back in the source format.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_types",
		Description: "Generate Go type declarations from the named schemas of an OpenAPI document (V2 definitions or V3 components.schemas). Objects become structs with json tags, string enums become defined types with constants, optional properties use pointers unless value_types=true. The generated source is returned inline.",
	}, handleGenerateTypes)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
