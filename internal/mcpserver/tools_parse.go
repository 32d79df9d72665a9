package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc"
)

// maxDescriptionLen caps description fields in summary output so a verbose
// document cannot flood the tool response.
const maxDescriptionLen = 200

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The OpenAPI document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the full decoded document instead of a summary"`
}

type parseSummaryServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type parseOutput struct {
	Version        string               `json:"version"`
	OASVersion     string               `json:"oas_version"`
	Format         string               `json:"format"`
	Title          string               `json:"title"`
	Description    string               `json:"description,omitempty"`
	PathCount      int                  `json:"path_count"`
	OperationCount int                  `json:"operation_count"`
	SchemaCount    int                  `json:"schema_count"`
	Servers        []parseSummaryServer `json:"servers,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
	FullDocument   string               `json:"full_document,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	stats := doc.Stats()
	output := parseOutput{
		Version:        doc.Version(),
		OASVersion:     doc.OASVersion().String(),
		Format:         string(doc.SourceFormat()),
		PathCount:      stats.PathCount,
		OperationCount: stats.OperationCount,
		SchemaCount:    stats.SchemaCount,
	}

	// The tree to re-serialize for full output, whichever variant is set.
	var tree any

	if v2, ok := doc.V2(); ok {
		tree = v2
		if v2.Info != nil {
			output.Title = v2.Info.Title
			if v2.Info.Description != nil {
				output.Description = truncateText(*v2.Info.Description, maxDescriptionLen)
			}
		}
		for _, tag := range v2.Tags {
			if tag != nil {
				output.Tags = append(output.Tags, tag.Name)
			}
		}
	}

	if v3, ok := doc.V3(); ok {
		tree = v3
		if v3.Info != nil {
			output.Title = v3.Info.Title
			if v3.Info.Description != nil {
				output.Description = truncateText(*v3.Info.Description, maxDescriptionLen)
			}
		}
		for _, tag := range v3.Tags {
			if tag != nil {
				output.Tags = append(output.Tags, tag.Name)
			}
		}
		// Servers are OAS 3.x only.
		for _, s := range v3.Servers {
			if s == nil {
				continue
			}
			server := parseSummaryServer{URL: s.URL}
			if s.Description != nil {
				server.Description = truncateText(*s.Description, maxDescriptionLen)
			}
			output.Servers = append(output.Servers, server)
		}
	}

	if input.Full {
		var data []byte
		switch doc.SourceFormat() {
		case oasdoc.SourceFormatJSON:
			data, err = json.MarshalIndent(tree, "", "  ")
		default:
			data, err = yaml.Marshal(tree)
		}
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}

// truncateText shortens s to maxLen runes, appending "..." when truncated.
func truncateText(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
