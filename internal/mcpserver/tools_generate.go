package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdoc/gen"
)

type generateInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OpenAPI document to generate Go types from"`
	PackageName string    `json:"package_name,omitempty" jsonschema:"Go package name for the generated source (default: api)"`
	ValueTypes  bool      `json:"value_types,omitempty"  jsonschema:"Emit optional properties as value types instead of pointers"`
}

type generateOutput struct {
	PackageName string `json:"package_name"`
	Size        int    `json:"size"`
	Source      string `json:"source"`
}

func handleGenerateTypes(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := gen.DefaultOptions()
	if input.PackageName != "" {
		opts.PackageName = input.PackageName
	}
	if input.ValueTypes {
		opts.UsePointers = false
	}

	src, err := gen.Generate(doc, opts)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	return nil, generateOutput{
		PackageName: opts.PackageName,
		Size:        len(src),
		Source:      string(src),
	}, nil
}
