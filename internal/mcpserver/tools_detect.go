package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasdoc"
)

type detectInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to inspect"`
}

type detectOutput struct {
	Version    string `json:"version"`
	OASVersion string `json:"oas_version"`
	Format     string `json:"format"`
	Size       int64  `json:"size"`
}

// handleDetect reports the declared version and format without decoding the
// document structure, so it stays cheap on arbitrarily large documents.
func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	opts, err := input.Spec.loadOptions()
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	res, err := oasdoc.Detect(opts...)
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	return nil, detectOutput{
		Version:    res.Version,
		OASVersion: res.OASVersion.String(),
		Format:     string(res.Format),
		Size:       res.SourceSize,
	}, nil
}
