package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type executeParams struct {
	RuntimeID string `json:"runtime_id" jsonschema:"the runtime ID returned by create_runtime"`
	Snippet   string `json:"snippet" jsonschema:"the snippet text to execute; empty snippets succeed without output"`
}

func (h *handler) executeHandler(ctx context.Context, req *mcp.CallToolRequest, params executeParams) (*mcp.CallToolResult, any, error) {
	if params.RuntimeID == "" {
		return errorResult("runtime_id is required")
	}

	status, err := h.host.Execute(params.RuntimeID, params.Snippet)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to execute on runtime %s: %v", params.RuntimeID, err))
	}
	return textResult(fmt.Sprintf("Status: %d", status))
}

type readStdoutParams struct {
	RuntimeID string `json:"runtime_id" jsonschema:"the runtime ID returned by create_runtime"`
}

func (h *handler) readStdoutHandler(ctx context.Context, req *mcp.CallToolRequest, params readStdoutParams) (*mcp.CallToolResult, any, error) {
	if params.RuntimeID == "" {
		return errorResult("runtime_id is required")
	}

	text, err := h.host.ReadStdout(params.RuntimeID)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to read stdout of runtime %s: %v", params.RuntimeID, err))
	}
	return textResult(text)
}

type readStderrParams struct {
	RuntimeID string `json:"runtime_id" jsonschema:"the runtime ID returned by create_runtime"`
}

func (h *handler) readStderrHandler(ctx context.Context, req *mcp.CallToolRequest, params readStderrParams) (*mcp.CallToolResult, any, error) {
	if params.RuntimeID == "" {
		return errorResult("runtime_id is required")
	}

	text, err := h.host.ReadStderr(params.RuntimeID)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to read stderr of runtime %s: %v", params.RuntimeID, err))
	}
	return textResult(text)
}
