package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type createRuntimeParams struct{}

func (h *handler) createRuntimeHandler(ctx context.Context, req *mcp.CallToolRequest, _ createRuntimeParams) (*mcp.CallToolResult, any, error) {
	id, err := h.host.Create()
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to create runtime: %v", err))
	}
	return textResult(fmt.Sprintf("Runtime: %s", id))
}

type destroyRuntimeParams struct {
	RuntimeID string `json:"runtime_id" jsonschema:"the runtime ID returned by create_runtime"`
}

func (h *handler) destroyRuntimeHandler(ctx context.Context, req *mcp.CallToolRequest, params destroyRuntimeParams) (*mcp.CallToolResult, any, error) {
	if params.RuntimeID == "" {
		return errorResult("runtime_id is required")
	}

	if err := h.host.Destroy(params.RuntimeID); err != nil {
		return errorResult(fmt.Sprintf("Failed to destroy runtime %s: %v", params.RuntimeID, err))
	}
	return textResult(fmt.Sprintf("Destroyed: %s", params.RuntimeID))
}

type listRuntimesParams struct{}

func (h *handler) listRuntimesHandler(ctx context.Context, req *mcp.CallToolRequest, _ listRuntimesParams) (*mcp.CallToolResult, any, error) {
	ids := h.host.IDs()

	var b strings.Builder
	fmt.Fprintf(&b, "Runtimes (%d):\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(&b, "  %s\n", id)
	}
	return textResult(b.String())
}
