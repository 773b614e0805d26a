// Package mcp exposes snippet runtimes over the Model Context Protocol.
//
// The server registers one tool per host operation: create_runtime,
// execute, read_stdout, read_stderr, destroy_runtime and list_runtimes.
// Runtimes live in the server's host until destroyed or until the
// process exits.
package mcp

import (
	_ "embed"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/snipexec"
	"github.com/jonwraymond/snipexec/host"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	host *host.Host
}

// NewServer creates an MCP server with all snipexec tools registered.
func NewServer(h *host.Host) *mcp.Server {
	hd := &handler{host: h}

	mcpOpts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "snipexec", Version: snipexec.Version}, mcpOpts)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "create_runtime",
		Description: "Create a snippet runtime with empty output streams and return its ID.",
	}, hd.createRuntimeHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name: "execute",
		Description: `Execute one snippet on a runtime and return its exit status.

Both output streams are reset before the snippet runs, so read_stdout and
read_stderr afterwards reflect only this execution. Status 0 means the
snippet succeeded; status 1 means evaluation failed and stderr holds an
"Error: ..." line.`,
	}, hd.executeHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "read_stdout",
		Description: "Read the stdout text captured by a runtime's most recent execution.",
	}, hd.readStdoutHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "read_stderr",
		Description: "Read the stderr text captured by a runtime's most recent execution.",
	}, hd.readStderrHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "destroy_runtime",
		Description: "Destroy a runtime and discard its captured output.",
	}, hd.destroyRuntimeHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_runtimes",
		Description: "List the IDs of all live runtimes, sorted.",
	}, hd.listRuntimesHandler)

	return s
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult is a helper to build an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
