// Package snipexec provides a minimal embeddable snippet runtime. Each
// runtime instance owns captured stdout and stderr streams, evaluates one
// snippet at a time through a pluggable engine, and hands the captured
// output back to the embedding host on request.
//
// The implementation lives in the subpackages: stream (append-only output
// buffers), eval (snippet classification and evaluation engines), runtime
// (the runtime instance), and host (the session layer used by
// cmd/snipexec).
package snipexec

// Version is the snipexec release version, reported by the command line
// interface and in the MCP server handshake.
const Version = "0.1.0"
