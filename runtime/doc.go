// Package runtime provides the runtime instance that executes snippets
// against captured output streams.
//
// A [Runtime] is the addressable unit presented to a host: it owns a
// stdout and a stderr stream, runs one snippet at a time through an
// [eval.Engine], and exposes the captured output afterwards:
//
//	rt := runtime.New(runtime.Config{})
//	status := rt.Execute("print!(hello)")
//	text := rt.Stdout() // "hello\n"
//
// # Reset Contract
//
// Both streams are cleared at the start of every Execute call and only
// then; after Execute returns they hold exactly the output of that run
// until the next call. Reads are idempotent and never mutate the streams.
//
// # Failure Handling
//
// An engine error never escapes Execute. The error text is appended to
// stderr as a single "Error: {message}\n" line and the call returns
// status 1. Every built-in statement form succeeds, so this path is only
// reachable through custom engines.
//
// # Concurrency
//
// A Runtime is single-threaded: Execute runs to completion with no
// internal concurrency, blocking I/O, or cancellation. Instances are not
// safe for concurrent use; the embedding layer serializes access to each
// one. Distinct instances are isolated and may run concurrently.
package runtime
