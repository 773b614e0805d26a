package eval

import "io"

// Console is the output environment exposed to engines during evaluation.
// It stands in for the standard streams of a process the snippet does not
// have: engines write snippet output through it rather than to any
// process-wide stream, and the runtime that owns the evaluation captures
// everything written.
//
// Contract:
// - Concurrency: a Console is bound to one evaluation at a time; implementations need not be safe for concurrent use.
// - Errors: writers follow io.Writer semantics; the runtime-provided writers never fail.
// - Ownership: the writers remain owned by the runtime; engines must not retain them past Evaluate.
type Console interface {
	// Stdout returns the writer backing the captured standard output stream.
	Stdout() io.Writer

	// Stderr returns the writer backing the captured standard error stream.
	Stderr() io.Writer
}
