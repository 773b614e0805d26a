package eval

// Logger is an optional interface for observability during snippet
// evaluation. Implementations can log executed snippets, status codes,
// and timing information.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}
