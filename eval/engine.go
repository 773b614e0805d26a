package eval

// Engine is the pluggable evaluation engine that maps one snippet to
// captured output and an exit status. Implementations decide which
// statement forms they recognize and what bytes those forms emit.
//
// The Engine should:
//   - Classify the snippet and write any resulting output through the Console
//   - Return the exit status for the snippet (0 for success)
//   - Return an error only for evaluation failures; the runtime converts
//     the error into stderr text and status 1
//
// Contract:
// - Concurrency: one engine may be shared by many runtime instances; implementations must be safe for concurrent use. Per-evaluation state belongs on the stack, not the receiver.
// - Errors: evaluation failures should return EvalError where possible; callers use errors.Is with ErrEvaluation. When err is non-nil the returned status is ignored.
// - Ownership: snippet and Console are read-only views owned by the caller; engines must not retain the Console past the call.
type Engine interface {
	// Evaluate runs one snippet, writing output through con.
	// It returns the exit status for the snippet.
	Evaluate(snippet string, con Console) (int, error)
}
