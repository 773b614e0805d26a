package eval

import "errors"

// Sentinel errors for error classification.
var (
	// ErrEvaluation indicates a snippet evaluation failure. A failure
	// never escapes an execute call as an error; the runtime converts it
	// into stderr text and exit status 1.
	ErrEvaluation = errors.New("evaluation error")
)

// EvalError represents a snippet evaluation failure. No built-in
// statement form produces one; the type carries the failure message for
// engines whose forms can fail.
type EvalError struct {
	// Message describes the failure. The runtime renders it to stderr as
	// "Error: {message}\n".
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error returns the failure message.
func (e *EvalError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches the target.
// EvalError matches ErrEvaluation to allow sentinel-style error checking.
func (e *EvalError) Is(target error) bool {
	return target == ErrEvaluation
}
