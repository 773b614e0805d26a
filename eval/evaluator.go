package eval

import (
	"fmt"
	"io"
)

// StatementEngine is the default [Engine]. It understands the built-in
// statement forms: empty snippets succeed silently, print-style calls
// emit their payload, and anything else echoes back as literal text.
//
// Every built-in form succeeds with status 0. The error return exists for
// forms that can fail; StatementEngine reaches it only if the console
// writer itself reports a failure.
type StatementEngine struct{}

var _ Engine = (*StatementEngine)(nil)

// NewStatementEngine returns the built-in statement engine. The engine is
// stateless; a single instance may serve any number of runtimes.
func NewStatementEngine() *StatementEngine {
	return &StatementEngine{}
}

// Evaluate classifies the snippet and writes its output through con.
func (e *StatementEngine) Evaluate(snippet string, con Console) (int, error) {
	form := Classify(snippet)
	switch form.Kind {
	case KindEmpty:
		return 0, nil
	case KindPrint, KindEcho:
		if _, err := io.WriteString(con.Stdout(), form.Payload+"\n"); err != nil {
			return 0, &EvalError{Message: "write stdout: " + err.Error(), Err: err}
		}
		return 0, nil
	default:
		return 0, &EvalError{Message: fmt.Sprintf("unsupported statement form %q", form.Kind)}
	}
}
