package runtime

import (
	"fmt"
	"sync"

	"github.com/jonwraymond/snipexec/eval"
)

// mockEngine implements eval.Engine for testing.
type mockEngine struct {
	mu sync.Mutex

	// Configurable returns
	status      int
	evaluateErr error

	// Call tracking
	evaluateCalls []evaluateCall
}

type evaluateCall struct {
	snippet string
	con     eval.Console
}

func (m *mockEngine) Evaluate(snippet string, con eval.Console) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluateCalls = append(m.evaluateCalls, evaluateCall{snippet, con})
	return m.status, m.evaluateErr
}

// setEvaluateErr swaps the configured error between calls.
func (m *mockEngine) setEvaluateErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluateErr = err
}

// mockLogger implements eval.Logger for testing.
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *mockLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}
