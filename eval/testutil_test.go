package eval

import (
	"bytes"
	"io"
	"sync"
)

// mockConsole implements Console for testing. Each stream records what
// engines write and can be configured to fail.
type mockConsole struct {
	out    failingWriter
	errOut failingWriter
}

func (c *mockConsole) Stdout() io.Writer { return &c.out }

func (c *mockConsole) Stderr() io.Writer { return &c.errOut }

// failingWriter captures writes until err is set, then fails every write.
type failingWriter struct {
	buf bytes.Buffer
	err error // Configurable error returned by Write
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// mockEngine implements Engine for testing.
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
	con     Console
}

func (m *mockEngine) Evaluate(snippet string, con Console) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluateCalls = append(m.evaluateCalls, evaluateCall{snippet, con})
	return m.status, m.evaluateErr
}
