package runtime

import (
	"fmt"
	"io"
	"time"

	"github.com/jonwraymond/snipexec/eval"
	"github.com/jonwraymond/snipexec/stream"
)

// Runtime is the addressable execution unit presented to a host. It owns
// two captured output streams and evaluates one snippet at a time through
// its configured engine.
//
// A Runtime holds no state between runs other than the captured output of
// the most recent one: both streams are cleared at the start of every
// [Runtime.Execute] call, never between calls.
//
// A Runtime is not safe for concurrent use; each instance is exclusively
// owned by one caller context and embedders that share an instance must
// serialize access. Distinct instances are fully isolated.
type Runtime struct {
	cfg    Config
	stdout stream.Buffer
	stderr stream.Buffer
}

// New creates a Runtime with empty output streams. The zero Config is
// valid: a nil Engine falls back to the built-in statement engine and a
// nil Logger disables logging.
func New(cfg Config) *Runtime {
	cfg.applyDefaults()
	return &Runtime{cfg: cfg}
}

// console adapts the runtime's streams to the engine-facing eval.Console.
type console struct {
	rt *Runtime
}

var _ eval.Console = console{}

func (c console) Stdout() io.Writer { return &c.rt.stdout }

func (c console) Stderr() io.Writer { return &c.rt.stderr }

// Execute runs one snippet to completion and returns its exit status.
//
// Both output streams are reset first, so afterwards they reflect only
// this run. The snippet is handed to the engine unmodified; on success
// the engine's status comes back unchanged. An evaluation failure never
// escapes as an error: the failure message is written to stderr as
// "Error: {message}\n" and the call returns status 1.
func (r *Runtime) Execute(snippet string) int {
	r.stdout.Reset()
	r.stderr.Reset()

	start := time.Now()
	status, err := r.cfg.Engine.Evaluate(snippet, console{rt: r})
	duration := time.Since(start).Milliseconds()

	if err != nil {
		fmt.Fprintf(&r.stderr, "Error: %s\n", err)
		status = 1
	}

	// Log execution summary if logger present
	if r.cfg.Logger != nil {
		r.cfg.Logger.Logf("evaluated snippet in %dms (status %d)", duration, status)
	}

	return status
}

// Stdout returns the decoded stdout contents from the most recent Execute
// call. It does not mutate the stream; repeated calls return identical
// text until the next Execute.
func (r *Runtime) Stdout() string {
	return r.stdout.String()
}

// Stderr returns the decoded stderr contents from the most recent Execute
// call, including any synthesized "Error: ...\n" line.
func (r *Runtime) Stderr() string {
	return r.stderr.String()
}
