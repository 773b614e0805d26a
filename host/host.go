package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonwraymond/snipexec/runtime"
)

// Errors returned by Host operations.
var (
	// ErrRuntimeNotFound is returned when an ID does not name a live runtime.
	ErrRuntimeNotFound = errors.New("host: runtime not found")

	// ErrHostFull is returned by Create when the host already tracks
	// MaxRuntimes live runtimes.
	ErrHostFull = errors.New("host: runtime limit reached")
)

// Host is the embedding layer over runtime instances. It creates
// runtimes, addresses them by opaque IDs, and serializes access to each
// one so callers on different goroutines can share a host safely.
//
// Contract:
// - Concurrency: all methods are safe for concurrent use. Calls to the same runtime are serialized; calls to different runtimes proceed in parallel.
// - Errors: unknown IDs return ErrRuntimeNotFound; Create returns ErrHostFull at capacity.
// - Ownership: returned strings and slices are caller-owned snapshots.
type Host struct {
	opts Options

	mu       sync.RWMutex
	sessions map[string]*session
}

// session pairs a runtime with the lock that serializes access to it.
type session struct {
	mu sync.Mutex
	rt *runtime.Runtime
}

// New creates a Host with the given options.
func New(opts Options) (*Host, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()
	return &Host{
		opts:     opts,
		sessions: make(map[string]*session),
	}, nil
}

// Create constructs a runtime with empty output streams and returns its
// ID. It returns ErrHostFull when the host already tracks MaxRuntimes
// live runtimes.
func (h *Host) Create() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.sessions) >= h.opts.MaxRuntimes {
		return "", fmt.Errorf("%w: %d live", ErrHostFull, len(h.sessions))
	}

	id := uuid.NewString()
	h.sessions[id] = &session{
		rt: runtime.New(runtime.Config{Engine: h.opts.Engine, Logger: h.opts.Logger}),
	}
	return id, nil
}

// lookup fetches the session for id.
func (h *Host) lookup(id string) (*session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRuntimeNotFound, id)
	}
	return s, nil
}

// Execute runs one snippet on the identified runtime and returns its
// exit status.
func (h *Host) Execute(id, snippet string) (int, error) {
	s, err := h.lookup(id)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rt.Execute(snippet), nil
}

// ReadStdout returns the stdout text captured by the identified
// runtime's most recent execution.
func (h *Host) ReadStdout(id string) (string, error) {
	s, err := h.lookup(id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rt.Stdout(), nil
}

// ReadStderr returns the stderr text captured by the identified
// runtime's most recent execution.
func (h *Host) ReadStderr(id string) (string, error) {
	s, err := h.lookup(id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rt.Stderr(), nil
}

// Destroy releases the identified runtime. Its ID becomes invalid and
// its captured output is discarded.
func (h *Host) Destroy(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrRuntimeNotFound, id)
	}
	delete(h.sessions, id)
	return nil
}

// IDs returns the live runtime IDs sorted for deterministic output.
func (h *Host) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Count reports the number of live runtimes.
func (h *Host) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
