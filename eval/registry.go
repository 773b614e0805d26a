package eval

import (
	"sort"
	"sync"
)

// DefaultEngineName is the name the built-in statement engine registers
// under.
const DefaultEngineName = "statement"

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]Engine)

	defaultEngine = NewStatementEngine()
)

func init() {
	Register(DefaultEngineName, defaultEngine)
}

// Register makes an engine available under the given name so hosts can
// select it by configuration. It is intended to be called from init
// functions. Register panics if name is empty, e is nil, or the name is
// already taken.
func Register(name string, e Engine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	if name == "" {
		panic("eval: Register engine name is empty")
	}
	if e == nil {
		panic("eval: Register engine is nil")
	}
	if _, dup := engines[name]; dup {
		panic("eval: Register called twice for engine " + name)
	}
	engines[name] = e
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, bool) {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	e, ok := engines[name]
	return e, ok
}

// Engines returns the registered engine names sorted for deterministic
// output.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	out := make([]string, 0, len(engines))
	for name := range engines {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Default returns the built-in statement engine.
func Default() Engine {
	return defaultEngine
}
