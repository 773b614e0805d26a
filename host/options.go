package host

import (
	"errors"

	"github.com/jonwraymond/snipexec/eval"
)

// Default configuration values.
const (
	DefaultMaxRuntimes = 128
)

// Errors returned by Options validation.
var (
	ErrMaxRuntimesNegative = errors.New("host: MaxRuntimes must not be negative")
)

// Options configures a Host.
type Options struct {
	// Engine evaluates snippets for every runtime the host creates.
	// Optional; if nil, runtimes use the built-in statement engine.
	Engine eval.Engine

	// Logger is an optional logger passed to every runtime.
	Logger eval.Logger

	// MaxRuntimes caps the number of live runtimes.
	// Default: 128.
	MaxRuntimes int
}

// validate checks that the options are coherent.
func (o *Options) validate() error {
	if o.MaxRuntimes < 0 {
		return ErrMaxRuntimesNegative
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Engine == nil {
		o.Engine = eval.Default()
	}
	if o.MaxRuntimes == 0 {
		o.MaxRuntimes = DefaultMaxRuntimes
	}
}
