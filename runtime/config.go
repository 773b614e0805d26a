package runtime

import "github.com/jonwraymond/snipexec/eval"

// Config holds the configuration for a runtime instance.
type Config struct {
	// Engine evaluates snippets. Defaults to the built-in statement
	// engine when nil.
	Engine eval.Engine

	// Logger is an optional logger for observability.
	Logger eval.Logger
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.Engine == nil {
		c.Engine = eval.Default()
	}
}
