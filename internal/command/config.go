package command

import (
	"io"

	"github.com/charmbracelet/log"
)

// Config holds registry configuration options.
type Config struct {
	// Sequence numbers new bindings. Nil means SharedSequence.
	Sequence *Sequence

	// Logger receives debug output for registration and dispatch.
	// Nil discards it.
	Logger *log.Logger
}

// DefaultConfig returns a configuration using the shared sequence and no logger.
func DefaultConfig() Config {
	return Config{
		Sequence: SharedSequence(),
	}
}

// WithSequence returns a copy of the config numbering bindings from seq.
func (c Config) WithSequence(seq *Sequence) Config {
	c.Sequence = seq
	return c
}

// WithLogger returns a copy of the config logging to logger.
func (c Config) WithLogger(logger *log.Logger) Config {
	c.Logger = logger
	return c
}

func (c Config) normalized() Config {
	if c.Sequence == nil {
		c.Sequence = SharedSequence()
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}
