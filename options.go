package vfs

import "github.com/rs/zerolog"

// Option configures FileSystem creation.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

func newConfig() *config {
	return &config{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used to audit opens, releases and capability
// denials. The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
