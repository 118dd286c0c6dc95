package ecs

import (
	"os"

	"github.com/rs/zerolog"
)

// Option configures a Storage at construction time.
type Option func(s *Storage)

// WithCapacity sets the maximum number of simultaneously live entities.
func WithCapacity(capacity int) Option {
	return func(s *Storage) {
		s.capacity = capacity
	}
}

// WithLogger replaces the diagnostic sink.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Storage) {
		s.logger = logger
	}
}

// WithPrettyLog writes diagnostics to stderr in human-readable form.
func WithPrettyLog() Option {
	return func(s *Storage) {
		s.logger = s.logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// WithConfig applies a loaded Config. The config should already have passed
// Validate; an unparsable log level leaves the logger's level unchanged.
func WithConfig(cfg Config) Option {
	return func(s *Storage) {
		s.capacity = cfg.Capacity
		if cfg.PrettyLog {
			WithPrettyLog()(s)
		}
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
			s.logger = s.logger.Level(level)
		}
	}
}
