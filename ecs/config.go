package ecs

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the settings a Storage can take from the environment.
type Config struct {
	Capacity  int    `config:"ECS_CAPACITY"`
	LogLevel  string `config:"ECS_LOG_LEVEL"`
	PrettyLog bool   `config:"ECS_PRETTY_LOG"`
}

// DefaultConfig returns the settings used when nothing is set in the
// environment.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// LoadConfig overlays ECS_* environment variables on DefaultConfig and
// validates the result.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the capacity is positive and the log level parses.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return eris.Wrapf(ErrInvalidCapacity, "capacity must be positive, got %d", c.Capacity)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}
