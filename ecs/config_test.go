package ecs_test

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

func TestDefaultConfig(t *testing.T) {
	cfg := ecs.DefaultConfig()
	assert.Equal(t, ecs.DefaultCapacity, cfg.Capacity)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.PrettyLog)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ECS_CAPACITY", "7")
	t.Setenv("ECS_LOG_LEVEL", "warn")

	cfg, err := ecs.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Capacity)
	assert.Equal(t, "warn", cfg.LogLevel)

	storage, buf := newTestStorage(t, ecs.WithConfig(cfg))
	assert.Equal(t, 7, storage.Capacity())

	e := storage.Create()
	ecs.AddComponent[Position](storage, e)
	assert.NotContains(t, buf.String(), "component added")

	ecs.AddComponent[Position](storage, e)
	assert.Contains(t, buf.String(), "already has component")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ecs.Config
		wantErr error
	}{
		{"zero capacity", ecs.Config{Capacity: 0, LogLevel: "info"}, ecs.ErrInvalidCapacity},
		{"negative capacity", ecs.Config{Capacity: -3, LogLevel: "info"}, ecs.ErrInvalidCapacity},
		{"bad log level", ecs.Config{Capacity: 10, LogLevel: "loud"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, eris.Is(err, tt.wantErr), "unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigRejectsInvalidCapacity(t *testing.T) {
	t.Setenv("ECS_CAPACITY", "0")

	_, err := ecs.LoadConfig()
	require.Error(t, err)
	assert.True(t, eris.Is(err, ecs.ErrInvalidCapacity))
}
