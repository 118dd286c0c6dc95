package ecs_test

import (
	"bytes"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type Score int32

type Unregistered struct{}

// Test tag types
type Player struct{}
type Enemy struct{}
type Frozen struct{}

func newTestRegistries() (*ecs.ComponentRegistry, *ecs.TagRegistry) {
	components := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](components)
	ecs.RegisterComponent[Velocity](components)
	ecs.RegisterComponent[Health](components)
	ecs.RegisterComponent[Name](components)
	ecs.RegisterComponent[Score](components)

	tags := ecs.NewTagRegistry()
	ecs.RegisterTag[Player](tags)
	ecs.RegisterTag[Enemy](tags)
	ecs.RegisterTag[Frozen](tags)
	return components, tags
}

// newTestStorage builds a storage over the common test types whose
// diagnostics are captured in the returned buffer.
func newTestStorage(t testing.TB, opts ...ecs.Option) (*ecs.Storage, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	components, tags := newTestRegistries()
	opts = append([]ecs.Option{ecs.WithLogger(zerolog.New(&buf))}, opts...)
	return ecs.NewStorage(components, tags, opts...), &buf
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, eris.Is(err, target), "unexpected error: %v", err)
	}()
	fn()
}
