package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/slotecs/ecs"
)

func TestCommandsCreate(t *testing.T) {
	storage, _ := newTestStorage(t)
	position := ecs.ComponentKindOf[Position](storage)
	velocity := ecs.ComponentKindOf[Velocity](storage)
	enemy := ecs.TagKindOf[Enemy](storage)

	commands := ecs.NewCommands()
	commands.Create([]ecs.ComponentKind{position, velocity}, []ecs.TagKind{enemy})
	commands.Create([]ecs.ComponentKind{position}, nil)
	assert.Equal(t, 2, commands.Len())
	assert.Equal(t, 0, storage.Len())

	created := commands.Flush(storage)
	require.Equal(t, []ecs.Entity{0, 1}, created)

	assert.True(t, storage.HasComponents(created[0], position, velocity))
	assert.True(t, storage.HasTags(created[0], enemy))
	assert.True(t, storage.HasComponents(created[1], position))
	assert.False(t, storage.HasComponents(created[1], velocity))
	assert.Equal(t, 0, commands.Len())
}

func TestCommandsMutations(t *testing.T) {
	storage, _ := newTestStorage(t)
	position := ecs.ComponentKindOf[Position](storage)
	velocity := ecs.ComponentKindOf[Velocity](storage)
	player := ecs.TagKindOf[Player](storage)
	frozen := ecs.TagKindOf[Frozen](storage)

	e := storage.Create()
	storage.AddComponents(e, position)
	storage.AddTags(e, frozen)

	commands := ecs.NewCommands()
	commands.AddComponents(e, velocity)
	commands.RemoveComponents(e, position)
	commands.AddTags(e, player)
	commands.RemoveTags(e, frozen)

	// Nothing changes until the buffer is flushed.
	assert.True(t, storage.HasComponents(e, position))
	assert.False(t, storage.HasComponents(e, velocity))

	assert.Empty(t, commands.Flush(storage))
	assert.False(t, storage.HasComponents(e, position))
	assert.True(t, storage.HasComponents(e, velocity))
	assert.True(t, storage.HasTags(e, player))
	assert.False(t, storage.HasTags(e, frozen))
}

func TestCommandsDestroyDropsOtherMutations(t *testing.T) {
	storage, buf := newTestStorage(t)
	velocity := ecs.ComponentKindOf[Velocity](storage)
	player := ecs.TagKindOf[Player](storage)

	e := storage.Create()
	buf.Reset()

	commands := ecs.NewCommands()
	commands.AddComponents(e, velocity)
	commands.AddTags(e, player)
	commands.Destroy(e)
	commands.Flush(storage)

	assert.False(t, storage.IsValid(e))
	assert.NotContains(t, buf.String(), "invalid entity")

	t.Run("recreated handle is clean", func(t *testing.T) {
		commands.Create(nil, nil)
		created := commands.Flush(storage)
		require.Equal(t, []ecs.Entity{e}, created)
		assert.False(t, storage.HasComponents(e, velocity))
		assert.False(t, storage.HasTags(e, player))
	})
}

func TestCommandsDeferRunsLast(t *testing.T) {
	storage, _ := newTestStorage(t)

	commands := ecs.NewCommands()
	var liveAtDefer int
	commands.Defer(func() {
		liveAtDefer = storage.Len()
	})
	commands.Create(nil, nil)
	commands.Create(nil, nil)
	commands.Flush(storage)

	assert.Equal(t, 2, liveAtDefer)
}

func TestCommandsCreateAtCapacity(t *testing.T) {
	storage, _ := newTestStorage(t, ecs.WithCapacity(1))
	position := ecs.ComponentKindOf[Position](storage)

	commands := ecs.NewCommands()
	commands.Create([]ecs.ComponentKind{position}, nil)
	commands.Create([]ecs.ComponentKind{position}, nil)

	assert.Equal(t, []ecs.Entity{0, ecs.NoEntity}, commands.Flush(storage))
	assert.Equal(t, []ecs.Entity{0}, storage.Query(position))
}

func TestCommandsRepeatedDestroy(t *testing.T) {
	storage, buf := newTestStorage(t)
	e := storage.Create()
	other := storage.Create()

	commands := ecs.NewCommands()
	commands.Destroy(e)
	commands.Destroy(e)
	commands.Flush(storage)

	assert.False(t, storage.IsValid(e))
	assert.True(t, storage.IsValid(other))
	assert.NotContains(t, buf.String(), "invalid entity")

	// The freed handle is reused exactly once.
	assert.Equal(t, e, storage.Create())
	assert.Equal(t, ecs.Entity(2), storage.Create())
}
