package ecs

// iComponentStorage is the type-erased view of one component kind's dense
// value array. Values are indexed directly by entity handle.
type iComponentStorage interface {
	// Reset zeroes the value held for e and returns a pointer to it.
	Reset(e Entity) any
	// Get returns a pointer to the value held for e, stale or not.
	Get(e Entity) any
	Len() int
}

// denseComponentStorage holds one T per entity handle. Slots are never
// freed or zeroed on removal; membership decides whether a slot is live.
type denseComponentStorage[T any] struct {
	values []T
}

func newDenseComponentStorage[T any](capacity int) *denseComponentStorage[T] {
	return &denseComponentStorage[T]{
		values: make([]T, capacity),
	}
}

func (cs *denseComponentStorage[T]) Reset(e Entity) any {
	var zero T
	cs.values[e] = zero
	return &cs.values[e]
}

func (cs *denseComponentStorage[T]) Get(e Entity) any {
	return &cs.values[e]
}

func (cs *denseComponentStorage[T]) Len() int {
	return len(cs.values)
}
