package ecs

// Entity is a plain integer handle in [0, capacity). Handles carry no data
// and are recycled after Destroy, so a handle is only unique while alive.
type Entity int

// NoEntity is returned by Create when no handle is available.
const NoEntity Entity = -1

// DefaultCapacity bounds the number of simultaneously live entities when no
// capacity is configured.
const DefaultCapacity = 100

// entityRegistry owns entity identity: which handles are alive, the LIFO
// pool of retired handles and the high-water mark that bounds scans.
type entityRegistry struct {
	valid     []bool
	free      []Entity
	highWater Entity
	live      int
}

func newEntityRegistry(capacity int) *entityRegistry {
	r := &entityRegistry{
		valid: make([]bool, capacity),
		free:  make([]Entity, capacity),
	}
	// Seeded in descending order so that ascending handles are popped first.
	for i := range r.free {
		r.free[i] = Entity(capacity - 1 - i)
	}
	return r
}

func (r *entityRegistry) capacity() int {
	return len(r.valid)
}

// create pops the next free handle. The second result is false when the
// registry is exhausted.
func (r *entityRegistry) create() (Entity, bool) {
	if len(r.free) == 0 || r.live >= r.capacity() {
		return NoEntity, false
	}

	e := r.free[len(r.free)-1]
	r.free = r.free[:len(r.free)-1]
	r.valid[e] = true
	r.live++
	if e > r.highWater {
		r.highWater = e
	}
	return e, true
}

// destroy retires a live handle, returning false if it was not alive.
func (r *entityRegistry) destroy(e Entity) bool {
	if !r.isValid(e) {
		return false
	}
	r.valid[e] = false
	r.live--
	r.free = append(r.free, e)
	return true
}

func (r *entityRegistry) isValid(e Entity) bool {
	return e >= 0 && int(e) < len(r.valid) && r.valid[e]
}
