package ecs

// componentStore owns the component membership matrix and one dense value
// array per registered kind. It performs no validity checks or logging;
// Storage does both before calling in.
type componentStore struct {
	registry   *ComponentRegistry
	membership membership
	storages   []iComponentStorage
}

func newComponentStore(registry *ComponentRegistry, capacity int) *componentStore {
	cs := &componentStore{
		registry:   registry,
		membership: newMembership(capacity, registry.Len()),
		storages:   make([]iComponentStorage, registry.Len()),
	}
	for k, factory := range registry.factories {
		cs.storages[k] = factory(capacity)
	}
	return cs
}

// add attaches k to e and returns a pointer to its value. The second result
// is false when e already held k; the existing value is returned untouched.
func (cs *componentStore) add(e Entity, k ComponentKind) (any, bool) {
	if cs.membership.has(e, int(k)) {
		return cs.storages[k].Get(e), false
	}
	cs.membership.set(e, int(k), true)
	return cs.storages[k].Reset(e), true
}

// remove detaches k from e. The value slot is left as-is until the next add.
func (cs *componentStore) remove(e Entity, k ComponentKind) bool {
	if !cs.membership.has(e, int(k)) {
		return false
	}
	cs.membership.set(e, int(k), false)
	return true
}

// has reports whether e holds every kind listed.
func (cs *componentStore) has(e Entity, kinds ...ComponentKind) bool {
	for _, k := range kinds {
		if !cs.membership.has(e, int(k)) {
			return false
		}
	}
	return true
}

func (cs *componentStore) get(e Entity, k ComponentKind) (any, bool) {
	if !cs.membership.has(e, int(k)) {
		return nil, false
	}
	return cs.storages[k].Get(e), true
}

func (cs *componentStore) clear(e Entity) {
	cs.membership.clearRow(e)
}

func (cs *componentStore) kinds(e Entity) []ComponentKind {
	var kinds []ComponentKind
	for slot, set := range cs.membership.row(e) {
		if set {
			kinds = append(kinds, ComponentKind(slot))
		}
	}
	return kinds
}
