package ecs

// tagStore is the tag counterpart of componentStore: a membership matrix
// with its own slot registry and no value arrays.
type tagStore struct {
	registry   *TagRegistry
	membership membership
}

func newTagStore(registry *TagRegistry, capacity int) *tagStore {
	return &tagStore{
		registry:   registry,
		membership: newMembership(capacity, registry.Len()),
	}
}

func (ts *tagStore) add(e Entity, kinds ...TagKind) {
	for _, k := range kinds {
		ts.membership.set(e, int(k), true)
	}
}

func (ts *tagStore) remove(e Entity, kinds ...TagKind) {
	for _, k := range kinds {
		ts.membership.set(e, int(k), false)
	}
}

func (ts *tagStore) has(e Entity, kinds ...TagKind) bool {
	for _, k := range kinds {
		if !ts.membership.has(e, int(k)) {
			return false
		}
	}
	return true
}

func (ts *tagStore) clear(e Entity) {
	ts.membership.clearRow(e)
}

func (ts *tagStore) kinds(e Entity) []TagKind {
	var kinds []TagKind
	for slot, set := range ts.membership.row(e) {
		if set {
			kinds = append(kinds, TagKind(slot))
		}
	}
	return kinds
}
