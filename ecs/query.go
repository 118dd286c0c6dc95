package ecs

import "iter"

// Query returns every live entity holding all of the given component kinds,
// in ascending handle order. With no kinds it returns every live entity.
// The result is a fresh slice; later mutations do not affect it.
func (s *Storage) Query(kinds ...ComponentKind) []Entity {
	s.componentRegistry.check(kinds)

	var result []Entity
	for e := Entity(0); e <= s.entities.highWater; e++ {
		if s.entities.isValid(e) && s.components.has(e, kinds...) {
			result = append(result, e)
		}
	}
	return result
}

// QueryTags returns every live entity carrying all of the given tags, in
// ascending handle order.
func (s *Storage) QueryTags(kinds ...TagKind) []Entity {
	s.tagRegistry.check(kinds)

	var result []Entity
	for e := Entity(0); e <= s.entities.highWater; e++ {
		if s.entities.isValid(e) && s.tags.has(e, kinds...) {
			result = append(result, e)
		}
	}
	return result
}

// Entities iterates over live handles in ascending order. The iteration
// reads validity as it goes, so handles destroyed mid-iteration are skipped.
func (s *Storage) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := Entity(0); e <= s.entities.highWater; e++ {
			if !s.entities.isValid(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
