package ecs

// StorageStats is a point-in-time snapshot of a Storage's occupancy.
type StorageStats struct {
	Capacity      int
	LiveEntities  int
	FreeHandles   int
	HighWaterMark Entity
	Components    []KindStats
	Tags          []KindStats
}

// KindStats counts the live entities holding one component or tag kind.
type KindStats struct {
	Kind        int
	Name        string
	EntityCount int
}

// CollectStats walks the live entities once and counts, per kind, how many
// hold each component and tag. Kinds are reported in slot order.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		Capacity:      s.capacity,
		LiveEntities:  s.entities.live,
		FreeHandles:   len(s.entities.free),
		HighWaterMark: s.entities.highWater,
		Components:    make([]KindStats, s.componentRegistry.Len()),
		Tags:          make([]KindStats, s.tagRegistry.Len()),
	}
	for i := range stats.Components {
		stats.Components[i] = KindStats{Kind: i, Name: s.componentRegistry.Name(ComponentKind(i))}
	}
	for i := range stats.Tags {
		stats.Tags[i] = KindStats{Kind: i, Name: s.tagRegistry.Name(TagKind(i))}
	}

	for e := range s.Entities() {
		for slot, set := range s.components.membership.row(e) {
			if set {
				stats.Components[slot].EntityCount++
			}
		}
		for slot, set := range s.tags.membership.row(e) {
			if set {
				stats.Tags[slot].EntityCount++
			}
		}
	}
	return stats
}
