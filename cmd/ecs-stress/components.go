package main

import "github.com/plus3/slotecs/ecs"

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current, Max int
}

type Lifetime struct {
	Frames int
}

type Alive struct{}

type Marked struct{}

type Frozen struct{}

// kinds holds the resolved kind of every stress type for one storage.
type kinds struct {
	position ecs.ComponentKind
	velocity ecs.ComponentKind
	health   ecs.ComponentKind
	lifetime ecs.ComponentKind

	components []ecs.ComponentKind

	alive  ecs.TagKind
	marked ecs.TagKind
	frozen ecs.TagKind

	tags []ecs.TagKind
}

func newRegistries() (*ecs.ComponentRegistry, *ecs.TagRegistry) {
	components := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](components)
	ecs.RegisterComponent[Velocity](components)
	ecs.RegisterComponent[Health](components)
	ecs.RegisterComponent[Lifetime](components)

	tags := ecs.NewTagRegistry()
	ecs.RegisterTag[Alive](tags)
	ecs.RegisterTag[Marked](tags)
	ecs.RegisterTag[Frozen](tags)

	return components, tags
}

func resolveKinds(s *ecs.Storage) kinds {
	k := kinds{
		position: ecs.ComponentKindOf[Position](s),
		velocity: ecs.ComponentKindOf[Velocity](s),
		health:   ecs.ComponentKindOf[Health](s),
		lifetime: ecs.ComponentKindOf[Lifetime](s),
		alive:    ecs.TagKindOf[Alive](s),
		marked:   ecs.TagKindOf[Marked](s),
		frozen:   ecs.TagKindOf[Frozen](s),
	}
	k.components = []ecs.ComponentKind{k.position, k.velocity, k.health, k.lifetime}
	k.tags = []ecs.TagKind{k.alive, k.marked, k.frozen}
	return k
}
