package ecs

import (
	"github.com/rs/zerolog"
)

// Diagnostics for the recoverable failure paths. They are advisory only and
// never change what an operation returns.

func logInvalidEntity(logger *zerolog.Logger, op string, e Entity) {
	logger.Warn().Str("op", op).Int("entity", int(e)).Msg("invalid entity")
}

func logCapacityExhausted(logger *zerolog.Logger, capacity int) {
	logger.Warn().Str("op", "create entity").Int("capacity", capacity).Msg("no more available entities")
}

func logDuplicateComponent(logger *zerolog.Logger, e Entity, name string) {
	logger.Warn().
		Str("op", "add component").
		Int("entity", int(e)).
		Str("component", name).
		Msg("entity already has component, returning existing component")
}

func logMissingComponent(logger *zerolog.Logger, e Entity, name string) {
	logger.Warn().
		Str("op", "get component").
		Int("entity", int(e)).
		Str("component", name).
		Msg("entity does not have component")
}

func logComponentChange(logger *zerolog.Logger, msg string, e Entity, name string) {
	logger.Debug().Int("entity", int(e)).Str("component", name).Msg(msg)
}

func logTagChange(logger *zerolog.Logger, msg string, e Entity, name string) {
	logger.Debug().Int("entity", int(e)).Str("tag", name).Msg(msg)
}

func componentArray(s *Storage, kinds []ComponentKind) *zerolog.Array {
	arr := zerolog.Arr()
	for _, k := range kinds {
		arr = arr.Dict(zerolog.Dict().
			Int("component_id", int(k)).
			Str("component_name", s.componentRegistry.Name(k)))
	}
	return arr
}

func tagArray(s *Storage, kinds []TagKind) *zerolog.Array {
	arr := zerolog.Arr()
	for _, k := range kinds {
		arr = arr.Dict(zerolog.Dict().
			Int("tag_id", int(k)).
			Str("tag_name", s.tagRegistry.Name(k)))
	}
	return arr
}

// LogComponents logs every component and tag kind registered with s, in slot
// order.
func LogComponents(logger *zerolog.Logger, s *Storage, level zerolog.Level) {
	components := make([]ComponentKind, s.componentRegistry.Len())
	for i := range components {
		components[i] = ComponentKind(i)
	}
	tags := make([]TagKind, s.tagRegistry.Len())
	for i := range tags {
		tags[i] = TagKind(i)
	}

	logger.WithLevel(level).
		Int("total_components", len(components)).
		Array("components", componentArray(s, components)).
		Int("total_tags", len(tags)).
		Array("tags", tagArray(s, tags)).
		Send()
}

// LogEntity logs the components and tags currently held by e.
func LogEntity(logger *zerolog.Logger, s *Storage, level zerolog.Level, e Entity) {
	if !s.IsValid(e) {
		logInvalidEntity(logger, "log entity", e)
		return
	}

	logger.WithLevel(level).
		Int("entity_id", int(e)).
		Array("components", componentArray(s, s.components.kinds(e))).
		Array("tags", tagArray(s, s.tags.kinds(e))).
		Send()
}
