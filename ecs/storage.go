package ecs

import (
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Storage is the registry facade: it owns entity identity, component data and
// tag membership for a fixed number of entities. Every per-entity operation
// validates the handle first; invalid handles never reach the stores.
//
// A Storage is not safe for concurrent use.
type Storage struct {
	capacity int
	logger   zerolog.Logger

	componentRegistry *ComponentRegistry
	tagRegistry       *TagRegistry

	entities   *entityRegistry
	components *componentStore
	tags       *tagStore
}

// NewStorage builds a storage for the given closed sets of component and tag
// types. Both registries are sealed; either may be nil when unused. It panics
// with ErrInvalidCapacity if the configured capacity is not positive.
func NewStorage(components *ComponentRegistry, tags *TagRegistry, opts ...Option) *Storage {
	if components == nil {
		components = NewComponentRegistry()
	}
	if tags == nil {
		tags = NewTagRegistry()
	}

	s := &Storage{
		capacity:          DefaultCapacity,
		logger:            log.Logger,
		componentRegistry: components,
		tagRegistry:       tags,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.capacity <= 0 {
		panic(eris.Wrapf(ErrInvalidCapacity, "capacity must be positive, got %d", s.capacity))
	}

	components.seal()
	tags.seal()

	s.entities = newEntityRegistry(s.capacity)
	s.components = newComponentStore(components, s.capacity)
	s.tags = newTagStore(tags, s.capacity)
	return s
}

// Components returns the component registry backing s.
func (s *Storage) Components() *ComponentRegistry {
	return s.componentRegistry
}

// Tags returns the tag registry backing s.
func (s *Storage) Tags() *TagRegistry {
	return s.tagRegistry
}

// Logger returns the diagnostic sink.
func (s *Storage) Logger() *zerolog.Logger {
	return &s.logger
}

// Capacity returns the maximum number of simultaneously live entities.
func (s *Storage) Capacity() int {
	return s.capacity
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.entities.live
}

// HighWaterMark returns the largest handle ever allocated. Scans stop there.
func (s *Storage) HighWaterMark() Entity {
	return s.entities.highWater
}

// IsValid reports whether e is a live handle.
func (s *Storage) IsValid(e Entity) bool {
	return s.entities.isValid(e)
}

// Create allocates a handle with no components and no tags. It returns
// NoEntity when the storage is at capacity.
func (s *Storage) Create() Entity {
	e, ok := s.entities.create()
	if !ok {
		logCapacityExhausted(&s.logger, s.capacity)
		return NoEntity
	}
	// Clear residue left by the handle's previous occupant.
	s.components.clear(e)
	s.tags.clear(e)
	return e
}

// Destroy retires e and returns its handle to the free list. Its component
// membership is cleared here; its tag row is cleared when the handle is
// next created.
func (s *Storage) Destroy(e Entity) {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "destroy entity", e)
		return
	}
	s.components.clear(e)
	s.entities.destroy(e)
}

// AddComponents attaches each kind to e in argument order. Kinds e already
// holds keep their current value.
func (s *Storage) AddComponents(e Entity, kinds ...ComponentKind) {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "add component", e)
		return
	}
	s.componentRegistry.check(kinds)
	for _, k := range kinds {
		s.addComponent(e, k)
	}
}

func (s *Storage) addComponent(e Entity, k ComponentKind) any {
	value, added := s.components.add(e, k)
	if !added {
		logDuplicateComponent(&s.logger, e, s.componentRegistry.Name(k))
		return value
	}
	logComponentChange(&s.logger, "component added", e, s.componentRegistry.Name(k))
	return value
}

// RemoveComponents detaches each kind from e. Absent kinds are ignored.
func (s *Storage) RemoveComponents(e Entity, kinds ...ComponentKind) {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "remove component", e)
		return
	}
	s.componentRegistry.check(kinds)
	for _, k := range kinds {
		if s.components.remove(e, k) {
			logComponentChange(&s.logger, "component removed", e, s.componentRegistry.Name(k))
		}
	}
}

// HasComponents reports whether e holds every listed kind.
func (s *Storage) HasComponents(e Entity, kinds ...ComponentKind) bool {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "has component", e)
		return false
	}
	s.componentRegistry.check(kinds)
	return s.components.has(e, kinds...)
}

// Component returns a pointer to e's value of kind k, or nil if e does not
// hold k.
func (s *Storage) Component(e Entity, k ComponentKind) any {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "get component", e)
		return nil
	}
	s.componentRegistry.check([]ComponentKind{k})
	value, ok := s.components.get(e, k)
	if !ok {
		logMissingComponent(&s.logger, e, s.componentRegistry.Name(k))
		return nil
	}
	return value
}

// ComponentKinds returns the kinds e currently holds in slot order.
func (s *Storage) ComponentKinds(e Entity) []ComponentKind {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "list components", e)
		return nil
	}
	return s.components.kinds(e)
}

// AddTags marks e with each listed tag.
func (s *Storage) AddTags(e Entity, kinds ...TagKind) {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "add tag", e)
		return
	}
	s.tagRegistry.check(kinds)
	s.tags.add(e, kinds...)
	for _, k := range kinds {
		logTagChange(&s.logger, "tag added", e, s.tagRegistry.Name(k))
	}
}

// RemoveTags clears each listed tag from e. Absent tags are ignored.
func (s *Storage) RemoveTags(e Entity, kinds ...TagKind) {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "remove tag", e)
		return
	}
	s.tagRegistry.check(kinds)
	s.tags.remove(e, kinds...)
	for _, k := range kinds {
		logTagChange(&s.logger, "tag removed", e, s.tagRegistry.Name(k))
	}
}

// HasTags reports whether e carries every listed tag.
func (s *Storage) HasTags(e Entity, kinds ...TagKind) bool {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "has tag", e)
		return false
	}
	s.tagRegistry.check(kinds)
	return s.tags.has(e, kinds...)
}

// TagKinds returns the tags e currently carries in slot order.
func (s *Storage) TagKinds(e Entity) []TagKind {
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "list tags", e)
		return nil
	}
	return s.tags.kinds(e)
}

// ComponentKindOf returns the kind T was registered under. It panics with
// ErrComponentNotRegistered if T is not part of the storage's registry.
func ComponentKindOf[T any](s *Storage) ComponentKind {
	return s.componentRegistry.kindOf(reflect.TypeFor[T]())
}

// TagKindOf returns the kind T was registered under. It panics with
// ErrTagNotRegistered if T is not part of the storage's registry.
func TagKindOf[T any](s *Storage) TagKind {
	return s.tagRegistry.kindOf(reflect.TypeFor[T]())
}

// AddComponent attaches a zero T to e and returns a pointer to it. If e
// already holds a T the existing value is returned unchanged. It returns nil
// if e is not valid.
func AddComponent[T any](s *Storage, e Entity) *T {
	k := ComponentKindOf[T](s)
	if !s.IsValid(e) {
		logInvalidEntity(&s.logger, "add component", e)
		return nil
	}
	return s.addComponent(e, k).(*T)
}

// RemoveComponent detaches T from e. The stored value is left in place until
// T is next added.
func RemoveComponent[T any](s *Storage, e Entity) {
	s.RemoveComponents(e, ComponentKindOf[T](s))
}

// HasComponent reports whether e holds a T.
func HasComponent[T any](s *Storage, e Entity) bool {
	return s.HasComponents(e, ComponentKindOf[T](s))
}

// GetComponent returns a pointer to e's T, or nil if e is invalid or holds
// no T.
func GetComponent[T any](s *Storage, e Entity) *T {
	value := s.Component(e, ComponentKindOf[T](s))
	if value == nil {
		return nil
	}
	return value.(*T)
}

// AddTag marks e with tag T.
func AddTag[T any](s *Storage, e Entity) {
	s.AddTags(e, TagKindOf[T](s))
}

// RemoveTag clears tag T from e.
func RemoveTag[T any](s *Storage, e Entity) {
	s.RemoveTags(e, TagKindOf[T](s))
}

// HasTag reports whether e carries tag T.
func HasTag[T any](s *Storage, e Entity) bool {
	return s.HasTags(e, TagKindOf[T](s))
}
