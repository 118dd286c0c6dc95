package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

// ComponentKind identifies a registered component type. Kinds are assigned in
// registration order starting at zero and double as the type's slot in the
// membership matrix and its dense value array.
type ComponentKind int

// TagKind identifies a registered tag type within its TagRegistry.
type TagKind int

// kindSet is the bookkeeping shared by ComponentRegistry and TagRegistry:
// an ordered list of types and a lookup from type identity to kind.
type kindSet[K ~int] struct {
	kinds  *intmap.Map[int, K]
	types  []reflect.Type
	sealed bool
}

func newKindSet[K ~int]() kindSet[K] {
	return kindSet[K]{
		kinds: intmap.New[int, K](16),
	}
}

// register assigns t the next kind. The second result is false if t was
// already registered, in which case the existing kind is returned.
func (s *kindSet[K]) register(t reflect.Type, what string) (K, bool) {
	if k, ok := s.kinds.Get(typeKey(t)); ok {
		return k, false
	}
	if s.sealed {
		panic(eris.Wrapf(ErrRegistrySealed, "cannot register %s %s", what, t))
	}

	k := K(len(s.types))
	s.kinds.Put(typeKey(t), k)
	s.types = append(s.types, t)
	return k, true
}

func (s *kindSet[K]) lookup(t reflect.Type) (K, bool) {
	return s.kinds.Get(typeKey(t))
}

func (s *kindSet[K]) contains(k K) bool {
	return k >= 0 && int(k) < len(s.types)
}

func (s *kindSet[K]) seal() {
	s.sealed = true
}

// Len returns the number of registered kinds.
func (s *kindSet[K]) Len() int {
	return len(s.types)
}

// Sealed reports whether the registry backs a Storage and no longer accepts
// new types.
func (s *kindSet[K]) Sealed() bool {
	return s.sealed
}

// Type returns the Go type registered under k, or nil if k is unknown.
func (s *kindSet[K]) Type(k K) reflect.Type {
	if !s.contains(k) {
		return nil
	}
	return s.types[k]
}

// Name returns a printable name for k.
func (s *kindSet[K]) Name(k K) string {
	if !s.contains(k) {
		return "<unregistered>"
	}
	return s.types[k].String()
}

// ComponentRegistry is the closed set of component types a Storage supports.
// Register every type before passing the registry to NewStorage; the
// registry is sealed at that point and slots never change afterwards.
type ComponentRegistry struct {
	kindSet[ComponentKind]
	factories []func(capacity int) iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		kindSet: newKindSet[ComponentKind](),
	}
}

// RegisterComponent registers T with the registry and returns its kind.
// Registering the same type twice returns the existing kind. It panics if
// the registry is sealed or T is a pointer, map, channel or function type.
func RegisterComponent[T any](r *ComponentRegistry) ComponentKind {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic(eris.Wrapf(ErrInvalidComponentType, "component %s must be a value type", t))
	}

	k, added := r.register(t, "component")
	if added {
		r.factories = append(r.factories, func(capacity int) iComponentStorage {
			return newDenseComponentStorage[T](capacity)
		})
	}
	return k
}

// kindOf resolves a Go type to its kind, panicking if it was never registered.
func (r *ComponentRegistry) kindOf(t reflect.Type) ComponentKind {
	k, ok := r.lookup(t)
	if !ok {
		panic(eris.Wrapf(ErrComponentNotRegistered, "component %s", t))
	}
	return k
}

func (r *ComponentRegistry) check(kinds []ComponentKind) {
	for _, k := range kinds {
		if !r.contains(k) {
			panic(eris.Wrapf(ErrComponentNotRegistered, "component kind %d", k))
		}
	}
}

// TagRegistry is the closed set of tag types a Storage supports. Tags are
// payload-free markers; any type may serve, typically an empty struct.
type TagRegistry struct {
	kindSet[TagKind]
}

// NewTagRegistry creates an empty tag registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{
		kindSet: newKindSet[TagKind](),
	}
}

// RegisterTag registers T as a tag and returns its kind. Registering the
// same type twice returns the existing kind. It panics if the registry is
// sealed.
func RegisterTag[T any](r *TagRegistry) TagKind {
	k, _ := r.register(reflect.TypeFor[T](), "tag")
	return k
}

func (r *TagRegistry) kindOf(t reflect.Type) TagKind {
	k, ok := r.lookup(t)
	if !ok {
		panic(eris.Wrapf(ErrTagNotRegistered, "tag %s", t))
	}
	return k
}

func (r *TagRegistry) check(kinds []TagKind) {
	for _, k := range kinds {
		if !r.contains(k) {
			panic(eris.Wrapf(ErrTagNotRegistered, "tag kind %d", k))
		}
	}
}
