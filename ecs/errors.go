package ecs

import "github.com/rotisserie/eris"

// Configuration errors. They describe programming mistakes rather than
// runtime conditions, so the registry panics with them (wrapped with
// context) and LoadConfig returns them. Use eris.Is to match.
var (
	ErrComponentNotRegistered = eris.New("component not registered")
	ErrTagNotRegistered       = eris.New("tag not registered")
	ErrRegistrySealed         = eris.New("registry is sealed")
	ErrInvalidComponentType   = eris.New("invalid component type")
	ErrInvalidCapacity        = eris.New("invalid capacity")
)
