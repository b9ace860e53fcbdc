package ecs

import "errors"

// World and entity errors
var (
	ErrStaleEntity        = errors.New("entity reference is stale")
	ErrUnknownType        = errors.New("component type is not registered")
	ErrMissingComponent   = errors.New("entity has no such component")
	ErrDuplicateComponent = errors.New("entity already has this component")
	ErrDuplicateID        = errors.New("entity with this id already exists")
)
