package ecs

import (
	"fmt"
	"reflect"
)

// CapacityExceededError is returned when the entity pool is exhausted.
type CapacityExceededError struct {
	Capacity int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("entity capacity exceeded: %d entities live", e.Capacity)
}

// InvalidEntityError is returned when an out-of-range or already-destroyed
// entity identifier is used.
type InvalidEntityError struct {
	Entity Entity
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity: %d", e.Entity)
}

// TooManyComponentTypesError is returned when registering a component type
// would exceed the signature width.
type TooManyComponentTypesError struct {
	Limit int
}

func (e TooManyComponentTypesError) Error() string {
	return fmt.Sprintf("too many component types: limit is %d", e.Limit)
}

// UnregisteredComponentError is returned when a component type is used
// before being registered.
type UnregisteredComponentError struct {
	Type reflect.Type
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component type not registered: %v", e.Type)
}

// DuplicateComponentError is returned when inserting a component the entity
// already has. Components are never implicitly overwritten.
type DuplicateComponentError struct {
	Entity Entity
	Type   reflect.Type
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("entity %d already has component %v", e.Entity, e.Type)
}

// ComponentNotFoundError is returned when accessing or removing a component
// the entity does not have.
type ComponentNotFoundError struct {
	Entity Entity
	Type   reflect.Type
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %d has no component %v", e.Entity, e.Type)
}

// UnregisteredSystemError is returned when a system type is referenced
// before being registered.
type UnregisteredSystemError struct {
	Type reflect.Type
}

func (e UnregisteredSystemError) Error() string {
	return fmt.Sprintf("system type not registered: %v", e.Type)
}

// ConflictingSystemError is returned when a system's required signature is
// re-declared with a different value.
type ConflictingSystemError struct {
	Type reflect.Type
}

func (e ConflictingSystemError) Error() string {
	return fmt.Sprintf("system %v already declared a different signature", e.Type)
}
