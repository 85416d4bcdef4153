package ecs

import (
	"fmt"
	"reflect"
)

// opKind discriminates queued structural operations.
type opKind int

//go:generate go run golang.org/x/tools/cmd/stringer -type=opKind -trimprefix=op

const (
	opCreate opKind = iota
	opDestroy
	opAdd
	opRemove
	opDefer
)

type operation struct {
	kind       opKind
	entity     Entity
	components []any        // opCreate
	component  any          // opAdd
	compType   reflect.Type // opRemove
	fn         func()       // opDefer
}

// Commands buffers structural mutations requested during system execution so
// they can be applied between frames, keeping mid-iteration state intact.
// Operations are applied by Flush in a fixed order: destroys, removes, adds,
// creates, then deferred functions.
type Commands struct {
	ops []operation
}

func newCommands() *Commands {
	return &Commands{}
}

// Create queues a new entity carrying the given component values.
func (c *Commands) Create(components ...any) {
	c.ops = append(c.ops, operation{kind: opCreate, components: components})
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(e Entity) {
	c.ops = append(c.ops, operation{kind: opDestroy, entity: e})
}

// AddComponent queues a component attachment. The component's concrete type
// selects the store, so it must be a registered component type (or a pointer
// to one).
func (c *Commands) AddComponent(e Entity, component any) {
	c.ops = append(c.ops, operation{kind: opAdd, entity: e, component: component})
}

// RemoveComponent queues a component detachment by type.
func (c *Commands) RemoveComponent(e Entity, compType reflect.Type) {
	c.ops = append(c.ops, operation{kind: opRemove, entity: e, compType: compType})
}

// Defer queues an arbitrary function to run after all structural operations.
func (c *Commands) Defer(fn func()) {
	c.ops = append(c.ops, operation{kind: opDefer, fn: fn})
}

// Flush applies all queued operations to the coordinator and resets the
// buffer. Operations targeting an entity destroyed earlier in the same flush
// are skipped rather than failed, since systems queue independently and
// cannot see each other's buffered destroys. Any other operation error
// aborts the flush.
func (c *Commands) Flush(world *Coordinator) error {
	defer func() {
		c.ops = c.ops[:0]
	}()

	destroyed := make(map[Entity]bool)
	for _, op := range c.ops {
		if op.kind != opDestroy || destroyed[op.entity] {
			continue
		}
		if err := world.DestroyEntity(op.entity); err != nil {
			return fmt.Errorf("deferred %v of entity %d: %w", op.kind, op.entity, err)
		}
		destroyed[op.entity] = true
	}

	for _, op := range c.ops {
		if op.kind != opRemove || destroyed[op.entity] {
			continue
		}
		if err := world.removeComponentType(op.entity, op.compType); err != nil {
			return fmt.Errorf("deferred %v of %v from entity %d: %w", op.kind, op.compType, op.entity, err)
		}
	}

	for _, op := range c.ops {
		if op.kind != opAdd || destroyed[op.entity] {
			continue
		}
		if err := world.AddComponentValue(op.entity, op.component); err != nil {
			return fmt.Errorf("deferred %v of %T to entity %d: %w", op.kind, op.component, op.entity, err)
		}
	}

	for _, op := range c.ops {
		if op.kind != opCreate {
			continue
		}
		e, err := world.CreateEntity()
		if err != nil {
			return fmt.Errorf("deferred %v: %w", op.kind, err)
		}
		for _, component := range op.components {
			if err := world.AddComponentValue(e, component); err != nil {
				return fmt.Errorf("deferred %v: %w", op.kind, err)
			}
		}
	}

	for _, op := range c.ops {
		if op.kind == opDefer {
			op.fn()
		}
	}
	return nil
}
