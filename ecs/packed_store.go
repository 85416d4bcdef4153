package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

const packedStoreInitialCapacity = 256

// packedStore holds every live component of type T in a gapless dense array,
// paired with two index maps: slot-to-entity (a parallel dense slice) and
// entity-to-slot (an integer hash map). Insert appends, removal swaps the
// last element into the vacated slot, so all operations are O(1) and the
// dense array stays contiguous for iteration.
type packedStore[T any] struct {
	dense    []T
	entities []Entity // slot -> entity, parallel to dense
	slots    *intmap.Map[Entity, uint32]
}

var _ iComponentStore = &packedStore[int]{}

func newPackedStore[T any]() *packedStore[T] {
	return &packedStore[T]{
		slots: intmap.New[Entity, uint32](packedStoreInitialCapacity),
	}
}

func (ps *packedStore[T]) insert(e Entity, value T) error {
	if _, exists := ps.slots.Get(e); exists {
		return DuplicateComponentError{Entity: e, Type: ps.componentType()}
	}
	ps.slots.Put(e, uint32(len(ps.dense)))
	ps.dense = append(ps.dense, value)
	ps.entities = append(ps.entities, e)
	return nil
}

func (ps *packedStore[T]) remove(e Entity) error {
	slot, exists := ps.slots.Get(e)
	if !exists {
		return ComponentNotFoundError{Entity: e, Type: ps.componentType()}
	}

	// Swap-and-pop: the last element fills the vacated slot.
	last := uint32(len(ps.dense) - 1)
	moved := ps.entities[last]
	ps.dense[slot] = ps.dense[last]
	ps.entities[slot] = moved
	ps.slots.Put(moved, slot)

	var zero T
	ps.dense[last] = zero
	ps.dense = ps.dense[:last]
	ps.entities = ps.entities[:last]
	ps.slots.Del(e)
	return nil
}

func (ps *packedStore[T]) get(e Entity) (*T, error) {
	slot, exists := ps.slots.Get(e)
	if !exists {
		return nil, ComponentNotFoundError{Entity: e, Type: ps.componentType()}
	}
	return &ps.dense[slot], nil
}

func (ps *packedStore[T]) has(e Entity) bool {
	_, exists := ps.slots.Get(e)
	return exists
}

// All iterates slot order over every (entity, component) pair in the store.
func (ps *packedStore[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for slot := range ps.dense {
			if !yield(ps.entities[slot], &ps.dense[slot]) {
				return
			}
		}
	}
}

// iComponentStore implementation.

func (ps *packedStore[T]) insertAny(e Entity, component any) error {
	switch v := component.(type) {
	case T:
		return ps.insert(e, v)
	case *T:
		return ps.insert(e, *v)
	default:
		return UnregisteredComponentError{Type: reflect.TypeOf(component)}
	}
}

func (ps *packedStore[T]) getAny(e Entity) (any, error) {
	return ps.get(e)
}

func (ps *packedStore[T]) entityDestroyed(e Entity) {
	if ps.has(e) {
		// The entry is known to exist, remove cannot fail.
		_ = ps.remove(e)
	}
}

func (ps *packedStore[T]) count() int {
	return len(ps.dense)
}

func (ps *packedStore[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}
