package ecs

import (
	"iter"
	"reflect"
)

// EachEntity iterates every live entity in id order. Intended for tooling;
// structural mutations are forbidden while the iteration is in progress.
func (c *Coordinator) EachEntity() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i, ok := range c.entities.alive {
			if ok && !yield(Entity(i)) {
				return
			}
		}
	}
}

// EntityComponentTypes returns the types of the entity's components in
// component-id order.
func (c *Coordinator) EntityComponentTypes(e Entity) ([]reflect.Type, error) {
	sig, err := c.entities.signature(e)
	if err != nil {
		return nil, err
	}
	var types []reflect.Type
	for id, store := range c.components.stores {
		if sig.ContainsAll(NewSignature(ComponentTypeID(id))) {
			types = append(types, store.componentType())
		}
	}
	return types, nil
}

// ComponentByType returns an untyped pointer to the entity's component of
// the given type, for reflection-driven tooling such as the debug overlay.
func (c *Coordinator) ComponentByType(e Entity, t reflect.Type) (any, error) {
	store, err := c.components.storeOf(t)
	if err != nil {
		return nil, err
	}
	return store.getAny(e)
}
