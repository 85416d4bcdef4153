package ecs

import "reflect"

// iComponentStore is the type-erased face of a packed component store. The
// Coordinator dispatches through it so that entity destruction can purge
// every registered store without knowing the concrete component types.
type iComponentStore interface {
	insertAny(e Entity, component any) error
	remove(e Entity) error
	getAny(e Entity) (any, error)
	// entityDestroyed is a best-effort remove: a no-op, not an error, when
	// the entity has no entry in this store.
	entityDestroyed(e Entity)
	count() int
	componentType() reflect.Type
}
