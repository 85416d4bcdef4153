package ecs

import "reflect"

// componentManager owns one packed store per registered component type,
// reachable both by ComponentTypeID (dense, for signature-indexed work) and
// by reflect.Type (for the generic and type-erased access paths).
type componentManager struct {
	types  componentTypes
	stores []iComponentStore // indexed by ComponentTypeID
	byType map[reflect.Type]iComponentStore
}

func newComponentManager() *componentManager {
	return &componentManager{
		types:  newComponentTypes(),
		byType: make(map[reflect.Type]iComponentStore, MaxComponentTypes),
	}
}

// register assigns an id to the component type and creates its packed store.
// Re-registering an already-known type returns the existing id unchanged.
func (cm *componentManager) register(t reflect.Type, newStore func() iComponentStore) (ComponentTypeID, error) {
	id, created, err := cm.types.register(t)
	if err != nil {
		return 0, err
	}
	if created {
		store := newStore()
		cm.stores = append(cm.stores, store)
		cm.byType[t] = store
	}
	return id, nil
}

func (cm *componentManager) storeOf(t reflect.Type) (iComponentStore, error) {
	store, ok := cm.byType[t]
	if !ok {
		return nil, UnregisteredComponentError{Type: t}
	}
	return store, nil
}

func (cm *componentManager) typeID(t reflect.Type) (ComponentTypeID, error) {
	return cm.types.lookup(t)
}

// entityDestroyed purges the entity from every registered store, whether or
// not it held that component type.
func (cm *componentManager) entityDestroyed(e Entity) {
	for _, store := range cm.stores {
		store.entityDestroyed(e)
	}
}
