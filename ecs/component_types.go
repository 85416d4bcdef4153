package ecs

import "reflect"

// ComponentTypeID is a small integer assigned once per distinct component
// type, monotonically increasing. It doubles as the type's bit position in
// entity signatures.
type ComponentTypeID uint32

// MaxComponentTypes is the signature width: the maximum number of distinct
// component types a Coordinator can register.
const MaxComponentTypes = 64

// componentTypes assigns stable ids to component types on registration.
// Lookup of an unregistered type is a hard error; there is no
// auto-registration on first use.
type componentTypes struct {
	ids  map[reflect.Type]ComponentTypeID
	next ComponentTypeID
}

func newComponentTypes() componentTypes {
	return componentTypes{
		ids: make(map[reflect.Type]ComponentTypeID, MaxComponentTypes),
	}
}

// register returns the type's id, assigning a fresh one on first
// registration. The second result reports whether the id was newly assigned.
func (ct *componentTypes) register(t reflect.Type) (ComponentTypeID, bool, error) {
	if id, ok := ct.ids[t]; ok {
		return id, false, nil
	}
	if int(ct.next) >= MaxComponentTypes {
		return 0, false, TooManyComponentTypesError{Limit: MaxComponentTypes}
	}
	id := ct.next
	ct.next++
	ct.ids[t] = id
	return id, true, nil
}

func (ct *componentTypes) lookup(t reflect.Type) (ComponentTypeID, error) {
	id, ok := ct.ids[t]
	if !ok {
		return 0, UnregisteredComponentError{Type: t}
	}
	return id, nil
}

func (ct *componentTypes) count() int {
	return len(ct.ids)
}
