package ecs

import "reflect"

// systemEntry pairs a registered system instance with its required signature
// and the live set of entities currently satisfying it.
type systemEntry struct {
	system      System
	required    Signature
	hasRequired bool
	matched     *entitySet
}

// systemManager owns one entry per registered system type and keeps every
// entry's matched-entity set exactly synchronized with entity signatures.
type systemManager struct {
	order  []*systemEntry
	byType map[reflect.Type]*systemEntry
}

func newSystemManager() *systemManager {
	return &systemManager{
		byType: make(map[reflect.Type]*systemEntry),
	}
}

// systemKey normalizes a system's identity to its struct type, so that a
// *MovementSystem instance and the MovementSystem type parameter agree.
func systemKey(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// register adds a system instance, keyed by its type. Registration is
// idempotent: a second call for the same type returns the existing entry and
// ignores the new instance. Any Matched fields on the instance are wired to
// the entry's entity set.
func (sm *systemManager) register(sys System) *systemEntry {
	key := systemKey(reflect.TypeOf(sys))
	if entry, ok := sm.byType[key]; ok {
		return entry
	}
	entry := &systemEntry{
		system:  sys,
		matched: newEntitySet(),
	}
	sm.byType[key] = entry
	sm.order = append(sm.order, entry)
	sm.injectMatched(sys, entry)
	return entry
}

var matchedType = reflect.TypeFor[Matched]()

// injectMatched scans the system struct for exported Matched fields and
// points them at the entry's entity set.
func (sm *systemManager) injectMatched(sys System, entry *systemEntry) {
	v := reflect.ValueOf(sys)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Type() != matchedType {
			continue
		}
		field.Addr().Interface().(*Matched).init(entry.matched)
	}
}

func (sm *systemManager) lookup(t reflect.Type) (*systemEntry, error) {
	entry, ok := sm.byType[systemKey(t)]
	if !ok {
		return nil, UnregisteredSystemError{Type: t}
	}
	return entry, nil
}

// setSignature declares a system's required component set. Declaring the
// same signature again is harmless; declaring a different one fails.
func (sm *systemManager) setSignature(t reflect.Type, required Signature) (*systemEntry, error) {
	entry, err := sm.lookup(t)
	if err != nil {
		return nil, err
	}
	if entry.hasRequired {
		if entry.required == required {
			return entry, nil
		}
		return nil, ConflictingSystemError{Type: t}
	}
	entry.required = required
	entry.hasRequired = true
	return entry, nil
}

// entityDestroyed removes the entity from every system's set, whether or not
// it was a member.
func (sm *systemManager) entityDestroyed(e Entity) {
	for _, entry := range sm.order {
		entry.matched.remove(e)
	}
}

// entitySignatureChanged re-evaluates the entity against every declared
// signature: systems whose requirements are a subset of the new signature
// gain the entity, all others lose it.
func (sm *systemManager) entitySignatureChanged(e Entity, sig Signature) {
	for _, entry := range sm.order {
		if !entry.hasRequired {
			continue
		}
		if matches(sig, entry.required) {
			entry.matched.add(e)
		} else {
			entry.matched.remove(e)
		}
	}
}

// reconcile rebuilds one entry's membership from the current signature
// table. Used when a signature is declared after entities already exist.
func (sm *systemManager) reconcile(entry *systemEntry, em *entityManager) {
	em.forEachAlive(func(e Entity, sig Signature) {
		if matches(sig, entry.required) {
			entry.matched.add(e)
		} else {
			entry.matched.remove(e)
		}
	})
}
