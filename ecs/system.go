package ecs

import "iter"

// System represents a behavior that operates on entities with specific
// components. User-defined systems implement this interface and may include
// a Matched field, which the Coordinator wires to the system's live entity
// set during registration, as well as custom state fields that persist
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// Matched gives a system read access to the set of entities currently
// satisfying its required signature. The zero value reports no entities
// until the owning system is registered.
//
// The set is a live view, not a snapshot: structural mutations (destroying
// entities, adding or removing components) must not be interleaved with an
// in-progress iteration. Queue such changes through the frame's Commands
// buffer instead.
type Matched struct {
	set *entitySet
}

func (m *Matched) init(set *entitySet) {
	m.set = set
}

// Entities returns the matched entity ids in unspecified order. The slice
// aliases internal storage; copy it before retaining it across frames.
func (m *Matched) Entities() []Entity {
	if m.set == nil {
		return nil
	}
	return m.set.dense
}

// Iter iterates the matched entities in unspecified order.
func (m *Matched) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if m.set == nil {
			return
		}
		for _, e := range m.set.dense {
			if !yield(e) {
				return
			}
		}
	}
}

func (m *Matched) Contains(e Entity) bool {
	return m.set != nil && m.set.contains(e)
}

func (m *Matched) Len() int {
	if m.set == nil {
		return 0
	}
	return m.set.size()
}
