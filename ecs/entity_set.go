package ecs

import "github.com/kamstrup/intmap"

// entitySet is membership-only sparse-set storage: a dense slice of entity
// ids plus an entity-to-slot index. Add, remove and contains are O(1);
// iteration order over the dense slice is unspecified.
type entitySet struct {
	dense []Entity
	slots *intmap.Map[Entity, uint32]
}

func newEntitySet() *entitySet {
	return &entitySet{
		slots: intmap.New[Entity, uint32](64),
	}
}

func (s *entitySet) add(e Entity) {
	if _, exists := s.slots.Get(e); exists {
		return
	}
	s.slots.Put(e, uint32(len(s.dense)))
	s.dense = append(s.dense, e)
}

func (s *entitySet) remove(e Entity) {
	slot, exists := s.slots.Get(e)
	if !exists {
		return
	}
	last := uint32(len(s.dense) - 1)
	moved := s.dense[last]
	s.dense[slot] = moved
	s.slots.Put(moved, slot)
	s.dense = s.dense[:last]
	s.slots.Del(e)
}

func (s *entitySet) contains(e Entity) bool {
	_, exists := s.slots.Get(e)
	return exists
}

func (s *entitySet) size() int {
	return len(s.dense)
}
