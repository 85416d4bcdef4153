package ecs

import (
	"github.com/TheBitDrifter/mask"
)

// Signature is a fixed-width bitset over component type ids. Bit i is set
// iff the entity currently has a live entry in component type i's packed
// store. Signatures are plain values: copy them freely, never share them.
type Signature = mask.Mask

// NewSignature builds a Signature with the given component type bits set.
func NewSignature(ids ...ComponentTypeID) Signature {
	var s Signature
	for _, id := range ids {
		s.Mark(uint32(id))
	}
	return s
}

// matches reports whether an entity signature satisfies a required
// signature: every required bit must be set (bitwise AND-equality).
func matches(entity, required Signature) bool {
	return entity.ContainsAll(required)
}
