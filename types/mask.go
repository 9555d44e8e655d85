package types

import "math/bits"

// Mask is a 64-bit component presence set. Bit k is set when the owning
// entity has the component type assigned ComponentID k.
type Mask uint64

// MaskOf builds a Mask with the bit for each given id set.
func MaskOf(ids ...ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m = m.Set(id)
	}
	return m
}

// Has reports whether the bit for id is set.
func (m Mask) Has(id ComponentID) bool {
	return m&(1<<id) != 0
}

// Set returns m with the bit for id set.
func (m Mask) Set(id ComponentID) Mask {
	return m | 1<<id
}

// Clear returns m with the bit for id cleared.
func (m Mask) Clear(id ComponentID) Mask {
	return m &^ (1 << id)
}

// ContainsAll reports whether every bit set in other is also set in m.
func (m Mask) ContainsAll(other Mask) bool {
	return m&other == other
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
