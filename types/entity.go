package types

import (
	"encoding/json"
	"math/bits"
)

// ID is the constraint for entity handle types. A handle packs a slot index
// in its high half and a generation version in its low half, so a 32-bit
// handle addresses 65536 slots over 65535 generations each.
type ID interface {
	~uint32 | ~uint64
}

// halfBits returns the width in bits of one half of E.
func halfBits[E ID]() int {
	return bits.Len64(uint64(^E(0))) / 2
}

// Invalid returns the reserved all-ones handle. Entity allocation never
// produces it, so it compares unequal to every handle a registry hands out.
func Invalid[E ID]() E {
	return ^E(0)
}

// Valid reports whether e is anything other than the invalid handle. It says
// nothing about liveness; a destroyed entity's handle is still Valid.
func Valid[E ID](e E) bool {
	return e != Invalid[E]()
}

// Index extracts the slot index from the high half of e.
func Index[E ID](e E) E {
	return e >> halfBits[E]()
}

// Version extracts the generation version from the low half of e.
func Version[E ID](e E) E {
	return e & (E(1)<<halfBits[E]() - 1)
}

// WithIndex returns e with its index half replaced by index, preserving the
// version half.
func WithIndex[E ID](e E, index E) E {
	half := halfBits[E]()
	return index<<half | e&(E(1)<<half - 1)
}

// WithVersion returns e with its version half replaced by version, preserving
// the index half.
func WithVersion[E ID](e E, version E) E {
	half := halfBits[E]()
	return e>>half<<half | version
}

// MaxIndex returns the largest slot index representable in E.
func MaxIndex[E ID]() E {
	return Invalid[E]() >> halfBits[E]()
}

// MaxVersion returns the largest version representable in E. No live entity
// ever carries it: slots retire one generation short so that no handle can
// collide with Invalid.
func MaxVersion[E ID]() E {
	return Invalid[E]() >> halfBits[E]()
}

// EntityState is an inspection snapshot of one entity: its raw handle bits
// and the JSON encoding of each component it owns, keyed by component name.
type EntityState struct {
	ID         uint64                     `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}
