package storage

import (
	"fmt"

	"pkg.world.dev/tabula/types"
)

// Store is the type-erased face a typed pool presents to the directory.
type Store interface {
	// Release resets slot index to the zero value.
	Release(index int)
	// ValueAt returns a copy of the value at slot index, or nil.
	ValueAt(index int) any
}

// Interface guard
var _ Store = (*Pool[int])(nil)

// Manager is the pool directory: one slot per possible component bit. Pools
// are created lazily by PoolFor, so a slot stays nil until its component
// type first stores a value.
type Manager struct {
	pools [types.MaxComponentTypes]Store
}

// NewManager creates an empty pool directory.
func NewManager() *Manager {
	return &Manager{}
}

// PoolFor returns the typed pool for component id, creating it on first use.
// A directory slot holds values for exactly one Go type; asking for the same
// id under a different type panics.
func PoolFor[T any](m *Manager, id types.ComponentID) *Pool[T] {
	s := m.pools[id]
	if s == nil {
		p := NewPool[T]()
		m.pools[id] = p
		return p
	}
	p, ok := s.(*Pool[T])
	if !ok {
		panic(fmt.Sprintf("storage: component id %d holds %T, not %T", id, s, (*Pool[T])(nil)))
	}
	return p
}

// ReleaseAll resets slot index in every pool that exists. Pools that never
// stored a value for the slot release a zero value, which is harmless; the
// caller does not need to know which pools the entity actually used.
func (m *Manager) ReleaseAll(index int) {
	for _, s := range m.pools {
		if s != nil {
			s.Release(index)
		}
	}
}

// ValueAt returns a copy of the value stored for component id at slot index,
// or nil when the component's pool was never created or never grew to index.
func (m *Manager) ValueAt(id types.ComponentID, index int) any {
	s := m.pools[id]
	if s == nil {
		return nil
	}
	return s.ValueAt(index)
}
