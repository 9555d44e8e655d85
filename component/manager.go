package component

import (
	"fmt"
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"pkg.world.dev/tabula/types"
)

// ErrComponentNotRegistered is returned when a component is looked up by a
// name no assigned type goes by.
var ErrComponentNotRegistered = eris.New("component not registered")

// Manager assigns bit positions to component types and keeps their metadata.
// Assignment is memoized per Go type: the first reference to a type claims
// the next free position, every later reference resolves to the same one.
//
// A Manager is not synchronized. Sharing one between registries shares the
// whole id space, including the type ceiling.
type Manager struct {
	byType map[reflect.Type]types.ComponentID
	byName map[string]types.ComponentID
	metas  []Metadata
}

// NewManager creates an empty component manager.
func NewManager() *Manager {
	return &Manager{
		byType: make(map[reflect.Type]types.ComponentID),
		byName: make(map[string]types.ComponentID),
	}
}

// ID returns the bit position for the component type T in m, assigning the
// next free position on first reference.
func ID[T any](m *Manager) types.ComponentID {
	return m.IDOf(reflect.TypeFor[T]())
}

// IDOf returns the bit position for the component type t, assigning the next
// free position on first reference. It panics when the type ceiling is
// exhausted or when t's display name is already taken by a different type.
func (m *Manager) IDOf(t reflect.Type) types.ComponentID {
	if id, ok := m.byType[t]; ok {
		return id
	}
	return m.assign(t)
}

func (m *Manager) assign(t reflect.Type) types.ComponentID {
	if len(m.metas) >= types.MaxComponentTypes {
		panic(fmt.Sprintf(
			"component: cannot assign %v, the limit of %d component types is exhausted",
			t, types.MaxComponentTypes,
		))
	}
	meta := newMetadata(types.ComponentID(len(m.metas)), t)
	if prev, taken := m.byName[meta.name]; taken {
		panic(fmt.Sprintf(
			"component: name %q is already taken by %v, cannot assign %v%s",
			meta.name, m.metas[prev].typ, t, schemaDiff(m.metas[prev].schema, meta.schema),
		))
	}
	m.byType[t] = meta.id
	m.byName[meta.name] = meta.id
	m.metas = append(m.metas, meta)
	return meta.id
}

// schemaDiff renders the JSON schema difference between two colliding
// component types, so a name conflict shows whether the types merely share a
// name or also diverge in shape.
func schemaDiff(a, b []byte) string {
	if a == nil || b == nil {
		return ""
	}
	patch, err := jsondiff.CompareJSON(a, b)
	if err != nil || patch.String() == "" {
		return ""
	}
	return "; schema diff: " + patch.String()
}

// ByName returns the metadata for the assigned component named name.
func (m *Manager) ByName(name string) (Metadata, error) {
	id, ok := m.byName[name]
	if !ok {
		return Metadata{}, eris.Wrap(ErrComponentNotRegistered, fmt.Sprintf("component %q is not registered", name))
	}
	return m.metas[id], nil
}

// Metadata returns the metadata for an already assigned id.
func (m *Manager) Metadata(id types.ComponentID) Metadata {
	return m.metas[id]
}

// Components returns the metadata of every assigned component type in id
// order.
func (m *Manager) Components() []Metadata {
	return append([]Metadata(nil), m.metas...)
}

// Count returns how many component types have been assigned bits.
func (m *Manager) Count() int {
	return len(m.metas)
}
