// Package tabula is a sparse entity/component registry: an in-process store
// that associates opaque integer handles with heterogeneous, independently
// typed component values and enumerates every entity owning an arbitrary
// combination of component types.
//
// Entities are created and destroyed through a Registry. A handle packs a
// slot index and a generation version into one unsigned integer, so
// destroyed slots can be recycled without old handles silently aliasing
// their successors. Component types need no registration step: the first
// reference to a Go type claims the next of 64 presence bits, and per-type
// pools store the values themselves.
//
//	r := tabula.New()
//
//	player := tabula.Spawn2(r,
//		Position{X: 12, Y: 3},
//		Velocity{DX: 1},
//	)
//
//	tabula.ForEach2(r, func(e uint32, pos *Position, vel *Velocity) {
//		pos.X += vel.DX
//		pos.Y += vel.DY
//	})
//
//	r.Destroy(player)
//
// Richer selections combine filters, or compile from the query language:
//
//	view := r.View(tabula.Contains(tabula.Component[Position]()))
//	view, err := r.Query("CONTAINS(Position) & !CONTAINS(Velocity)")
//
// A Registry is single-threaded: no operation blocks, performs I/O, or
// tolerates concurrent mutation.
package tabula

import (
	"pkg.world.dev/tabula/filter"
	"pkg.world.dev/tabula/types"
)

type (
	// Mask is a 64-bit component presence set.
	Mask = types.Mask
	// ComponentID is the bit position a component manager assigns to a
	// component type.
	ComponentID = types.ComponentID
	// EntityState is an inspection snapshot of one entity.
	EntityState = types.EntityState
	// ComponentFilter selects entities by the component types they own.
	ComponentFilter = filter.ComponentFilter
	// Ref names a component type inside a filter.
	Ref = filter.Ref
)

var (
	All      = filter.All
	And      = filter.And
	Or       = filter.Or
	Not      = filter.Not
	Contains = filter.Contains
	Exact    = filter.Exact
)

// Component returns a filter reference for the component type T.
func Component[T any]() filter.Ref {
	return filter.Component[T]()
}
