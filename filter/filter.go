// Package filter builds the predicates that views match entities against.
// Filters are written in terms of component types and bound to a concrete
// bit assignment only when a view compiles them, so the same filter value
// can serve any number of registries.
package filter

import (
	"reflect"

	"pkg.world.dev/tabula/types"
)

// Resolver maps component types to their bit positions, assigning a position
// on first reference.
type Resolver interface {
	IDOf(t reflect.Type) types.ComponentID
}

// ComponentFilter selects entities by the component types they own.
type ComponentFilter interface {
	// Predicate binds the filter to r's bit assignment and returns the
	// mask test a view runs per entity.
	Predicate(r Resolver) func(types.Mask) bool
}
