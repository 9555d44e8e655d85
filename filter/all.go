package filter

import "pkg.world.dev/tabula/types"

type all struct{}

// All matches every entity.
func All() ComponentFilter {
	return &all{}
}

func (f *all) Predicate(Resolver) func(types.Mask) bool {
	return func(types.Mask) bool {
		return true
	}
}
