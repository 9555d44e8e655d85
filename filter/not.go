package filter

import "pkg.world.dev/tabula/types"

// Not matches entities the given filter does not match.
func Not(filter ComponentFilter) ComponentFilter {
	return &not{filter: filter}
}

type not struct {
	filter ComponentFilter
}

func (f *not) Predicate(r Resolver) func(types.Mask) bool {
	inner := f.filter.Predicate(r)
	return func(m types.Mask) bool {
		return !inner(m)
	}
}
