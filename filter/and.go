package filter

import "pkg.world.dev/tabula/types"

type and struct {
	filters []ComponentFilter
}

// And matches entities that every given filter matches.
func And(filters ...ComponentFilter) ComponentFilter {
	return &and{filters: filters}
}

func (f *and) Predicate(r Resolver) func(types.Mask) bool {
	preds := compile(r, f.filters)
	return func(m types.Mask) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

func compile(r Resolver, filters []ComponentFilter) []func(types.Mask) bool {
	preds := make([]func(types.Mask) bool, len(filters))
	for i, f := range filters {
		preds[i] = f.Predicate(r)
	}
	return preds
}
