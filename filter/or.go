package filter

import "pkg.world.dev/tabula/types"

type or struct {
	filters []ComponentFilter
}

// Or matches entities that at least one of the given filters matches.
func Or(filters ...ComponentFilter) ComponentFilter {
	return &or{filters: filters}
}

func (f *or) Predicate(r Resolver) func(types.Mask) bool {
	preds := compile(r, f.filters)
	return func(m types.Mask) bool {
		for _, p := range preds {
			if p(m) {
				return true
			}
		}
		return false
	}
}
