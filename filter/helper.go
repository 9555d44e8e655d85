package filter

import "pkg.world.dev/tabula/types"

// maskOf folds the refs' resolved bit positions into one mask.
func maskOf(r Resolver, refs []Ref) types.Mask {
	var m types.Mask
	for _, ref := range refs {
		m = m.Set(r.IDOf(ref.typ))
	}
	return m
}
