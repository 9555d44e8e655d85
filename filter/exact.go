package filter

import "pkg.world.dev/tabula/types"

type exact struct {
	refs []Ref
}

// Exact matches entities that own exactly the component types given, no
// more and no fewer.
func Exact(refs ...Ref) ComponentFilter {
	return exact{refs: refs}
}

func (f exact) Predicate(r Resolver) func(types.Mask) bool {
	want := maskOf(r, f.refs)
	return func(m types.Mask) bool {
		return m == want
	}
}
