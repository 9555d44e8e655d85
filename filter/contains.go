package filter

import "pkg.world.dev/tabula/types"

type contains struct {
	refs []Ref
}

// Contains matches entities that own at least all the component types given.
func Contains(refs ...Ref) ComponentFilter {
	return &contains{refs: refs}
}

func (f *contains) Predicate(r Resolver) func(types.Mask) bool {
	want := maskOf(r, f.refs)
	return func(m types.Mask) bool {
		return m.ContainsAll(want)
	}
}
