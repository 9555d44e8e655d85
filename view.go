package tabula

import (
	"iter"

	"github.com/rotisserie/eris"

	"pkg.world.dev/tabula/cql"
	"pkg.world.dev/tabula/filter"
	"pkg.world.dev/tabula/log"
	"pkg.world.dev/tabula/types"
)

// ErrNoMatch is returned by View.First when nothing matches the view.
var ErrNoMatch = eris.New("no entity matches the view")

// View enumerates the entities matching a filter in ascending slot order.
// The candidate slot range is fixed when the view is built, so entities
// created afterwards are not visited; destroying or creating entities while
// iterating is undefined. Views are cheap, build one per walk.
type View[E types.ID] struct {
	registry *Registry[E]
	bound    int
	pred     func(types.Mask) bool
}

// View builds a view over the entities matching every given filter. With no
// filters the view takes in every live entity. Component types the filters
// name are assigned bits as part of compiling them.
func (r *Registry[E]) View(filters ...filter.ComponentFilter) *View[E] {
	var f filter.ComponentFilter
	switch len(filters) {
	case 0:
		f = filter.All()
	case 1:
		f = filters[0]
	default:
		f = filter.And(filters...)
	}
	return &View[E]{
		registry: r,
		bound:    r.table.next,
		pred:     f.Predicate(r.components),
	}
}

// Query builds a view from a query-language expression, resolving component
// names through the registry's manager. Malformed expressions and unknown
// component names are errors.
func (r *Registry[E]) Query(text string) (*View[E], error) {
	f, err := cql.Parse(text, r.components.ByName)
	if err != nil {
		return nil, err
	}
	log.CreateQueryLogger(&r.logger, text).Debug().Msg("query compiled")
	return r.View(f), nil
}

// Each calls fn for every matching entity. fn returning false stops the
// walk early.
func (v *View[E]) Each(fn func(E) bool) {
	for i := 0; i < v.bound; i++ {
		s := &v.registry.table.slots[i]
		if !types.Valid(s.id) || !v.pred(s.mask) {
			continue
		}
		if !fn(s.id) {
			return
		}
	}
}

// Entities returns the matching entities as an iterator usable in a range
// statement.
func (v *View[E]) Entities() iter.Seq[E] {
	return func(yield func(E) bool) {
		v.Each(yield)
	}
}

// Count returns the number of matching entities.
func (v *View[E]) Count() int {
	count := 0
	v.Each(func(E) bool {
		count++
		return true
	})
	return count
}

// First returns the lowest-index matching entity, or ErrNoMatch when the
// view matches nothing.
func (v *View[E]) First() (E, error) {
	first := types.Invalid[E]()
	v.Each(func(e E) bool {
		first = e
		return false
	})
	if !types.Valid(first) {
		return first, ErrNoMatch
	}
	return first, nil
}

// MustFirst returns the lowest-index matching entity and panics when the
// view matches nothing.
func (v *View[E]) MustFirst() E {
	e, err := v.First()
	if err != nil {
		panic("tabula: no entity matches the view")
	}
	return e
}
