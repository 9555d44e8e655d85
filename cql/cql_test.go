package cql_test

import (
	"testing"

	"pkg.world.dev/tabula/assert"
	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/cql"
	"pkg.world.dev/tabula/types"
)

type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }
type Tag struct{ Value string }

// newManager returns a manager with Position on bit 0, Velocity on bit 1 and
// Tag on bit 2.
func newManager() *component.Manager {
	m := component.NewManager()
	component.ID[Position](m)
	component.ID[Velocity](m)
	component.ID[Tag](m)
	return m
}

// matches compiles the query against m and applies it to mask.
func matches(t *testing.T, m *component.Manager, query string, mask types.Mask) bool {
	t.Helper()
	f, err := cql.Parse(query, m.ByName)
	assert.NilError(t, err)
	return f.Predicate(m)(mask)
}

func TestContainsQuery(t *testing.T) {
	m := newManager()

	assert.True(t, matches(t, m, "CONTAINS(Position)", types.MaskOf(0)))
	assert.True(t, matches(t, m, "CONTAINS(Position)", types.MaskOf(0, 1)))
	assert.False(t, matches(t, m, "CONTAINS(Position)", types.MaskOf(1)))

	assert.True(t, matches(t, m, "CONTAINS(Position, Velocity)", types.MaskOf(0, 1, 2)))
	assert.False(t, matches(t, m, "CONTAINS(Position, Velocity)", types.MaskOf(0)))
}

func TestExactQuery(t *testing.T) {
	m := newManager()

	assert.True(t, matches(t, m, "EXACT(Position, Velocity)", types.MaskOf(0, 1)))
	assert.False(t, matches(t, m, "EXACT(Position, Velocity)", types.MaskOf(0, 1, 2)))
	assert.False(t, matches(t, m, "EXACT(Position)", types.MaskOf(0, 1)))
}

func TestAllQuery(t *testing.T) {
	m := newManager()

	assert.True(t, matches(t, m, "ALL()", types.Mask(0)))
	assert.True(t, matches(t, m, "ALL()", types.MaskOf(0, 1, 2)))
}

func TestNotQuery(t *testing.T) {
	m := newManager()

	assert.False(t, matches(t, m, "!CONTAINS(Position)", types.MaskOf(0)))
	assert.True(t, matches(t, m, "!CONTAINS(Position)", types.MaskOf(1)))
}

func TestOperatorsFoldLeft(t *testing.T) {
	m := newManager()

	// & and | share one precedence level, so a & b | c reads (a & b) | c.
	query := "CONTAINS(Position) & CONTAINS(Velocity) | CONTAINS(Tag)"
	assert.True(t, matches(t, m, query, types.MaskOf(0, 1)))
	assert.True(t, matches(t, m, query, types.MaskOf(2)))
	assert.False(t, matches(t, m, query, types.MaskOf(0)))

	// Parentheses override the fold.
	grouped := "CONTAINS(Position) & (CONTAINS(Velocity) | CONTAINS(Tag))"
	assert.False(t, matches(t, m, grouped, types.MaskOf(2)))
	assert.True(t, matches(t, m, grouped, types.MaskOf(0, 2)))
}

func TestNotBindsToOneValue(t *testing.T) {
	m := newManager()

	query := "!CONTAINS(Position) & CONTAINS(Velocity)"
	assert.True(t, matches(t, m, query, types.MaskOf(1)))
	assert.False(t, matches(t, m, query, types.MaskOf(0, 1)))

	negatedGroup := "!(CONTAINS(Position) & CONTAINS(Velocity))"
	assert.True(t, matches(t, m, negatedGroup, types.MaskOf(0)))
	assert.False(t, matches(t, m, negatedGroup, types.MaskOf(0, 1)))
}

func TestUnknownComponentName(t *testing.T) {
	m := newManager()

	_, err := cql.Parse("CONTAINS(Ghost)", m.ByName)
	assert.ErrorIs(t, err, component.ErrComponentNotRegistered)
}

func TestMalformedQueries(t *testing.T) {
	m := newManager()

	for _, query := range []string{
		"",
		"CONTAINS(",
		"CONTAINS()",
		"EXACT()",
		"Position",
		"CONTAINS(Position) &",
		"& CONTAINS(Position)",
	} {
		_, err := cql.Parse(query, m.ByName)
		assert.Assert(t, err != nil, "query %q must not parse", query)
	}
}
