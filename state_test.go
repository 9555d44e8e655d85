package tabula_test

import (
	"testing"

	"pkg.world.dev/tabula"
	"pkg.world.dev/tabula/assert"
)

type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

func (Health) Name() string { return "hp" }

func TestStateOf(t *testing.T) {
	r := tabula.New()
	e := tabula.Spawn3(r,
		Foo{Value: 10},
		Qux{Label: "boss"},
		Health{Current: 80, Max: 100},
	)

	state, err := tabula.StateOf(r, e)
	assert.NilError(t, err)

	assert.Equal(t, uint64(e), state.ID)
	assert.Len(t, state.Components, 3)
	assert.JSONEq(t, `{"Value": 10}`, string(state.Components["Foo"]))
	assert.JSONEq(t, `{"Label": "boss"}`, string(state.Components["Qux"]))
	assert.JSONEq(t, `{"current": 80, "max": 100}`, string(state.Components["hp"]))
}

func TestStateOfEmptyEntity(t *testing.T) {
	r := tabula.New()
	e := r.Create()

	state, err := tabula.StateOf(r, e)
	assert.NilError(t, err)
	assert.Equal(t, uint64(e), state.ID)
	assert.Len(t, state.Components, 0)
}

func TestStateOfTracksUnassign(t *testing.T) {
	r := tabula.New()
	e := tabula.Spawn2(r, Foo{Value: 1}, Bar{Value: 2})
	tabula.Unassign[Bar](r, e)

	state, err := tabula.StateOf(r, e)
	assert.NilError(t, err)
	assert.Len(t, state.Components, 1)
	_, ok := state.Components["Bar"]
	assert.False(t, ok)
}

func TestStateOfDeadEntity(t *testing.T) {
	r := tabula.New()
	e := r.Create()
	r.Destroy(e)

	_, err := tabula.StateOf(r, e)
	assert.ErrorIs(t, err, tabula.ErrNotAlive)
}
