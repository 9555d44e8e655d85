package tabula

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"pkg.world.dev/tabula/types"
)

// ErrNotAlive is returned by operations that report on dead handles instead
// of panicking.
var ErrNotAlive = eris.New("entity is not alive")

// StateOf captures an inspection snapshot of e: its raw handle bits and the
// JSON encoding of every component it owns, keyed by component name. The
// snapshot is meant for observability and for diffing in tests; it is not a
// persistence format.
func StateOf[E types.ID](r *Registry[E], e E) (types.EntityState, error) {
	if !r.table.alive(e) {
		return types.EntityState{}, eris.Wrap(ErrNotAlive, fmt.Sprintf("entity %#x", uint64(e)))
	}
	i := int(types.Index(e))
	state := types.EntityState{
		ID:         uint64(e),
		Components: make(map[string]json.RawMessage),
	}
	for _, meta := range r.ownedMetadata(r.table.slots[i].mask) {
		bz, err := meta.Encode(r.storage.ValueAt(meta.ID(), i))
		if err != nil {
			return types.EntityState{}, eris.Wrap(err, fmt.Sprintf("failed to encode component %q", meta.Name()))
		}
		state.Components[meta.Name()] = bz
	}
	return state, nil
}
