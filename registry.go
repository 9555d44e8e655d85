package tabula

import (
	"github.com/rs/zerolog"

	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/filter"
	"pkg.world.dev/tabula/log"
	"pkg.world.dev/tabula/storage"
	"pkg.world.dev/tabula/types"
)

// Interface guards
var (
	_ filter.Resolver = (*component.Manager)(nil)
	_ log.Loggable    = (*Registry[uint32])(nil)
)

// Registry is the entity/component store. It owns the entity table, the
// component bit assignment and the per-type pools; every operation in the
// package goes through one.
//
// A Registry is not safe for concurrent use.
type Registry[E types.ID] struct {
	table      table[E]
	components *component.Manager
	storage    *storage.Manager
	logger     zerolog.Logger
}

// New constructs a registry with 32-bit handles, which address 65536
// entity slots. Use NewRegistry to pick another handle width.
func New(opts ...Option) *Registry[uint32] {
	return NewRegistry[uint32](opts...)
}

// NewRegistry constructs a registry whose handle layout is chosen by E.
func NewRegistry[E types.ID](opts ...Option) *Registry[E] {
	s := settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt.apply(&s)
	}
	r := &Registry[E]{
		components: s.components,
		storage:    storage.NewManager(),
		logger:     s.buildLogger(),
	}
	if r.components == nil {
		r.components = component.NewManager()
	}
	if s.capacity > 0 {
		r.table.slots = make([]slot[E], s.capacity)
	}
	r.logger.Debug().Int("initial_capacity", s.capacity).Msg("registry created")
	return r
}

// Create allocates a fresh entity that owns no components.
func (r *Registry[E]) Create() E {
	e := r.table.create()
	r.logger.Debug().Uint64("entity_id", uint64(e)).Msg("entity created")
	return e
}

// CreateMany allocates n entities and returns their handles in allocation
// order.
func (r *Registry[E]) CreateMany(n int) []E {
	entities := make([]E, n)
	for i := range entities {
		entities[i] = r.table.create()
	}
	r.logger.Debug().Int("count", n).Msg("entities created")
	return entities
}

// Destroy retires e's handle, clears its mask and resets its component
// values. The slot is recycled to a later Create under a bumped version.
// Destroying a handle that is not alive panics.
func (r *Registry[E]) Destroy(e E) {
	i := r.table.mustLive(e, "Destroy")
	r.table.destroy(e)
	r.storage.ReleaseAll(i)
	r.logger.Debug().Uint64("entity_id", uint64(e)).Msg("entity destroyed")
}

// Alive reports whether e names a live entity. Destroyed handles and stale
// handles from before a slot's reuse are both dead.
func (r *Registry[E]) Alive(e E) bool {
	return r.table.alive(e)
}

// Len returns the number of live entities.
func (r *Registry[E]) Len() int {
	return r.table.live
}

// Manager returns the registry's component manager, for sharing through
// WithComponents or for name lookups.
func (r *Registry[E]) Manager() *component.Manager {
	return r.components
}

// RegisteredComponents returns the metadata of every component type the
// registry's manager has assigned, in bit order.
func (r *Registry[E]) RegisteredComponents() []component.Metadata {
	return r.components.Components()
}

// ownedMetadata collects the metadata of every component mask carries, in
// bit order.
func (r *Registry[E]) ownedMetadata(mask types.Mask) []component.Metadata {
	owned := make([]component.Metadata, 0, mask.Count())
	for id := types.ComponentID(0); id < types.ComponentID(r.components.Count()); id++ {
		if mask.Has(id) {
			owned = append(owned, r.components.Metadata(id))
		}
	}
	return owned
}

// logComponent emits one lifecycle event for a component of e.
func (r *Registry[E]) logComponent(e E, id types.ComponentID, msg string) {
	r.logger.Debug().
		Uint64("entity_id", uint64(e)).
		Str("component_name", r.components.Metadata(id).Name()).
		Msg(msg)
}

// Log writes the registry's component table and entity count to its logger.
func (r *Registry[E]) Log(level zerolog.Level) {
	log.Registry(&r.logger, r, level)
}

// LogEntity writes e's handle and component table to the registry's logger.
// The entity must be alive.
func (r *Registry[E]) LogEntity(e E, level zerolog.Level) {
	i := r.table.mustLive(e, "LogEntity")
	log.Entity(&r.logger, level, uint64(e), r.ownedMetadata(r.table.slots[i].mask))
}
