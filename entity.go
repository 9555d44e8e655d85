package tabula

import (
	"fmt"

	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/storage"
	"pkg.world.dev/tabula/types"
)

// Has reports whether entity e owns a component of type T. The entity must
// be alive.
func Has[T any, E types.ID](r *Registry[E], e E) bool {
	i := r.table.mustLive(e, "Has")
	return r.table.slots[i].mask.Has(component.ID[T](r.components))
}

// Assign stores value as e's component of type T and returns a pointer to
// the stored copy. The entity must not already own a T; assigning a second
// value of the same type panics. The pointer stays valid until the
// component is unassigned, the entity destroyed, or the component's pool
// grows.
func Assign[T any, E types.ID](r *Registry[E], e E, value T) *T {
	i := r.table.mustLive(e, "Assign")
	id := component.ID[T](r.components)
	if r.table.slots[i].mask.Has(id) {
		panic(fmt.Sprintf("tabula: Assign: entity %#x already has component %s",
			uint64(e), r.components.Metadata(id).Name()))
	}
	r.table.slots[i].mask = r.table.slots[i].mask.Set(id)
	p := storage.PoolFor[T](r.storage, id).Insert(i, value)
	r.logComponent(e, id, "component assigned")
	return p
}

// Unassign removes e's component of type T and resets its pool slot to the
// zero value. The entity must own a T; unassigning an absent component
// panics.
func Unassign[T any, E types.ID](r *Registry[E], e E) {
	i := r.table.mustLive(e, "Unassign")
	id := component.ID[T](r.components)
	if !r.table.slots[i].mask.Has(id) {
		panic(fmt.Sprintf("tabula: Unassign: entity %#x has no component %s",
			uint64(e), r.components.Metadata(id).Name()))
	}
	r.table.slots[i].mask = r.table.slots[i].mask.Clear(id)
	storage.PoolFor[T](r.storage, id).Release(i)
	r.logComponent(e, id, "component unassigned")
}

// Get returns a pointer to e's component of type T. The entity must own a
// T; getting an absent component panics. TryGet is the checked probe. The
// pointer's validity follows the same rules as Assign's.
func Get[T any, E types.ID](r *Registry[E], e E) *T {
	i := r.table.mustLive(e, "Get")
	id := component.ID[T](r.components)
	if !r.table.slots[i].mask.Has(id) {
		panic(fmt.Sprintf("tabula: Get: entity %#x has no component %s",
			uint64(e), r.components.Metadata(id).Name()))
	}
	return storage.PoolFor[T](r.storage, id).At(i)
}

// TryGet returns a pointer to e's component of type T, or false when e is
// not alive or does not own one.
func TryGet[T any, E types.ID](r *Registry[E], e E) (*T, bool) {
	if !r.table.alive(e) {
		return nil, false
	}
	i := int(types.Index(e))
	id := component.ID[T](r.components)
	if !r.table.slots[i].mask.Has(id) {
		return nil, false
	}
	return storage.PoolFor[T](r.storage, id).At(i), true
}

// Set stores value as e's component of type T, adding the component first
// when e does not own one, and returns a pointer to the stored copy.
func Set[T any, E types.ID](r *Registry[E], e E, value T) *T {
	i := r.table.mustLive(e, "Set")
	id := component.ID[T](r.components)
	r.table.slots[i].mask = r.table.slots[i].mask.Set(id)
	p := storage.PoolFor[T](r.storage, id).Insert(i, value)
	r.logComponent(e, id, "component set")
	return p
}

// Update applies fn to e's component of type T in place. The entity must
// own a T; updating an absent component panics.
func Update[T any, E types.ID](r *Registry[E], e E, fn func(*T)) {
	fn(Get[T](r, e))
	r.logComponent(e, component.ID[T](r.components), "component updated")
}

// Spawn creates an entity owning the given component value.
func Spawn[A any, E types.ID](r *Registry[E], a A) E {
	e := r.Create()
	Assign(r, e, a)
	return e
}

// Spawn2 creates an entity owning the two given component values.
func Spawn2[A, B any, E types.ID](r *Registry[E], a A, b B) E {
	e := r.Create()
	Assign(r, e, a)
	Assign(r, e, b)
	return e
}

// Spawn3 creates an entity owning the three given component values.
func Spawn3[A, B, C any, E types.ID](r *Registry[E], a A, b B, c C) E {
	e := r.Create()
	Assign(r, e, a)
	Assign(r, e, b)
	Assign(r, e, c)
	return e
}

// Spawn4 creates an entity owning the four given component values.
func Spawn4[A, B, C, D any, E types.ID](r *Registry[E], a A, b B, c C, d D) E {
	e := r.Create()
	Assign(r, e, a)
	Assign(r, e, b)
	Assign(r, e, c)
	Assign(r, e, d)
	return e
}
