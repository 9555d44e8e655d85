package tabula

import (
	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/storage"
	"pkg.world.dev/tabula/types"
)

// ForEach walks every entity owning a component of type A in ascending slot
// order. The pointer is valid for the duration of the callback; structural
// changes during the walk are undefined.
func ForEach[A any, E types.ID](r *Registry[E], fn func(e E, a *A)) {
	idA := component.ID[A](r.components)
	poolA := storage.PoolFor[A](r.storage, idA)
	want := types.MaskOf(idA)
	for i, bound := 0, r.table.next; i < bound; i++ {
		s := &r.table.slots[i]
		if !types.Valid(s.id) || !s.mask.ContainsAll(want) {
			continue
		}
		fn(s.id, poolA.At(i))
	}
}

// ForEach2 walks every entity owning components of both type A and type B
// in ascending slot order.
func ForEach2[A, B any, E types.ID](r *Registry[E], fn func(e E, a *A, b *B)) {
	idA := component.ID[A](r.components)
	idB := component.ID[B](r.components)
	poolA := storage.PoolFor[A](r.storage, idA)
	poolB := storage.PoolFor[B](r.storage, idB)
	want := types.MaskOf(idA, idB)
	for i, bound := 0, r.table.next; i < bound; i++ {
		s := &r.table.slots[i]
		if !types.Valid(s.id) || !s.mask.ContainsAll(want) {
			continue
		}
		fn(s.id, poolA.At(i), poolB.At(i))
	}
}

// ForEach3 walks every entity owning components of types A, B and C in
// ascending slot order.
func ForEach3[A, B, C any, E types.ID](r *Registry[E], fn func(e E, a *A, b *B, c *C)) {
	idA := component.ID[A](r.components)
	idB := component.ID[B](r.components)
	idC := component.ID[C](r.components)
	poolA := storage.PoolFor[A](r.storage, idA)
	poolB := storage.PoolFor[B](r.storage, idB)
	poolC := storage.PoolFor[C](r.storage, idC)
	want := types.MaskOf(idA, idB, idC)
	for i, bound := 0, r.table.next; i < bound; i++ {
		s := &r.table.slots[i]
		if !types.Valid(s.id) || !s.mask.ContainsAll(want) {
			continue
		}
		fn(s.id, poolA.At(i), poolB.At(i), poolC.At(i))
	}
}

// ForEach4 walks every entity owning components of types A, B, C and D in
// ascending slot order.
func ForEach4[A, B, C, D any, E types.ID](r *Registry[E], fn func(e E, a *A, b *B, c *C, d *D)) {
	idA := component.ID[A](r.components)
	idB := component.ID[B](r.components)
	idC := component.ID[C](r.components)
	idD := component.ID[D](r.components)
	poolA := storage.PoolFor[A](r.storage, idA)
	poolB := storage.PoolFor[B](r.storage, idB)
	poolC := storage.PoolFor[C](r.storage, idC)
	poolD := storage.PoolFor[D](r.storage, idD)
	want := types.MaskOf(idA, idB, idC, idD)
	for i, bound := 0, r.table.next; i < bound; i++ {
		s := &r.table.slots[i]
		if !types.Valid(s.id) || !s.mask.ContainsAll(want) {
			continue
		}
		fn(s.id, poolA.At(i), poolB.At(i), poolC.At(i), poolD.At(i))
	}
}
