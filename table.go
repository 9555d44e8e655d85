package tabula

import (
	"fmt"

	"pkg.world.dev/tabula/types"
)

// initialSlots is the dense-array size of the entity table's first growth.
const initialSlots = 32

// slot is one dense entry of the entity table. A live slot stores the full
// handle of its occupant; a dead slot stores the invalid handle so a view
// can skip it without consulting the free queue.
type slot[E types.ID] struct {
	id   E
	mask types.Mask
}

// table owns entity identity: the dense slot array, the FIFO queue of
// destroyed handles awaiting reuse, and the high-water index counter.
type table[E types.ID] struct {
	slots []slot[E]
	free  []E
	next  int // lowest never-allocated index; the scan bound for views
	live  int
}

// create hands out a handle. Destroyed handles are reused oldest first with
// a bumped version; when none are waiting, the next fresh index is allocated
// at version zero. Exhausting the handle type's index field panics.
func (t *table[E]) create() E {
	if len(t.free) > 0 {
		h := t.free[0]
		t.free = t.free[1:]
		h = types.WithVersion(h, types.Version(h)+1)
		t.slots[types.Index(h)] = slot[E]{id: h}
		t.live++
		return h
	}
	if E(t.next) > types.MaxIndex[E]() {
		panic(fmt.Sprintf("tabula: entity index space exhausted after %d slots", t.next))
	}
	i := t.next
	t.next++
	t.ensure(i)
	h := types.WithIndex(E(0), E(i))
	t.slots[i] = slot[E]{id: h}
	t.live++
	return h
}

// destroy retires h. The slot is marked dead and the pre-bump handle queued
// for reuse, unless the next generation would collide with the invalid
// handle's bit pattern, in which case the slot is retired for good.
func (t *table[E]) destroy(h E) {
	i := types.Index(h)
	t.slots[i] = slot[E]{id: types.Invalid[E]()}
	t.live--
	if types.Version(h)+1 == types.MaxVersion[E]() {
		return
	}
	t.free = append(t.free, h)
}

// mustLive resolves h to its slot index, panicking when h does not name a
// live entity. A stale handle from before its slot's reuse fails the
// identity comparison, so misuse is caught instead of corrupting whichever
// entity occupies the slot now.
func (t *table[E]) mustLive(h E, op string) int {
	i := int(types.Index(h))
	if !types.Valid(h) || i >= t.next || t.slots[i].id != h {
		panic(fmt.Sprintf("tabula: %s: entity %#x is not alive", op, uint64(h)))
	}
	return i
}

// alive is the non-panicking liveness probe behind mustLive.
func (t *table[E]) alive(h E) bool {
	if !types.Valid(h) {
		return false
	}
	i := int(types.Index(h))
	return i < t.next && t.slots[i].id == h
}

// ensure grows the dense array until it covers index, doubling from a
// 32-slot floor. Growth copies in place; a slot never moves to a different
// index.
func (t *table[E]) ensure(index int) {
	if index < len(t.slots) {
		return
	}
	size := len(t.slots)
	if size == 0 {
		size = initialSlots
	}
	for size <= index {
		size *= 2
	}
	grown := make([]slot[E], size)
	copy(grown, t.slots)
	t.slots = grown
}
