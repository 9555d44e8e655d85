// Package storage holds the per-type component pools and the directory that
// fans entity destruction out to them. Pools are addressed by entity slot
// index, never by full handle; liveness and ownership are the entity table's
// business, tracked one level up through presence masks.
package storage

// initialCapacity is the backing-array size of a pool's first growth.
const initialCapacity = 32

// Pool stores every value of one component type in a slot-indexed backing
// array. A value at index i is meaningful only while the entity in slot i is
// alive and its mask carries the component's bit; the pool itself does not
// track either.
type Pool[T any] struct {
	data []T
}

// NewPool creates an empty pool. The backing array is allocated on first
// insert.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Insert stores value at slot index, growing the backing array to cover it,
// and returns a pointer to the stored copy. An occupied slot is overwritten.
// Pointers obtained earlier are invalidated whenever the backing array grows.
func (p *Pool[T]) Insert(index int, value T) *T {
	p.ensure(index)
	p.data[index] = value
	return &p.data[index]
}

// At returns a pointer to the value at slot index. Callers must know the
// slot is populated; the pool does not check.
func (p *Pool[T]) At(index int) *T {
	return &p.data[index]
}

// Release resets slot index to the zero value. Indexes the pool never grew
// to are ignored, so releasing every pool on entity destruction is safe
// regardless of which pools actually stored values for the entity.
func (p *Pool[T]) Release(index int) {
	if index >= len(p.data) {
		return
	}
	var zero T
	p.data[index] = zero
}

// ValueAt returns a copy of the value at slot index, or nil when the pool
// has no such slot.
func (p *Pool[T]) ValueAt(index int) any {
	if index >= len(p.data) {
		return nil
	}
	return p.data[index]
}

// ensure grows the backing array until it covers index, doubling from a
// 32-slot floor. Growth copies; it never moves a value to a different index.
func (p *Pool[T]) ensure(index int) {
	if index < len(p.data) {
		return
	}
	size := len(p.data)
	if size == 0 {
		size = initialCapacity
	}
	for size <= index {
		size *= 2
	}
	grown := make([]T, size)
	copy(grown, p.data)
	p.data = grown
}
