package storage_test

import (
	"testing"

	"pkg.world.dev/tabula/assert"
	"pkg.world.dev/tabula/storage"
)

type counter struct {
	N int
}

type label struct {
	S string
}

func TestPoolInsertAndAt(t *testing.T) {
	p := storage.NewPool[counter]()

	stored := p.Insert(0, counter{N: 10})
	assert.Equal(t, 10, stored.N)
	assert.Same(t, stored, p.At(0))

	// Insert overwrites an occupied slot silently.
	p.Insert(0, counter{N: 20})
	assert.Equal(t, 20, p.At(0).N)

	// Values are independent per slot.
	p.Insert(1, counter{N: 30})
	assert.Equal(t, 20, p.At(0).N)
	assert.Equal(t, 30, p.At(1).N)
}

func TestPoolGrowthKeepsIndexesStable(t *testing.T) {
	p := storage.NewPool[counter]()
	for i := 0; i < 100; i++ {
		p.Insert(i, counter{N: i})
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, p.At(i).N)
	}

	// A sparse insert far past the current size lands at its own index.
	p.Insert(1000, counter{N: 1000})
	assert.Equal(t, 1000, p.At(1000).N)
	assert.Equal(t, 99, p.At(99).N)
}

func TestPoolRelease(t *testing.T) {
	p := storage.NewPool[label]()
	p.Insert(3, label{S: "here"})

	p.Release(3)
	assert.Equal(t, "", p.At(3).S)

	// Releasing a slot the pool never grew to is a no-op.
	assert.NotPanics(t, func() { p.Release(1 << 20) })
	assert.NotPanics(t, func() { storage.NewPool[label]().Release(0) })
}

func TestPoolValueAt(t *testing.T) {
	p := storage.NewPool[counter]()
	assert.Nil(t, p.ValueAt(0))

	p.Insert(2, counter{N: 7})
	assert.Equal(t, counter{N: 7}, p.ValueAt(2))
	assert.Nil(t, p.ValueAt(1<<20))
}

func TestPoolForCreatesLazily(t *testing.T) {
	m := storage.NewManager()

	p := storage.PoolFor[counter](m, 0)
	assert.NotNil(t, p)
	assert.Same(t, p, storage.PoolFor[counter](m, 0))

	// Distinct ids get distinct pools, even for the same type.
	assert.NotSame(t, p, storage.PoolFor[counter](m, 1))
}

func TestPoolForRejectsTypeMismatch(t *testing.T) {
	m := storage.NewManager()
	storage.PoolFor[counter](m, 0)

	assert.Panics(t, func() { storage.PoolFor[label](m, 0) })
}

func TestReleaseAll(t *testing.T) {
	m := storage.NewManager()
	counters := storage.PoolFor[counter](m, 0)
	labels := storage.PoolFor[label](m, 1)

	counters.Insert(4, counter{N: 4})
	labels.Insert(4, label{S: "four"})
	counters.Insert(5, counter{N: 5})

	m.ReleaseAll(4)
	assert.Equal(t, 0, counters.At(4).N)
	assert.Equal(t, "", labels.At(4).S)
	assert.Equal(t, 5, counters.At(5).N)

	// Slot 5 only ever lived in the counter pool; releasing it everywhere
	// must not disturb anything.
	assert.NotPanics(t, func() { m.ReleaseAll(5) })
	assert.NotPanics(t, func() { m.ReleaseAll(1 << 20) })
}

func TestManagerValueAt(t *testing.T) {
	m := storage.NewManager()
	assert.Nil(t, m.ValueAt(0, 0))

	storage.PoolFor[label](m, 2).Insert(1, label{S: "x"})
	assert.Equal(t, label{S: "x"}, m.ValueAt(2, 1))
	assert.Nil(t, m.ValueAt(2, 999))
}
