package tabula_test

import (
	"testing"

	"pkg.world.dev/tabula"
)

func BenchmarkCreate(b *testing.B) {
	// 64-bit handles so b.N can outgrow the 16-bit index half.
	r := tabula.NewRegistry[uint64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Create()
	}
}

func BenchmarkCreateDestroy(b *testing.B) {
	r := tabula.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Destroy(r.Create())
	}
}

func BenchmarkSpawn2(b *testing.B) {
	r := tabula.NewRegistry[uint64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tabula.Spawn2(r, Position{X: 1, Y: 2}, Velocity{DX: 1})
	}
}

func BenchmarkGet(b *testing.B) {
	r := tabula.New()
	e := tabula.Spawn(r, Position{X: 1, Y: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tabula.Get[Position](r, e)
	}
}

func BenchmarkSet(b *testing.B) {
	r := tabula.New()
	e := r.Create()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tabula.Set(r, e, Position{X: i})
	}
}

func BenchmarkViewCount(b *testing.B) {
	r := tabula.New()
	for i := 0; i < 1024; i++ {
		if i%2 == 0 {
			tabula.Spawn2(r, Position{}, Velocity{})
		} else {
			tabula.Spawn(r, Position{})
		}
	}
	f := tabula.Contains(tabula.Component[Velocity]())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := r.View(f).Count(); n != 512 {
			b.Fatalf("unexpected match count %d", n)
		}
	}
}

func BenchmarkForEach2(b *testing.B) {
	r := tabula.New()
	for i := 0; i < 1024; i++ {
		tabula.Spawn2(r, Position{}, Velocity{DX: 1, DY: 1})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tabula.ForEach2(r, func(_ uint32, pos *Position, vel *Velocity) {
			pos.X += vel.DX
			pos.Y += vel.DY
		})
	}
}
