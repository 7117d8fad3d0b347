package ecs_test

import (
	"testing"

	"github.com/plus3/sparsecs/ecs"
)

func BenchmarkCreateWith(b *testing.B) {
	w := newTestWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.CreateWith(ecs.With(Position{X: 1.0, Y: 2.0}), ecs.With(Velocity{DX: 0.5, DY: 0.5}))
	}
}

func BenchmarkDestroy(b *testing.B) {
	w := newTestWorld()

	ids := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = w.CreateWith(ecs.With(Position{X: 1.0, Y: 2.0}), ecs.With(Velocity{DX: 0.5, DY: 0.5}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Destroy(ids[i])
	}
}

func BenchmarkGet(b *testing.B) {
	w := newTestWorld()
	id := w.CreateWith(ecs.With(Position{X: 1.0, Y: 2.0}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.Get[Position](w, id)
	}
}

func BenchmarkAttachRemove(b *testing.B) {
	for _, kind := range []ecs.StorageKind{ecs.DenseIndex, ecs.HashIndex} {
		b.Run(kind.String(), func(b *testing.B) {
			w := ecs.NewWorld()
			ecs.RegisterComponent[Score](w, ecs.WithStorageKind(kind))
			ids := make([]ecs.Entity, 1024)
			for i := range ids {
				ids[i] = w.Create()
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e := ids[i%len(ids)]
				ecs.Attach(w, e, Score(i))
				ecs.Remove[Score](w, e)
			}
		})
	}
}

func benchWorld(n int) *ecs.World {
	w := newTestWorld()
	for i := 0; i < n; i++ {
		b := w.Build().With(ecs.With(Position{X: float32(i)}))
		if i%10 == 0 {
			b.With(ecs.With(Velocity{DX: 1}))
		}
		b.Spawn()
	}
	return w
}

func BenchmarkQuery(b *testing.B) {
	type shape struct {
		P *Position `ecs:"mut"`
		V *Velocity
	}

	for _, strategy := range []ecs.Strategy{ecs.StrategyAll, ecs.StrategyOptimized} {
		b.Run(strategy.String(), func(b *testing.B) {
			w := benchWorld(10000)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for item := range ecs.Query[shape](w, ecs.ForceStrategy(strategy)).Values() {
					item.P.X += item.V.DX
				}
			}
		})
	}
}

func BenchmarkViewOne(b *testing.B) {
	w := benchWorld(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range ecs.ViewOneMut[Position](w) {
			p.X++
		}
	}
}

func BenchmarkScheduleRun(b *testing.B) {
	w := benchWorld(10000)
	schedule := ecs.NewScheduleBuilder().
		System(ecs.ForEach(func(s struct {
			P *Position `ecs:"mut"`
			V *Velocity
		}) {
			s.P.X += s.V.DX
		})).
		Build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		schedule.Run(w)
	}
}
