package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScheduleRunsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	var order []string

	schedule := ecs.NewScheduleBuilder().
		System(ecs.Func(func() { order = append(order, "S1") }).Named("S1")).
		System(ecs.Func(func() { order = append(order, "S2") }).Named("S2")).
		System(ecs.Func(func() { order = append(order, "S3") }).Named("S3")).
		Build()

	schedule.Run(w)
	assert.Equal(t, []string{"S1", "S2", "S3"}, order)
	assert.Equal(t, []string{"S1", "S2", "S3"}, schedule.Names())

	schedule.Run(w)
	assert.Equal(t, []string{"S1", "S2", "S3", "S1", "S2", "S3"}, order)
}

func TestScheduleBuilderFreezes(t *testing.T) {
	b := ecs.NewScheduleBuilder().System(ecs.Func(func() {}))
	s := b.Build()
	assert.Equal(t, 1, s.Len())
	assert.Panics(t, func() { b.System(ecs.Func(func() {})) })
	assert.Panics(t, func() { b.Build() })
}

type movement struct {
	P *Position `ecs:"mut"`
	V *Velocity
	G ecs.OptRes[Gravity]
}

func TestForEachSystem(t *testing.T) {
	w, _ := populate(t)
	ecs.InsertResource(w, Gravity{G: 1})

	schedule := ecs.NewScheduleBuilder().
		System(ecs.ForEach(func(m movement) {
			m.P.X += m.V.DX
			if m.G.Ok() {
				m.P.Y -= m.G.Get().G
			}
		})).
		Build()
	schedule.Run(w)

	for e, p := range ecs.ViewOne[Position](w) {
		if ecs.Attached[Velocity](w, e) {
			assert.Equal(t, float32(-1), p.Y)
		} else {
			assert.Equal(t, float32(0), p.Y)
		}
	}

	stats := schedule.Stats()
	require.Len(t, stats.Systems, 1)
	assert.Equal(t, 5, stats.Systems[0].Matched)
	assert.Equal(t, int64(1), stats.Systems[0].ExecutionCount)
	assert.Equal(t, int64(1), stats.Runs)
}

func TestSystemWithResourcesAndEach(t *testing.T) {
	w, _ := populate(t)

	type tally struct {
		C     ecs.ResMut[Counter]
		Heavy ecs.Each[struct{ *Mass }]
	}

	calls := 0
	schedule := ecs.NewScheduleBuilder().
		System(ecs.System(func(s tally) {
			calls++
			for range s.Heavy.Values() {
				s.C.Get().N++
			}
		})).
		Build()

	schedule.Run(w)
	assert.Equal(t, 0, calls, "system is skipped while the required resource is absent")

	ecs.InsertResource(w, Counter{})
	schedule.Run(w)
	assert.Equal(t, 1, calls)
	c, _ := ecs.GetResource[Counter](w)
	assert.Equal(t, 4, c.N)
}

func TestSystemRejectsPerEntityShape(t *testing.T) {
	assert.Panics(t, func() {
		ecs.System(func(struct{ *Position }) {})
	})
}

func TestCommandsFlushAfterEachSystem(t *testing.T) {
	w := newTestWorld()
	ecs.InsertResource(w, Counter{})

	schedule := ecs.NewScheduleBuilder().
		System(ecs.System(func(s struct{ Cmd *ecs.Commands }) {
			s.Cmd.Create(ecs.With(Score(1)))
			s.Cmd.Create(ecs.With(Score(2)))
		})).
		System(ecs.ForEach(func(s struct {
			*Score
			C   ecs.ResMut[Counter]
			Cmd *ecs.Commands
		}) {
			s.C.Get().N += int(*s.Score)
			s.Cmd.Destroy(ecs.Entity{})
		})).
		Build()

	schedule.Run(w)
	c, _ := ecs.GetResource[Counter](w)
	assert.Equal(t, 3, c.N)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 0, w.Commands().Len())
}

func TestReentrantRunPanics(t *testing.T) {
	w := ecs.NewWorld()
	inner := ecs.NewScheduleBuilder().System(ecs.Func(func() {})).Build()

	outer := ecs.NewScheduleBuilder().
		System(ecs.Func(func() { inner.Run(w) })).
		Build()

	assert.PanicsWithError(t, ecs.ErrReentrantRun.Error(), func() { outer.Run(w) })

	// The world is usable again once the panic unwinds.
	assert.NotPanics(t, func() { inner.Run(w) })
}

func TestScheduleLoop(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	w := ecs.NewWorld(ecs.WithLogger(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	var frames []ecs.FrameTime
	schedule := ecs.NewScheduleBuilder().
		System(ecs.System(func(s struct{ T ecs.Res[ecs.FrameTime] }) {
			frames = append(frames, *s.T.Get())
			if len(frames) == 3 {
				cancel()
			}
		}).Named("clock")).
		Build()

	schedule.Loop(ctx, w, time.Millisecond)

	require.Len(t, frames, 3)
	assert.Equal(t, uint64(1), frames[0].Frame)
	assert.Equal(t, time.Duration(0), frames[0].Delta)
	assert.Equal(t, uint64(3), frames[2].Frame)
	assert.Greater(t, frames[2].Elapsed, frames[1].Elapsed)

	assert.Equal(t, 3, logs.FilterMessage("system ran").FilterField(zap.String("system", "clock")).Len())
	assert.Equal(t, 1, logs.FilterMessage("schedule loop stopped").Len())
}
