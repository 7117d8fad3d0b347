package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	for i := 100; i >= 1; i-- {
		s.Samples = append(s.Samples, time.Duration(i)*time.Millisecond)
	}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 50500*time.Microsecond, s.Avg)
	assert.Equal(t, 50*time.Millisecond, s.P50)
	assert.Equal(t, 99*time.Millisecond, s.P99)
	assert.Equal(t, 100*time.Millisecond, s.Samples[0], "samples keep their order")

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Max)
}

func TestSlowestSystems(t *testing.T) {
	r := &Report{SystemStats: []ecs.SystemStats{
		{Name: "a", TotalDuration: time.Millisecond},
		{Name: "b", TotalDuration: 3 * time.Millisecond},
		{Name: "c", TotalDuration: 2 * time.Millisecond},
	}}

	slowest := r.SlowestSystems(2)
	require.Len(t, slowest, 2)
	assert.Equal(t, "b", slowest[0].Name)
	assert.Equal(t, "c", slowest[1].Name)
	assert.Len(t, r.SlowestSystems(10), 3)
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := defaults()
	cfg.Run.Duration = 50 * time.Millisecond
	cfg.Run.Entities = 200
	cfg.Run.ChurnPerFrame = 5
	cfg.Run.GCPauseMetrics = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zap.New(core), &out))

	report := out.String()
	assert.Contains(t, report, "# ECS Stress Test Report")
	assert.Contains(t, report, "**Initial Entities:** 200")
	assert.Contains(t, report, "**Live Entities:** 200", "churn keeps the population steady")
	assert.Contains(t, report, "## GC Pause Durations")
	assert.Contains(t, report, "| system0")

	assert.Equal(t, 1, logs.FilterMessage("simulation finished").Len())
}

func TestSpawnRandomEntityRespectsBounds(t *testing.T) {
	w := ecs.NewWorld()
	RegisterAllGeneratedComponents(w)
	rng := newTestRand()

	for range 100 {
		e := spawnRandomEntity(w, rng, 3)
		n := len(w.Components().ComponentsOf(e))
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 3)
	}
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}
