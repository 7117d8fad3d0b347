// Command ecs-stress drives a world full of generated components and systems
// for a fixed time and prints a timing and memory report.
package main

//go:generate go run ./gen -components 32 -systems 12 -out generated.go

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/sparsecs/ecs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress: build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Error("stress test failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, log *zap.Logger, out io.Writer) error {
	log.Info("starting ECS stress test",
		zap.Int("components", componentCount),
		zap.Int("systems", systemCount),
		zap.Duration("duration", cfg.Run.Duration))

	w := ecs.NewWorld(ecs.WithLogger(log.Named("ecs")), ecs.WithEntityCapacity(cfg.Run.Entities))
	RegisterAllGeneratedComponents(w)

	builder := ecs.NewScheduleBuilder()
	RegisterAllGeneratedSystems(builder)
	schedule := builder.Build()

	rng := rand.New(rand.NewPCG(uint64(cfg.Run.Seed), 0))

	log.Info("populating world", zap.Int("entities", cfg.Run.Entities))
	live := make([]ecs.Entity, 0, cfg.Run.Entities)
	for range cfg.Run.Entities {
		live = append(live, spawnRandomEntity(w, rng, cfg.Run.MaxComponents))
	}

	report := &Report{
		Duration:       cfg.Run.Duration,
		Entities:       cfg.Run.Entities,
		Components:     componentCount,
		Systems:        systemCount,
		Churn:          cfg.Run.ChurnPerFrame,
		GCPauseMetrics: cfg.Run.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running simulation")
	ctx, cancel := context.WithTimeout(ctx, cfg.Run.Duration)
	defer cancel()

	var clock ecs.FrameClock
	startTime := time.Now()
	for ctx.Err() == nil {
		clock.Tick(w, time.Now())

		updateStart := time.Now()
		schedule.Run(w)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

		live = churn(w, rng, live, cfg.Run.ChurnPerFrame, cfg.Run.MaxComponents)
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = schedule.Stats().Runs
	report.UpdateTime.Finalize()
	report.SystemStats = schedule.Stats().Systems
	report.World = w.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished",
		zap.Int64("updates", report.TotalUpdates),
		zap.Duration("avg_update", report.UpdateTime.Avg))

	return report.Generate(out)
}

// spawnRandomEntity creates an entity with 1 to maxComponents random
// generated components.
func spawnRandomEntity(w *ecs.World, rng *rand.Rand, maxComponents int) ecs.Entity {
	b := w.Build()
	for range rng.IntN(maxComponents) + 1 {
		b.With(componentSpawners[rng.IntN(componentCount)](rng))
	}
	return b.Spawn()
}

// churn queues n random destroys and n spawns, then flushes them. The new
// handles replace the destroyed ones in live.
func churn(w *ecs.World, rng *rand.Rand, live []ecs.Entity, n, maxComponents int) []ecs.Entity {
	if n == 0 || len(live) == 0 {
		return live
	}

	cmds := w.Commands()
	for range n {
		i := rng.IntN(len(live))
		cmds.Destroy(live[i])
		live[i] = live[len(live)-1]
		live = live[:len(live)-1]
		if len(live) == 0 {
			break
		}
	}
	// Spawn runs after the flush so the new handles are known.
	cmds.Defer(func(w *ecs.World) {
		for range n {
			live = append(live, spawnRandomEntity(w, rng, maxComponents))
		}
	})
	w.FlushCommands()
	return live
}
