package ecs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrReentrantRun is the panic value of a Schedule.Run started against a
// world that is already running a schedule.
var ErrReentrantRun = errors.New("ecs: schedule run re-entered on a running world")

// ScheduleStats provides statistics about schedule execution.
type ScheduleStats struct {
	SystemCount int
	Runs        int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	// Matched is how many times the system function was called in the last run:
	// once per entity for ForEach, 0 or 1 otherwise.
	Matched       int
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	matched        int
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// ScheduleBuilder collects systems in run order.
type ScheduleBuilder struct {
	systems []SystemSpec
	built   bool
}

// NewScheduleBuilder returns an empty builder.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{}
}

// System appends s. It panics once Build has been called.
func (b *ScheduleBuilder) System(s SystemSpec) *ScheduleBuilder {
	if b.built {
		panic("ecs: ScheduleBuilder used after Build")
	}
	b.systems = append(b.systems, s)
	return b
}

// Build freezes the system list into a Schedule.
func (b *ScheduleBuilder) Build() *Schedule {
	if b.built {
		panic("ecs: ScheduleBuilder.Build called twice")
	}
	b.built = true

	s := &Schedule{
		systems: b.systems,
		stats:   make([]*systemStatsInternal, len(b.systems)),
	}
	for i := range s.stats {
		s.stats[i] = &systemStatsInternal{minDuration: time.Duration(1<<63 - 1)}
	}
	return s
}

// Schedule is an ordered, frozen list of systems.
type Schedule struct {
	systems []SystemSpec
	stats   []*systemStatsInternal
	runs    int64
}

// Len returns the number of systems.
func (s *Schedule) Len() int {
	return len(s.systems)
}

// Names returns the system labels in run order.
func (s *Schedule) Names() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.name
	}
	return names
}

// Run executes every system once, in order. The world's command buffer is
// flushed after each system, so later systems observe earlier systems'
// structural changes. Running a schedule from inside a system of the same
// world panics with ErrReentrantRun.
func (s *Schedule) Run(w *World) {
	if w.running {
		panic(ErrReentrantRun)
	}
	w.running = true
	defer func() { w.running = false }()

	for i, sys := range s.systems {
		start := time.Now()
		matched := sys.run(w)
		duration := time.Since(start)

		stats := s.stats[i]
		stats.executionCount++
		stats.matched = matched
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if ce := w.log.Check(zap.DebugLevel, "system ran"); ce != nil {
			ce.Write(
				zap.String("system", sys.name),
				zap.Int("matched", matched),
				zap.Duration("duration", duration),
				zap.Int("commands", w.deferred.Len()))
		}

		w.FlushCommands()
	}
	s.runs++
}

// Loop runs the schedule against w at the given interval until ctx is
// cancelled. Before every run it updates the FrameTime resource, inserting it
// if absent. Cancellation is observed between runs only.
func (s *Schedule) Loop(ctx context.Context, w *World, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.log.Info("schedule loop started",
		zap.Int("systems", len(s.systems)),
		zap.Duration("interval", interval))

	var clock FrameClock
	for {
		select {
		case <-ctx.Done():
			w.log.Info("schedule loop stopped", zap.Uint64("frames", clock.frame), zap.Error(ctx.Err()))
			return
		case now := <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			clock.Tick(w, now)
			s.Run(w)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Schedule) Stats() *ScheduleStats {
	out := &ScheduleStats{
		SystemCount: len(s.systems),
		Runs:        s.runs,
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, internal := range s.stats {
		avg := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		out.Systems[i] = SystemStats{
			Name:           s.systems[i].name,
			ExecutionCount: internal.executionCount,
			Matched:        internal.matched,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return out
}
