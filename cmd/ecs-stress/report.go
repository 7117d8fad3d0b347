package main

import (
	"cmp"
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/sparsecs/ecs"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Entities   int
	Components int
	Systems    int
	Churn      int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	SystemStats    []ecs.SystemStats
	World          ecs.WorldStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = percentile(sorted, 50)
	s.P99 = percentile(sorted, 99)
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	return sorted[max(rank-1, 0)]
}

// SlowestSystems returns up to n systems ordered by total time spent.
func (r *Report) SlowestSystems(n int) []ecs.SystemStats {
	systems := slices.Clone(r.SystemStats)
	slices.SortStableFunc(systems, func(a, b ecs.SystemStats) int {
		return cmp.Compare(b.TotalDuration, a.TotalDuration)
	})
	return systems[:min(n, len(systems))]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Generated Components:** {{.Components}}
- **Generated Systems:** {{.Systems}}
- **Churn Per Frame:** {{.Churn}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **P50:** {{.UpdateTime.P50}}
  - **P99:** {{.UpdateTime.P99}}
  - **Max:** {{.UpdateTime.Max}}

## Slowest Systems
| System | Runs | Matched (last) | Avg | Max |
|--------|------|----------------|-----|-----|
{{- range .SlowestSystems 5}}
| {{.Name}} | {{.ExecutionCount}} | {{.Matched}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## World
- **Live Entities:** {{.World.EntityCount}}
- **Component Storages:** {{.World.ComponentTypeCount}}
{{- range .World.Components}}
  - {{.Type}} ({{.Kind}}): {{.Count}}
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MiB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MiB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MiB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MiB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Sys Memory:     {{mb .MemStatsStart.Sys}} MiB (start) -> {{mb .MemStatsEnd.Sys}} MiB (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}} bytes
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns (usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"usub64": func(a, b uint64) uint64 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
