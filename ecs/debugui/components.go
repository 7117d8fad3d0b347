package debugui

import (
	"github.com/plus3/sparsecs/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	filterText         string
	filterType         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct{}

type StorageViewerComponent struct {
	cache         *StorageViewerCache
	selectedType  string
	sortColumn    int
	sortAscending bool
}

type ResourceViewerComponent struct{}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedComponentTypes map[string]bool
	cache                  *QueryDebuggerCache
}

// Selection is the resource the entity browser writes and the component
// inspector reads.
type Selection struct {
	Entity ecs.Entity
}

// Profiler is an optional resource pointing the performance panel at the
// schedule whose system timings it should show.
type Profiler struct {
	Schedule *ecs.Schedule
}
