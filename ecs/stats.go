package ecs

import (
	"reflect"
	"sort"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// WorldStats is a snapshot of a world's size.
type WorldStats struct {
	EntityCount        int
	ComponentTypeCount int
	ResourceCount      int
	// Components lists every registered type sorted by type name.
	Components    []ComponentStats
	ResourceTypes []reflect.Type
}

// ComponentStats describes one component storage.
type ComponentStats struct {
	Type  reflect.Type
	Kind  StorageKind
	Count int
}

// CollectStats gathers a WorldStats snapshot.
func (w *World) CollectStats() WorldStats {
	types := byTypeName(w.components.Types())
	sort.Sort(types)

	stats := WorldStats{
		EntityCount:        w.entities.Len(),
		ComponentTypeCount: len(types),
		Components:         make([]ComponentStats, len(types)),
	}
	for i, t := range types {
		s := w.components.storages[t]
		stats.Components[i] = ComponentStats{Type: t, Kind: s.storageKind(), Count: s.len()}
	}

	resources := byTypeName(w.resources.Types())
	sort.Sort(resources)
	stats.ResourceTypes = resources
	stats.ResourceCount = len(resources)
	return stats
}
