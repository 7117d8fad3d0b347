package debugui

import "github.com/plus3/sparsecs/ecs"

// RegisterDebugUIComponents registers the panel components and inserts the
// resources the panels and ImguiSystem expect.
func RegisterDebugUIComponents(w *ecs.World) {
	ecs.RegisterComponent[ImguiItem](w)
	ecs.RegisterComponent[EntityBrowserComponent](w)
	ecs.RegisterComponent[ComponentInspectorComponent](w)
	ecs.RegisterComponent[StorageViewerComponent](w)
	ecs.RegisterComponent[ResourceViewerComponent](w)
	ecs.RegisterComponent[PerformanceStatsComponent](w)
	ecs.RegisterComponent[QueryDebuggerComponent](w)

	if !ecs.HasResource[ImguiInputState](w) {
		ecs.InsertResource(w, ImguiInputState{})
	}
	if !ecs.HasResource[Selection](w) {
		ecs.InsertResource(w, Selection{})
	}
}

// SpawnDebugUI creates one entity per panel. Each carries its panel component
// and an ImguiItem that renders it, so the panels draw whenever ImguiSystem runs.
func SpawnDebugUI(w *ecs.World) []ecs.Entity {
	RegisterDebugUIComponents(w)

	browser := spawnPanel(w, NewEntityBrowserComponent(100), (*EntityBrowserComponent).Render)
	inspector := spawnPanel(w, NewComponentInspectorComponent(), (*ComponentInspectorComponent).Render)
	resources := spawnPanel(w, NewResourceViewerComponent(), (*ResourceViewerComponent).Render)
	perf := spawnPanel(w, NewPerformanceStatsComponent(120), (*PerformanceStatsComponent).Render)
	query := spawnPanel(w, NewQueryDebuggerComponent(), (*QueryDebuggerComponent).Render)

	// Clicking a storage row filters the entity browser by that type.
	storages := spawnPanel(w, NewStorageViewerComponent(), func(sv *StorageViewerComponent, w *ecs.World) {
		if clicked := sv.Render(w); clicked != "" {
			if eb, ok := ecs.GetMut[EntityBrowserComponent](w, browser); ok {
				eb.FilterByType(clicked)
			}
		}
	})

	return []ecs.Entity{browser, inspector, storages, resources, perf, query}
}

func spawnPanel[P any](w *ecs.World, panel P, render func(*P, *ecs.World)) ecs.Entity {
	e := w.CreateWith(ecs.With(panel))
	ecs.Attach(w, e, ImguiItem{
		Render: func() {
			// Not held across render: the query debugger may borrow any storage.
			if p, ok := ecs.GetMut[P](w, e); ok {
				render(p, w)
			}
		},
	})
	return e
}
