package debugui

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type EntityInfo struct {
	Entity         ecs.Entity
	ComponentTypes []string
	ComponentCount int
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	signature     worldSignature
	sortColumn    int
	sortAscending bool
}

// worldSignature changes whenever entities or component values are added or
// removed in a way that alters counts.
type worldSignature struct {
	entities   int
	components int
	types      int
}

func signatureOf(w *ecs.World) worldSignature {
	sig := worldSignature{entities: w.Len(), types: w.Components().Len()}
	for _, t := range w.Components().Types() {
		sig.components += w.Components().StorageLen(t)
	}
	return sig
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// FilterByType restricts the browser to entities carrying the named type.
func (eb *EntityBrowserComponent) FilterByType(typeName string) {
	eb.filterType = typeName
	eb.currentPage = 0
}

func (eb *EntityBrowserComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterType = ""
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.cache.entities = nil
	}

	var selected ecs.Entity
	if sel, ok := ecs.GetResource[Selection](w); ok {
		selected = sel.Entity
	}

	filteredEntities := eb.filteredEntities()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(entity.Entity.String(), selected == entity.Entity, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ecs.InsertResource(w, Selection{Entity: entity.Entity})
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(w *ecs.World) {
	sig := signatureOf(w)
	if eb.cache.signature != sig {
		eb.cache.entities = nil
		eb.cache.signature = sig
	}

	if eb.cache.entities == nil {
		eb.cache.entities = collectEntities(w)
		eb.sortEntities()
	}
}

// collectEntities lists every live entity with the names of its components.
func collectEntities(w *ecs.World) []EntityInfo {
	entities := make([]EntityInfo, 0, w.Len())
	for e := range w.Entities().Iter() {
		types := w.Components().ComponentsOf(e)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		entities = append(entities, EntityInfo{
			Entity:         e,
			ComponentTypes: names,
			ComponentCount: len(names),
		})
	}
	return entities
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.SliceStable(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.Entity.Index() < b.Entity.Index()
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserComponent) filteredEntities() []EntityInfo {
	return filterEntities(eb.cache.entities, eb.filterText, eb.filterType)
}

func filterEntities(entities []EntityInfo, text, typeName string) []EntityInfo {
	if text == "" && typeName == "" {
		return entities
	}

	filtered := make([]EntityInfo, 0, len(entities))
	filterLower := strings.ToLower(text)

	for _, entity := range entities {
		if typeName != "" && !slices.Contains(entity.ComponentTypes, typeName) {
			continue
		}

		if text != "" {
			idStr := strings.ToLower(entity.Entity.String())
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}
