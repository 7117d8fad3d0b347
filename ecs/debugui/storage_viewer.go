package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type StorageInfo struct {
	Type        string
	Kind        ecs.StorageKind
	EntityCount int
}

type StorageViewerCache struct {
	storages   []StorageInfo
	lastTypes  int
	sortColumn int
	ascending  bool
}

func NewStorageViewerComponent() StorageViewerComponent {
	return StorageViewerComponent{
		cache: &StorageViewerCache{
			sortColumn: 2,
			ascending:  false,
		},
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render lists every component storage. It returns the type name of a row the
// user clicked this frame, or "".
func (sv *StorageViewerComponent) Render(w *ecs.World) string {
	if !imgui.BeginV("Storage Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return ""
	}

	sv.refresh(w)

	maxEntityCount := 0
	for _, s := range sv.cache.storages {
		maxEntityCount = max(maxEntityCount, s.EntityCount)
	}

	var clicked string

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("StorageTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.ascending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortColumn = sv.cache.sortColumn
			sv.sortAscending = sv.cache.ascending
			sv.sortStorages()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, s := range sv.cache.storages {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(s.Type, sv.selectedType == s.Type, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selectedType = s.Type
				clicked = s.Type
			}

			imgui.TableNextColumn()
			imgui.Text(s.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(s.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// refresh rebuilds the rows when a type was registered and otherwise only
// updates the counts.
func (sv *StorageViewerComponent) refresh(w *ecs.World) {
	if sv.cache.storages == nil || sv.cache.lastTypes != w.Components().Len() {
		sv.cache.storages = collectStorages(w)
		sv.cache.lastTypes = w.Components().Len()
		sv.sortStorages()
		return
	}

	counts := make(map[string]int, len(sv.cache.storages))
	for _, c := range w.CollectStats().Components {
		counts[c.Type.String()] = c.Count
	}
	for i := range sv.cache.storages {
		sv.cache.storages[i].EntityCount = counts[sv.cache.storages[i].Type]
	}
	if sv.sortColumn == 2 {
		sv.sortStorages()
	}
}

func collectStorages(w *ecs.World) []StorageInfo {
	stats := w.CollectStats()
	out := make([]StorageInfo, len(stats.Components))
	for i, c := range stats.Components {
		out[i] = StorageInfo{Type: c.Type.String(), Kind: c.Kind, EntityCount: c.Count}
	}
	return out
}

func (sv *StorageViewerComponent) sortStorages() {
	sort.SliceStable(sv.cache.storages, func(i, j int) bool {
		a, b := sv.cache.storages[i], sv.cache.storages[j]
		var less bool

		switch sv.cache.sortColumn {
		case 0:
			less = a.Type < b.Type
		case 1:
			less = a.Kind < b.Kind
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !sv.cache.ascending {
			return !less
		}
		return less
	})
}
