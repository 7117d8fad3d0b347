package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

type QueryDebuggerCache struct {
	componentTypes []string
	typesByName    map[string]reflect.Type
	lastTypeCount  int
}

// QueryMatch is the result of probing the world with a set of required
// component types.
type QueryMatch struct {
	Entities []ecs.Entity
	// Driver is the type whose storage an optimized view would walk: the
	// smallest one, first listed on ties.
	Driver    reflect.Type
	SizeHint  int
	Candidate int
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache: &QueryDebuggerCache{
			lastTypeCount: -1,
		},
	}
}

func (qd *QueryDebuggerComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.rebuildCacheIfNeeded(w)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, name := range qd.cache.componentTypes {
		selected := qd.selectedComponentTypes[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selectedComponentTypes[name] = true
			} else {
				delete(qd.selectedComponentTypes, name)
			}
		}
	}

	imgui.Separator()

	selectedTypes := make([]reflect.Type, 0, len(qd.selectedComponentTypes))
	for _, name := range qd.cache.componentTypes {
		if qd.selectedComponentTypes[name] {
			selectedTypes = append(selectedTypes, qd.cache.typesByName[name])
		}
	}

	if len(selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	match := matchQuery(w, selectedTypes)

	imgui.Text(fmt.Sprintf("Driving storage: %s (%d rows)", match.Driver, match.SizeHint))
	imgui.Text(fmt.Sprintf("Candidates probed: %d", match.Candidate))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(match.Entities)))

	if imgui.TreeNodeStr("Matches") {
		for _, e := range match.Entities {
			if imgui.SelectableBool(e.String()) {
				ecs.InsertResource(w, Selection{Entity: e})
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (qd *QueryDebuggerComponent) rebuildCacheIfNeeded(w *ecs.World) {
	if qd.cache.lastTypeCount == w.Components().Len() {
		return
	}
	qd.cache.lastTypeCount = w.Components().Len()

	types := w.Components().Types()
	qd.cache.typesByName = make(map[string]reflect.Type, len(types))
	qd.cache.componentTypes = make([]string, 0, len(types))
	for _, t := range types {
		qd.cache.typesByName[t.String()] = t
		qd.cache.componentTypes = append(qd.cache.componentTypes, t.String())
	}
	sort.Strings(qd.cache.componentTypes)
}

// matchQuery finds the entities carrying every type in required, walking the
// smallest storage the same way an optimized view does.
func matchQuery(w *ecs.World, required []reflect.Type) QueryMatch {
	var m QueryMatch
	if len(required) == 0 {
		return m
	}

	m.Driver = required[0]
	m.SizeHint = w.Components().StorageLen(required[0])
	for _, t := range required[1:] {
		if n := w.Components().StorageLen(t); n < m.SizeHint {
			m.Driver, m.SizeHint = t, n
		}
	}
	if m.SizeHint == 0 {
		return m
	}

	for e := range w.Components().EntitiesOf(m.Driver) {
		en := w.Entry(e)
		m.Candidate++
		matched := true
		for _, t := range required {
			if !en.Has(t) {
				matched = false
				break
			}
		}
		if matched {
			m.Entities = append(m.Entities, e)
		}
	}
	return m
}
