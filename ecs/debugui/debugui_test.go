package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pos struct {
	X, Y float64
}

type tag struct{}

type level struct {
	Value  int8
	Hidden int
	OnHit  func()
	Count  uint16
}

func newPanelWorld(t *testing.T) (*ecs.World, []ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	ecs.RegisterComponent[pos](w)
	ecs.RegisterComponent[tag](w, ecs.WithStorageKind(ecs.HashIndex))

	var ents []ecs.Entity
	for i := range 6 {
		e := w.CreateWith(ecs.With(pos{X: float64(i)}))
		if i%3 == 0 {
			ecs.Attach(w, e, tag{})
		}
		ents = append(ents, e)
	}
	return w, ents
}

func TestImguiSystemDefersRenders(t *testing.T) {
	w := ecs.NewWorld()
	RegisterDebugUIComponents(w)

	var calls []string
	w.CreateWith(ecs.With(ImguiItem{Render: func() { calls = append(calls, "a") }}))
	w.CreateWith(ecs.With(ImguiItem{}))
	w.CreateWith(ecs.With(ImguiItem{Render: func() { calls = append(calls, "b") }}))

	capture := func() ImguiInputState {
		// Renders have not run yet while the system body executes.
		assert.Empty(t, calls)
		return ImguiInputState{WantCaptureMouse: true}
	}

	schedule := ecs.NewScheduleBuilder().System(NewImguiSystem(capture)).Build()
	schedule.Run(w)

	assert.ElementsMatch(t, []string{"a", "b"}, calls)

	input, ok := ecs.GetResource[ImguiInputState](w)
	require.True(t, ok)
	assert.True(t, input.WantCaptureMouse)
	assert.False(t, input.WantCaptureKeyboard)
	assert.Equal(t, []string{"debugui.ImguiSystem"}, schedule.Names())
}

func TestImguiSystemSkippedWithoutInputState(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[ImguiItem](w)

	rendered := false
	w.CreateWith(ecs.With(ImguiItem{Render: func() { rendered = true }}))

	captured := false
	schedule := ecs.NewScheduleBuilder().System(NewImguiSystem(func() ImguiInputState {
		captured = true
		return ImguiInputState{}
	})).Build()
	schedule.Run(w)

	assert.False(t, captured)
	assert.False(t, rendered)
}

func TestRegisterDebugUIComponentsKeepsResources(t *testing.T) {
	w := ecs.NewWorld()
	ecs.InsertResource(w, ImguiInputState{WantCaptureKeyboard: true})
	RegisterDebugUIComponents(w)

	input, ok := ecs.GetResource[ImguiInputState](w)
	require.True(t, ok)
	assert.True(t, input.WantCaptureKeyboard)
	assert.True(t, ecs.HasResource[Selection](w))
	assert.True(t, w.Components().Registered(reflect.TypeFor[ImguiItem]()))
}

func TestSpawnDebugUI(t *testing.T) {
	w := ecs.NewWorld()
	panels := SpawnDebugUI(w)
	require.Len(t, panels, 6)

	for _, e := range panels {
		assert.True(t, ecs.Attached[ImguiItem](w, e), "%s has no ImguiItem", e)
	}
	assert.True(t, ecs.Attached[EntityBrowserComponent](w, panels[0]))
	assert.True(t, ecs.Attached[StorageViewerComponent](w, panels[2]))
	assert.True(t, ecs.Attached[QueryDebuggerComponent](w, panels[5]))
}

func TestCollectAndFilterEntities(t *testing.T) {
	w, ents := newPanelWorld(t)

	infos := collectEntities(w)
	require.Len(t, infos, len(ents))

	byEntity := make(map[ecs.Entity]EntityInfo, len(infos))
	for _, info := range infos {
		byEntity[info.Entity] = info
	}
	assert.Equal(t, 2, byEntity[ents[0]].ComponentCount)
	assert.ElementsMatch(t, []string{"debugui.pos", "debugui.tag"}, byEntity[ents[0]].ComponentTypes)
	assert.Equal(t, []string{"debugui.pos"}, byEntity[ents[1]].ComponentTypes)

	assert.Len(t, filterEntities(infos, "", ""), 6)
	assert.Len(t, filterEntities(infos, "", "debugui.tag"), 2)
	assert.Len(t, filterEntities(infos, "TAG", ""), 2)
	assert.Empty(t, filterEntities(infos, "", "debugui.missing"))

	byID := filterEntities(infos, ents[4].String(), "")
	require.Len(t, byID, 1)
	assert.Equal(t, ents[4], byID[0].Entity)
}

func TestMatchQuery(t *testing.T) {
	w, ents := newPanelWorld(t)

	m := matchQuery(w, []reflect.Type{reflect.TypeFor[pos](), reflect.TypeFor[tag]()})
	assert.Equal(t, reflect.TypeFor[tag](), m.Driver)
	assert.Equal(t, 2, m.SizeHint)
	assert.Equal(t, 2, m.Candidate)
	assert.ElementsMatch(t, []ecs.Entity{ents[0], ents[3]}, m.Entities)

	m = matchQuery(w, []reflect.Type{reflect.TypeFor[pos]()})
	assert.Len(t, m.Entities, 6)

	m = matchQuery(w, []reflect.Type{reflect.TypeFor[pos](), reflect.TypeFor[level]()})
	assert.Equal(t, reflect.TypeFor[level](), m.Driver)
	assert.Zero(t, m.Candidate)
	assert.Empty(t, m.Entities)

	assert.Empty(t, matchQuery(w, nil).Entities)
}

func TestCollectStorages(t *testing.T) {
	w, _ := newPanelWorld(t)

	storages := collectStorages(w)
	require.Len(t, storages, 2)
	assert.Equal(t, StorageInfo{Type: "debugui.pos", Kind: ecs.DenseIndex, EntityCount: 6}, storages[0])
	assert.Equal(t, StorageInfo{Type: "debugui.tag", Kind: ecs.HashIndex, EntityCount: 2}, storages[1])

	sv := NewStorageViewerComponent()
	sv.refresh(w)
	assert.Equal(t, "debugui.pos", sv.cache.storages[0].Type, "sorted by count, descending")

	w.CreateWith(ecs.With(tag{}), ecs.With(pos{}))
	sv.refresh(w)
	assert.Equal(t, 7, sv.cache.storages[0].EntityCount)
	assert.Equal(t, 3, sv.cache.storages[1].EntityCount)
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStatsComponent(4)

	assert.InDelta(t, 4.0, ps.record(16e6), 0.001)
	assert.InDelta(t, 8.0, ps.record(16e6), 0.001)
	ps.record(16e6)
	ps.record(16e6)
	assert.InDelta(t, 16.0, ps.record(16e6), 0.001, "oldest sample is overwritten")
}

func TestFieldsOf(t *testing.T) {
	fields := fieldsOf(reflect.TypeFor[level]())
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Value", "Hidden", "Count"}, names)
	assert.Equal(t, 3, fields[2].Index)

	assert.Nil(t, fieldsOf(reflect.TypeFor[int]()))
	assert.Equal(t, fields, fieldsOf(reflect.TypeFor[level]()))
}

func TestSetNumericRejectsOverflow(t *testing.T) {
	var l level
	v := reflect.ValueOf(&l).Elem()

	assert.True(t, setInt(v.Field(0), 100))
	assert.False(t, setInt(v.Field(0), 300))
	assert.Equal(t, int8(100), l.Value)

	assert.True(t, setUint(v.Field(3), 65535))
	assert.False(t, setUint(v.Field(3), 65536))
	assert.Equal(t, uint16(65535), l.Count)

	// Not addressable.
	assert.False(t, setInt(reflect.ValueOf(l).Field(0), 1))

	var f struct{ F float32 }
	fv := reflect.ValueOf(&f).Elem().Field(0)
	assert.True(t, setFloat(fv, 1.5))
	assert.False(t, setFloat(fv, 1e300))
	assert.Equal(t, float32(1.5), f.F)
}

func TestComponentAndResourceValues(t *testing.T) {
	w, ents := newPanelWorld(t)
	ecs.InsertResource(w, Selection{Entity: ents[2]})

	val, ok := componentValue(w, ents[2], reflect.TypeFor[pos]())
	require.True(t, ok)
	require.True(t, setFloat(val.Field(1), 7))

	p, ok := ecs.Get[pos](w, ents[2])
	require.True(t, ok)
	assert.Equal(t, pos{X: 2, Y: 7}, *p)

	_, ok = componentValue(w, ents[1], reflect.TypeFor[tag]())
	assert.False(t, ok)

	sel, ok := resourceValue(w, reflect.TypeFor[Selection]())
	require.True(t, ok)
	assert.Equal(t, ents[2], sel.Field(0).Interface())

	_, ok = resourceValue(w, reflect.TypeFor[Profiler]())
	assert.False(t, ok)
}
