package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

// Render shows and edits the components of the entity in the Selection resource.
func (ci *ComponentInspectorComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	sel, ok := ecs.GetResource[Selection](w)
	if !ok || sel.Entity.IsZero() {
		imgui.Text("No entity selected")
		return
	}

	if !w.Contains(sel.Entity) {
		imgui.Text(fmt.Sprintf("%s is no longer alive", sel.Entity))
		return
	}

	imgui.Text(sel.Entity.String())
	imgui.SameLine()
	if imgui.Button("Destroy") {
		w.Commands().Destroy(sel.Entity)
	}
	imgui.Separator()

	for _, t := range w.Components().ComponentsOf(sel.Entity) {
		val, ok := componentValue(w, sel.Entity, t)
		if !ok {
			continue
		}
		if imgui.TreeNodeStr(t.String()) {
			if val.Kind() == reflect.Struct {
				for _, f := range fieldsOf(t) {
					renderValue(f.Name, val.Field(f.Index))
				}
			} else {
				renderValue("value", val)
			}
			imgui.TreePop()
		}
	}
}

// componentValue returns an addressable reflect.Value for e's component of
// type t, so edits land in the storage.
func componentValue(w *ecs.World, e ecs.Entity, t reflect.Type) (reflect.Value, bool) {
	ptr := w.Components().ComponentPtr(e, t)
	if ptr == nil {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(ptr).Elem(), true
}
