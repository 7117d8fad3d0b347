package debugui

import (
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

func NewResourceViewerComponent() ResourceViewerComponent {
	return ResourceViewerComponent{}
}

// Render lists every present resource with an editor for its fields.
func (rv *ResourceViewerComponent) Render(w *ecs.World) {
	if !imgui.BeginV("Resources", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	types := w.Resources().Types()
	if len(types) == 0 {
		imgui.Text("No resources")
	}
	for _, t := range types {
		val, ok := resourceValue(w, t)
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

	imgui.End()
}

func resourceValue(w *ecs.World, t reflect.Type) (reflect.Value, bool) {
	ptr := w.Resources().Value(t)
	if ptr == nil {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(ptr).Elem(), true
}
