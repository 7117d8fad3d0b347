package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
)

// renderValue draws an editor for val. Edits are written straight through
// val, which must be addressable for them to stick.
func renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		renderValue(name, val.Elem())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			setUint(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			setFloat(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, f := range fieldsOf(val.Type()) {
				renderValue(f.Name, val.Field(f.Index))
			}
			imgui.TreePop()
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}

// setInt stores v into val, ignoring values that would overflow the field.
func setInt(val reflect.Value, v int64) bool {
	if !val.CanSet() || val.OverflowInt(v) {
		return false
	}
	val.SetInt(v)
	return true
}

func setUint(val reflect.Value, v uint64) bool {
	if !val.CanSet() || val.OverflowUint(v) {
		return false
	}
	val.SetUint(v)
	return true
}

func setFloat(val reflect.Value, v float64) bool {
	if !val.CanSet() || val.OverflowFloat(v) {
		return false
	}
	val.SetFloat(v)
	return true
}
