package debugui

import (
	"reflect"
	"sync"
)

// fieldInfo describes one field the value editor can draw.
type fieldInfo struct {
	Name  string
	Type  reflect.Type
	Index int
}

// fieldCache memoizes the editable fields of component and resource types.
// Panels render every frame, so the walk over reflect.Type runs once per type.
type fieldCache struct {
	fields sync.Map // reflect.Type -> []fieldInfo
}

func (c *fieldCache) of(t reflect.Type) []fieldInfo {
	if cached, ok := c.fields.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || !editable(f.Type) {
				continue
			}
			fields = append(fields, fieldInfo{Name: f.Name, Type: f.Type, Index: i})
		}
	}

	actual, _ := c.fields.LoadOrStore(t, fields)
	return actual.([]fieldInfo)
}

// editable reports whether the value editor has anything to show for t.
func editable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return false
	}
	return true
}

var componentFields fieldCache

// fieldsOf returns the editable fields of t, or nil for non-struct types.
func fieldsOf(t reflect.Type) []fieldInfo {
	return componentFields.of(t)
}
