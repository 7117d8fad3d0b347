package ecs

import (
	"reflect"
	"runtime"
	"strings"
	"unsafe"
)

// SystemSpec is a unit of work a Schedule runs against a World. Build one with
// System, ForEach or Func.
type SystemSpec struct {
	name   string
	layout *shapeLayout
	run    func(w *World) int
}

// Name returns the system's label.
func (s SystemSpec) Name() string { return s.name }

// Named returns a copy of s labelled name in logs and stats.
func (s SystemSpec) Named(name string) SystemSpec {
	s.name = name
	return s
}

// System builds a system that calls fn once per run with S filled from the
// world. S may only hold leaves that do not need an entity: resources,
// *Commands, Each views and nested structs of those. A required resource that
// is absent skips the call.
//
// S is compiled and access-checked here, so an aliasing shape panics at
// construction.
func System[S any](fn func(S)) SystemSpec {
	layout := layoutFor[S]()
	if layout.perEntity() {
		panic("ecs: System shape " + layout.typ.String() + " has per-entity fields; use ForEach")
	}
	return SystemSpec{
		name:   funcName(fn),
		layout: layout,
		run: func(w *World) int {
			f := bindFetch(w, layout, w.deferred)
			f.acquire()
			defer f.release()

			var s S
			if !f.fill(Entity{}, unsafe.Pointer(&s), -1) {
				return 0
			}
			fn(s)
			return 1
		},
	}
}

// ForEach builds a system that calls fn for every entity matching S.
func ForEach[S any](fn func(S)) SystemSpec {
	layout := layoutFor[S]()
	return SystemSpec{
		name:   funcName(fn),
		layout: layout,
		run: func(w *World) int {
			n := 0
			for s := range newView[S](w, layout).Values() {
				fn(s)
				n++
			}
			return n
		},
	}
}

// Func builds a system with no inputs.
func Func(fn func()) SystemSpec {
	return SystemSpec{
		name: funcName(fn),
		run: func(*World) int {
			fn()
			return 1
		},
	}
}

func funcName(fn any) string {
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return "system"
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
