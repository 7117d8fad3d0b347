package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Each is a shape field carrying a nested View over S. The view is bound when
// the outer shape is filled and, like any View, can be iterated once.
// Its accesses are checked together with the outer shape.
type Each[S any] struct {
	view *View[S]
}

func (Each[S]) shapeLeaf() leafSpec {
	return leafSpec{
		kind:   leafView,
		typ:    reflect.TypeFor[S](),
		nested: layoutFor[S](),
		assign: func(dst unsafe.Pointer, w *World, cmds *Commands) {
			(*Each[S])(dst).view = newView[S](w, layoutFor[S](), withCommands(cmds))
		},
	}
}

// View returns the nested view.
func (e Each[S]) View() *View[S] { return e.view }

// Iter iterates the nested view.
func (e Each[S]) Iter() iter.Seq2[Entity, S] { return e.view.Iter() }

// Values iterates the nested view without entity handles.
func (e Each[S]) Values() iter.Seq[S] { return e.view.Values() }

// SizeHint is an upper bound on the number of entities Iter yields.
func (e Each[S]) SizeHint() int { return e.view.SizeHint() }

// Get fills the nested shape for one entity.
func (e Each[S]) Get(ent Entity) (S, bool) { return e.view.Get(ent) }
