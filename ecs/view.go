package ecs

import (
	"iter"
	"unsafe"
)

// View is a single-pass query over every entity matching the shape S.
//
// S is a struct whose fields are shape leaves (see the Shape documentation in
// shape.go). The shape is compiled and access-checked the first time it is
// used; a shape that aliases a component or resource mutably panics before
// any entity is visited.
type View[S any] struct {
	world    *World
	fetch    *fetch
	strategy Strategy
	driver   int
	used     bool
}

// ViewOption configures a View.
type ViewOption func(*viewOptions)

type viewOptions struct {
	strategy Strategy
	forced   bool
	commands *Commands
}

// ForceStrategy overrides the strategy the view would pick. Forcing
// StrategyOptimized on a shape with no required component falls back to
// StrategyAll.
func ForceStrategy(s Strategy) ViewOption {
	return func(o *viewOptions) {
		o.strategy = s
		o.forced = true
	}
}

// withCommands routes *Commands leaves to cmds instead of the world buffer.
func withCommands(cmds *Commands) ViewOption {
	return func(o *viewOptions) {
		o.commands = cmds
	}
}

// Query builds a View over S bound to the current registries of w.
func Query[S any](w *World, opts ...ViewOption) *View[S] {
	return newView[S](w, layoutFor[S](), opts...)
}

func newView[S any](w *World, layout *shapeLayout, opts ...ViewOption) *View[S] {
	o := viewOptions{strategy: StrategyOptimized}
	for _, opt := range opts {
		opt(&o)
	}
	if o.commands == nil {
		o.commands = w.deferred
	}

	f := bindFetch(w, layout, o.commands)
	v := &View[S]{world: w, fetch: f, driver: f.driver()}
	v.strategy = o.strategy
	if v.driver < 0 {
		v.strategy = StrategyAll
	}
	return v
}

// Strategy reports how the view enumerates entities.
func (v *View[S]) Strategy() Strategy {
	return v.strategy
}

// SizeHint is an upper bound on the number of entities Iter yields.
func (v *View[S]) SizeHint() int {
	if v.strategy == StrategyOptimized {
		n, _ := v.fetch.size(v.driver)
		return n
	}
	return v.world.entities.Len()
}

// Iter yields each matching entity with its filled shape. Guards for every
// leaf are held from the start of the range loop until it ends, and the entity
// registry is borrowed shared for the same span, so creating or destroying
// entities inside the loop panics with a *BorrowError. Use Commands instead.
//
// A View can be iterated once; calling Iter or Values again panics.
func (v *View[S]) Iter() iter.Seq2[Entity, S] {
	if v.used {
		panic("ecs: View is single-pass and has already been iterated")
	}
	v.used = true

	return func(yield func(Entity, S) bool) {
		v.fetch.acquire()
		defer v.fetch.release()
		defer v.world.entities.borrow.hold(false)()

		var result S
		base := unsafe.Pointer(&result)

		if v.strategy == StrategyAll {
			for e := range v.world.entities.Iter() {
				if !v.fetch.fill(e, base, -1) {
					continue
				}
				if !yield(e, result) {
					return
				}
			}
			return
		}

		drv := &v.fetch.leaves[v.driver]
		if drv.storage == nil {
			return
		}
		dst := unsafe.Add(base, drv.spec.offset)
		n := drv.storage.len()
		for i := 0; i < n; i++ {
			e, p := drv.storage.denseAt(i)
			*(*unsafe.Pointer)(dst) = p
			if !v.fetch.fill(e, base, v.driver) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values is Iter without the entity handles.
func (v *View[S]) Values() iter.Seq[S] {
	seq := v.Iter()
	return func(yield func(S) bool) {
		for _, s := range seq {
			if !yield(s) {
				return
			}
		}
	}
}

// Get fills the shape for a single entity. It returns false when e is dead or
// does not match. Guards are held only for the duration of the call.
func (v *View[S]) Get(e Entity) (S, bool) {
	var result S
	if !v.world.entities.Contains(e) {
		return result, false
	}
	v.fetch.acquire()
	defer v.fetch.release()
	if !v.fetch.fill(e, unsafe.Pointer(&result), -1) {
		var zero S
		return zero, false
	}
	return result, true
}
