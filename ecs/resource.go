package ecs

import (
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// ResourceRegistry holds at most one value per resource type. Every type has
// its own guarded slot, so borrows of two different resource types never
// interfere.
type ResourceRegistry struct {
	slots map[reflect.Type]iResourceSlot
	order []reflect.Type
	log   *zap.Logger
}

type iResourceSlot interface {
	resourceType() reflect.Type
	guard() *borrowFlag
	present() bool
	pointer() unsafe.Pointer
	valueOf() any
}

type resourceSlot[R any] struct {
	value  R
	ok     bool
	borrow borrowFlag
}

func (s *resourceSlot[R]) resourceType() reflect.Type { return reflect.TypeFor[R]() }
func (s *resourceSlot[R]) guard() *borrowFlag         { return &s.borrow }
func (s *resourceSlot[R]) present() bool              { return s.ok }

func (s *resourceSlot[R]) pointer() unsafe.Pointer {
	if !s.ok {
		return nil
	}
	return unsafe.Pointer(&s.value)
}

func (s *resourceSlot[R]) valueOf() any {
	if !s.ok {
		return nil
	}
	return &s.value
}

func newResourceRegistry(log *zap.Logger) *ResourceRegistry {
	return &ResourceRegistry{
		slots: make(map[reflect.Type]iResourceSlot),
		log:   log,
	}
}

func slotOf[R any](r *ResourceRegistry, create bool) *resourceSlot[R] {
	t := reflect.TypeFor[R]()
	if s, ok := r.slots[t]; ok {
		return s.(*resourceSlot[R])
	}
	if !create {
		return nil
	}
	s := &resourceSlot[R]{borrow: newBorrowFlag(ResourceAccess, t)}
	r.slots[t] = s
	r.order = append(r.order, t)
	return s
}

func (r *ResourceRegistry) lookup(t reflect.Type) (iResourceSlot, bool) {
	s, ok := r.slots[t]
	return s, ok
}

// Types returns the types of resources currently present, in first-insert order.
func (r *ResourceRegistry) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.order))
	for _, t := range r.order {
		if r.slots[t].present() {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of resources currently present.
func (r *ResourceRegistry) Len() int {
	n := 0
	for _, s := range r.slots {
		if s.present() {
			n++
		}
	}
	return n
}

// Value returns the resource of type t as a *R boxed in an interface, or nil.
func (r *ResourceRegistry) Value(t reflect.Type) any {
	if s, ok := r.slots[t]; ok {
		return s.valueOf()
	}
	return nil
}

// InsertResource stores v as the resource of type R, replacing any previous value.
func InsertResource[R any](w *World, v R) {
	s := slotOf[R](w.resources, true)
	defer s.borrow.hold(true)()
	replaced := s.ok
	s.value = v
	s.ok = true
	w.log.Debug("inserted resource",
		zap.Stringer("type", reflect.TypeFor[R]()),
		zap.Bool("replaced", replaced))
}

// RemoveResource drops the resource of type R. It returns false if none was present.
func RemoveResource[R any](w *World) bool {
	s := slotOf[R](w.resources, false)
	if s == nil || !s.ok {
		return false
	}
	defer s.borrow.hold(true)()
	var zero R
	s.value = zero
	s.ok = false
	w.log.Debug("removed resource", zap.Stringer("type", reflect.TypeFor[R]()))
	return true
}

// HasResource reports whether a resource of type R is present.
func HasResource[R any](w *World) bool {
	s := slotOf[R](w.resources, false)
	return s != nil && s.ok
}

// GetResource returns the resource of type R. The guard is checked but not
// held; use ReadResource or WriteResource for scoped access.
func GetResource[R any](w *World) (*R, bool) {
	s := slotOf[R](w.resources, false)
	if s == nil || !s.ok {
		return nil, false
	}
	s.borrow.check(false)
	return &s.value, true
}

// ReadResource calls fn with the resource of type R under a shared guard.
func ReadResource[R any](w *World, fn func(*R)) bool {
	return withResource(w, false, fn)
}

// WriteResource calls fn with the resource of type R under an exclusive guard.
func WriteResource[R any](w *World, fn func(*R)) bool {
	return withResource(w, true, fn)
}

func withResource[R any](w *World, exclusive bool, fn func(*R)) bool {
	s := slotOf[R](w.resources, false)
	if s == nil || !s.ok {
		return false
	}
	defer s.borrow.hold(exclusive)()
	fn(&s.value)
	return true
}

// Res is a shape field borrowing the resource R shared. The shape does not
// match while R is absent.
type Res[R any] struct {
	value *R
}

// Get returns the borrowed resource.
func (r Res[R]) Get() *R { return r.value }

func (Res[R]) shapeLeaf() leafSpec {
	return leafSpec{kind: leafResource, typ: reflect.TypeFor[R]()}
}

// ResMut is a shape field borrowing the resource R exclusively.
type ResMut[R any] struct {
	value *R
}

// Get returns the borrowed resource.
func (r ResMut[R]) Get() *R { return r.value }

func (ResMut[R]) shapeLeaf() leafSpec {
	return leafSpec{kind: leafResource, typ: reflect.TypeFor[R](), exclusive: true}
}

// OptRes is Res that also matches while R is absent.
type OptRes[R any] struct {
	value *R
}

// Get returns the borrowed resource, or nil if absent.
func (r OptRes[R]) Get() *R { return r.value }

// Ok reports whether the resource was present.
func (r OptRes[R]) Ok() bool { return r.value != nil }

func (OptRes[R]) shapeLeaf() leafSpec {
	return leafSpec{kind: leafResource, typ: reflect.TypeFor[R](), optional: true}
}

// OptResMut is ResMut that also matches while R is absent.
type OptResMut[R any] struct {
	value *R
}

// Get returns the borrowed resource, or nil if absent.
func (r OptResMut[R]) Get() *R { return r.value }

// Ok reports whether the resource was present.
func (r OptResMut[R]) Ok() bool { return r.value != nil }

func (OptResMut[R]) shapeLeaf() leafSpec {
	return leafSpec{kind: leafResource, typ: reflect.TypeFor[R](), exclusive: true, optional: true}
}
