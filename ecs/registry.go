package ecs

import (
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"
)

// UnregisteredError is raised when type-erased access names a component type
// that was never registered with the world.
type UnregisteredError struct {
	Kind AccessKind
	Type reflect.Type
}

func (e *UnregisteredError) Error() string {
	return fmt.Sprintf("ecs: %s type %s not registered", e.Kind, e.Type)
}

// ComponentRegistry maps component types to their storages. Each World owns
// one; storages are created once per type and never replaced.
type ComponentRegistry struct {
	storages map[reflect.Type]iComponentStorage
	order    []reflect.Type
	log      *zap.Logger
}

func newComponentRegistry(log *zap.Logger) *ComponentRegistry {
	return &ComponentRegistry{
		storages: make(map[reflect.Type]iComponentStorage),
		log:      log,
	}
}

// ComponentOption configures a component type at registration.
type ComponentOption func(*componentOptions)

type componentOptions struct {
	kind     StorageKind
	kindSet  bool
	capacity int
}

// WithStorageKind overrides the storage kind for the registered type.
func WithStorageKind(kind StorageKind) ComponentOption {
	return func(o *componentOptions) {
		o.kind = kind
		o.kindSet = true
	}
}

// WithCapacity preallocates room for n values.
func WithCapacity(n int) ComponentOption {
	return func(o *componentOptions) {
		o.capacity = n
	}
}

// RegisterComponent creates the storage for T. Registering a type twice
// returns the existing storage and ignores the options.
func RegisterComponent[T any](w *World, opts ...ComponentOption) *ComponentStorage[T] {
	r := w.components
	t := reflect.TypeFor[T]()
	if s, ok := r.storages[t]; ok {
		return s.(*ComponentStorage[T])
	}

	validateComponentType(t)

	o := componentOptions{capacity: 64}
	var zero T
	if k, ok := any(zero).(StorageKinder); ok {
		o.kind = k.StorageKind()
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := newComponentStorage[T](o.kind, o.capacity)
	r.storages[t] = s
	r.order = append(r.order, t)
	r.log.Debug("registered component",
		zap.Stringer("type", t),
		zap.Stringer("storage", o.kind))
	return s
}

// ComponentStorageOf returns the storage for T if T is registered.
func ComponentStorageOf[T any](w *World) (*ComponentStorage[T], bool) {
	s, ok := w.components.storages[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return s.(*ComponentStorage[T]), true
}

// validateComponentType rejects kinds that are references rather than values.
func validateComponentType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		panic("ecs: component type " + t.String() + " must be a value type, not a " + t.Kind().String())
	}
}

func (r *ComponentRegistry) lookup(t reflect.Type) (iComponentStorage, bool) {
	s, ok := r.storages[t]
	return s, ok
}

func (r *ComponentRegistry) mustLookup(t reflect.Type) iComponentStorage {
	s, ok := r.storages[t]
	if !ok {
		panic(&UnregisteredError{Kind: ComponentAccess, Type: t})
	}
	return s
}

// Registered reports whether t has a storage.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.storages[t]
	return ok
}

// Types returns registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.order)
}

// StorageLen returns how many entities carry t, or 0 if t is unregistered.
func (r *ComponentRegistry) StorageLen(t reflect.Type) int {
	if s, ok := r.storages[t]; ok {
		return s.len()
	}
	return 0
}

// RemoveAll removes e from every registered storage and returns how many
// values were dropped. The cost grows with the number of registered types.
func (r *ComponentRegistry) RemoveAll(e Entity) int {
	r.checkRemove(e)
	removed := 0
	for _, t := range r.order {
		s := r.storages[t]
		if !s.attached(e) {
			continue
		}
		release := s.guard().hold(true)
		if s.remove(e) {
			removed++
		}
		release()
	}
	return removed
}

// checkRemove panics with a BorrowError if any storage holding e is borrowed,
// before anything is removed.
func (r *ComponentRegistry) checkRemove(e Entity, types ...reflect.Type) {
	if len(types) == 0 {
		types = r.order
	}
	for _, t := range types {
		if s, ok := r.storages[t]; ok && s.attached(e) {
			s.guard().check(true)
		}
	}
}

// remove drops e's value of type t under an exclusive guard.
func (r *ComponentRegistry) remove(e Entity, t reflect.Type) bool {
	s, ok := r.storages[t]
	if !ok || !s.attached(e) {
		return false
	}
	defer s.guard().hold(true)()
	return s.remove(e)
}

// ComponentsOf lists the types e carries, in registration order.
func (r *ComponentRegistry) ComponentsOf(e Entity) []reflect.Type {
	var out []reflect.Type
	for _, t := range r.order {
		if r.storages[t].attached(e) {
			out = append(out, t)
		}
	}
	return out
}

// EntitiesOf yields the entities carrying t in dense order, under a shared
// guard. An unregistered t yields nothing.
func (r *ComponentRegistry) EntitiesOf(t reflect.Type) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		s, ok := r.storages[t]
		if !ok {
			return
		}
		defer s.guard().hold(false)()
		for i := 0; i < s.len(); i++ {
			e, _ := s.denseAt(i)
			if !yield(e) {
				return
			}
		}
	}
}

// ComponentPtr returns e's value of type t as a *T boxed in an interface, or
// nil if e has none. It panics with an UnregisteredError if t is unknown.
func (r *ComponentRegistry) ComponentPtr(e Entity, t reflect.Type) any {
	return r.mustLookup(t).valueOf(e)
}

func (r *ComponentRegistry) hasAny(e Entity) bool {
	for _, t := range r.order {
		if r.storages[t].attached(e) {
			return true
		}
	}
	return false
}

func (r *ComponentRegistry) clear() {
	for _, t := range r.order {
		s := r.storages[t]
		release := s.guard().hold(true)
		s.clear()
		release()
	}
}
