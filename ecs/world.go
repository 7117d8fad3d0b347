package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// World ties together the entity registry, the component storages and the
// resources. It is not safe for concurrent use.
type World struct {
	entities   *EntityRegistry
	components *ComponentRegistry
	resources  *ResourceRegistry
	deferred   *Commands
	log        *zap.Logger
	running    bool
}

// WorldOption configures a World.
type WorldOption func(*worldOptions)

type worldOptions struct {
	log      *zap.Logger
	capacity int
}

// WithLogger sets the logger used for registration and scheduling records.
func WithLogger(log *zap.Logger) WorldOption {
	return func(o *worldOptions) {
		o.log = log
	}
}

// WithEntityCapacity preallocates room for n entity slots.
func WithEntityCapacity(n int) WorldOption {
	return func(o *worldOptions) {
		o.capacity = n
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...WorldOption) *World {
	o := worldOptions{capacity: 1024}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	return &World{
		entities:   NewEntityRegistry(o.capacity),
		components: newComponentRegistry(o.log),
		resources:  newResourceRegistry(o.log),
		deferred:   NewCommands(),
		log:        o.log,
	}
}

// Entities exposes the entity registry.
func (w *World) Entities() *EntityRegistry { return w.entities }

// Components exposes the component registry.
func (w *World) Components() *ComponentRegistry { return w.components }

// Resources exposes the resource registry.
func (w *World) Resources() *ResourceRegistry { return w.resources }

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger { return w.log }

// Commands returns the world-level deferred buffer. Views built with Query hand
// it to *Commands shape fields; apply it with FlushCommands.
func (w *World) Commands() *Commands { return w.deferred }

// FlushCommands applies and resets the world-level deferred buffer.
func (w *World) FlushCommands() {
	w.deferred.Flush(w)
}

// Create spawns an entity with no components.
func (w *World) Create() Entity {
	return w.entities.Create()
}

// CreateWith spawns an entity carrying values. The entity and all of its
// values exist together once CreateWith returns.
func (w *World) CreateWith(values ...ComponentValue) Entity {
	e := w.entities.Create()
	for _, v := range values {
		v.attachTo(w, e)
	}
	return e
}

// Contains reports whether e is alive.
func (w *World) Contains(e Entity) bool {
	return w.entities.Contains(e)
}

// Destroy removes every component of e and frees its slot. Destroying a dead
// or unknown entity is a no-op and returns false.
func (w *World) Destroy(e Entity) bool {
	if !w.entities.Contains(e) {
		return false
	}
	// Fail before touching any storage so a refused destroy changes nothing.
	w.entities.borrow.check(true)
	w.components.RemoveAll(e)
	return w.entities.Destroy(e)
}

// IsEmpty reports whether the world has no live entities.
func (w *World) IsEmpty() bool {
	return w.entities.IsEmpty()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.Len()
}

// Clear destroys every entity and drops every component value. Registered
// types and resources survive.
func (w *World) Clear() {
	w.components.clear()
	w.entities.Clear()
}

// IsEntityEmpty reports whether e carries no components. Dead entities are empty.
func (w *World) IsEntityEmpty(e Entity) bool {
	if !w.entities.Contains(e) {
		return true
	}
	return !w.components.hasAny(e)
}

// AttachAll attaches every value to e. It returns false if e is not alive.
func (w *World) AttachAll(e Entity, values ...ComponentValue) bool {
	if !w.entities.Contains(e) {
		return false
	}
	for _, v := range values {
		v.attachTo(w, e)
	}
	return true
}

// RemoveAll removes the components of the given types from e and returns
// how many were present.
func (w *World) RemoveAll(e Entity, types ...reflect.Type) int {
	if !w.entities.Contains(e) || len(types) == 0 {
		return 0
	}
	w.components.checkRemove(e, types...)
	removed := 0
	for _, t := range types {
		if w.components.remove(e, t) {
			removed++
		}
	}
	return removed
}

// ComponentValue is a typed value waiting to be attached, built with With.
type ComponentValue interface {
	Type() reflect.Type
	attachTo(w *World, e Entity)
}

type componentValue[T any] struct {
	value T
}

// With wraps v for CreateWith, AttachAll, EntityBuilder and Commands.
func With[T any](v T) ComponentValue {
	return componentValue[T]{value: v}
}

func (c componentValue[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c componentValue[T]) attachTo(w *World, e Entity) {
	s := RegisterComponent[T](w)
	defer s.borrow.hold(true)()
	s.Attach(e, c.value)
}

// Attach stores v on e, registering T if needed and overwriting any existing
// value. It returns false if e is not alive.
func Attach[T any](w *World, e Entity, v T) bool {
	s := RegisterComponent[T](w)
	if !w.entities.Contains(e) {
		return false
	}
	defer s.borrow.hold(true)()
	s.Attach(e, v)
	return true
}

// Remove drops e's T. It returns false if e had none.
func Remove[T any](w *World, e Entity) bool {
	s, ok := ComponentStorageOf[T](w)
	if !ok || !s.Attached(e) {
		return false
	}
	defer s.borrow.hold(true)()
	return s.Remove(e)
}

// Attached reports whether e carries a T.
func Attached[T any](w *World, e Entity) bool {
	s, ok := ComponentStorageOf[T](w)
	return ok && s.Attached(e)
}

// Get returns e's T. The shared guard is checked but not held, so the pointer
// must not be used across a structural change of the storage.
func Get[T any](w *World, e Entity) (*T, bool) {
	s, ok := ComponentStorageOf[T](w)
	if !ok {
		return nil, false
	}
	s.borrow.check(false)
	v := s.Get(e)
	return v, v != nil
}

// GetMut returns e's T for writing. The exclusive guard is checked but not held.
func GetMut[T any](w *World, e Entity) (*T, bool) {
	s, ok := ComponentStorageOf[T](w)
	if !ok {
		return nil, false
	}
	s.borrow.check(true)
	v := s.GetMut(e)
	return v, v != nil
}

// Read calls fn with e's T under a shared guard. It returns false if e has no T.
func Read[T any](w *World, e Entity, fn func(*T)) bool {
	return withComponent(w, e, false, fn)
}

// Write calls fn with e's T under an exclusive guard. It returns false if e has no T.
func Write[T any](w *World, e Entity, fn func(*T)) bool {
	return withComponent(w, e, true, fn)
}

func withComponent[T any](w *World, e Entity, exclusive bool, fn func(*T)) bool {
	s, ok := ComponentStorageOf[T](w)
	if !ok {
		return false
	}
	defer s.borrow.hold(exclusive)()
	v := s.Get(e)
	if v == nil {
		return false
	}
	fn(v)
	return true
}

// ExtendWithOne creates one entity per value, each carrying that value.
func ExtendWithOne[T any](w *World, values []T) []Entity {
	s := RegisterComponent[T](w)
	defer s.borrow.hold(true)()

	out := make([]Entity, len(values))
	for i, v := range values {
		e := w.entities.Create()
		s.Attach(e, v)
		out[i] = e
	}
	return out
}
