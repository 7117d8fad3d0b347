package ecs

import "reflect"

// Entry is a handle-plus-world convenience for working with one entity.
// All methods are no-ops on a dead entity.
type Entry struct {
	world  *World
	entity Entity
}

// Entry returns an Entry for e. It does not check that e is alive.
func (w *World) Entry(e Entity) Entry {
	return Entry{world: w, entity: e}
}

// Entity returns the handle.
func (en Entry) Entity() Entity { return en.entity }

// Valid reports whether the entity is alive.
func (en Entry) Valid() bool {
	return en.world.entities.Contains(en.entity)
}

// Attach attaches values, overwriting existing ones of the same types.
func (en Entry) Attach(values ...ComponentValue) bool {
	return en.world.AttachAll(en.entity, values...)
}

// Remove removes the given component types and returns how many were present.
func (en Entry) Remove(types ...reflect.Type) int {
	return en.world.RemoveAll(en.entity, types...)
}

// Has reports whether the entity carries a component of type t.
func (en Entry) Has(t reflect.Type) bool {
	s, ok := en.world.components.lookup(t)
	return ok && s.attached(en.entity)
}

// Components lists the types the entity carries, in registration order.
func (en Entry) Components() []reflect.Type {
	if !en.Valid() {
		return nil
	}
	return en.world.components.ComponentsOf(en.entity)
}

// IsEmpty reports whether the entity carries no components.
func (en Entry) IsEmpty() bool {
	return en.world.IsEntityEmpty(en.entity)
}

// Destroy destroys the entity.
func (en Entry) Destroy() bool {
	return en.world.Destroy(en.entity)
}

// EntryGet returns the entry's T.
func EntryGet[T any](en Entry) (*T, bool) {
	return Get[T](en.world, en.entity)
}

// EntryGetMut returns the entry's T for writing.
func EntryGetMut[T any](en Entry) (*T, bool) {
	return GetMut[T](en.world, en.entity)
}

// EntryAttach attaches v to the entry.
func EntryAttach[T any](en Entry, v T) bool {
	return Attach(en.world, en.entity, v)
}
