package ecs

import "reflect"

// EntityBuilder accumulates component values for an entity that does not
// exist yet. Nothing touches the world until Spawn.
type EntityBuilder struct {
	world  *World
	values []ComponentValue
	index  map[reflect.Type]int
}

// Build starts an EntityBuilder.
func (w *World) Build() *EntityBuilder {
	return &EntityBuilder{world: w, index: make(map[reflect.Type]int)}
}

// With adds v. A later value of the same type replaces an earlier one.
func (b *EntityBuilder) With(v ComponentValue) *EntityBuilder {
	t := v.Type()
	if i, ok := b.index[t]; ok {
		b.values[i] = v
		return b
	}
	b.index[t] = len(b.values)
	b.values = append(b.values, v)
	return b
}

// Len returns the number of distinct component types added so far.
func (b *EntityBuilder) Len() int {
	return len(b.values)
}

// Spawn creates the entity with every accumulated value and resets the builder.
func (b *EntityBuilder) Spawn() Entity {
	e := b.world.CreateWith(b.values...)
	b.values = nil
	clear(b.index)
	return e
}
