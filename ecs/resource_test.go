package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources(t *testing.T) {
	w := ecs.NewWorld()
	assert.False(t, ecs.HasResource[Gravity](w))
	_, ok := ecs.GetResource[Gravity](w)
	assert.False(t, ok)

	ecs.InsertResource(w, Gravity{G: 9.8})
	g, ok := ecs.GetResource[Gravity](w)
	require.True(t, ok)
	assert.Equal(t, float32(9.8), g.G)

	ecs.InsertResource(w, Gravity{G: 1.6})
	g, _ = ecs.GetResource[Gravity](w)
	assert.Equal(t, float32(1.6), g.G)
	assert.Equal(t, 1, w.Resources().Len())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Gravity]()}, w.Resources().Types())

	assert.True(t, ecs.WriteResource(w, func(g *Gravity) { g.G = 3 }))
	assert.True(t, ecs.ReadResource(w, func(g *Gravity) { assert.Equal(t, float32(3), g.G) }))

	assert.True(t, ecs.RemoveResource[Gravity](w))
	assert.False(t, ecs.RemoveResource[Gravity](w))
	assert.False(t, ecs.HasResource[Gravity](w))
	assert.Nil(t, w.Resources().Value(reflect.TypeFor[Gravity]()))
	assert.False(t, ecs.WriteResource(w, func(*Gravity) {}))
}

func TestResourceSlotsAreIndependent(t *testing.T) {
	w := ecs.NewWorld()
	ecs.InsertResource(w, Gravity{G: 1})
	ecs.InsertResource(w, Counter{})

	ecs.WriteResource(w, func(*Gravity) {
		assert.NotPanics(t, func() {
			ecs.WriteResource(w, func(c *Counter) { c.N++ })
		})
		assert.Panics(t, func() {
			ecs.ReadResource(w, func(*Gravity) {})
		})
	})
	c, _ := ecs.GetResource[Counter](w)
	assert.Equal(t, 1, c.N)
}
