package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRegistryLifecycle(t *testing.T) {
	r := ecs.NewEntityRegistry(4)
	assert.True(t, r.IsEmpty())

	a := r.Create()
	b := r.Create()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
	assert.True(t, r.Contains(a))
	assert.True(t, r.Contains(b))
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Destroy(a))
	assert.False(t, r.Contains(a))
	assert.Equal(t, 1, r.Len())

	t.Run("destroy is idempotent", func(t *testing.T) {
		assert.False(t, r.Destroy(a))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("recycled slot gets a new generation", func(t *testing.T) {
		c := r.Create()
		assert.Equal(t, a.Index(), c.Index())
		assert.Greater(t, c.Generation(), a.Generation())
		assert.False(t, r.Contains(a))
		assert.True(t, r.Contains(c))
	})

	t.Run("unknown handles are dead", func(t *testing.T) {
		assert.False(t, r.Contains(ecs.NewEntity(999, 1)))
		assert.False(t, r.Destroy(ecs.NewEntity(999, 1)))
		assert.False(t, r.Contains(ecs.Entity{}))
	})
}

func TestEntityRegistryIterAscending(t *testing.T) {
	r := ecs.NewEntityRegistry(0)
	var created []ecs.Entity
	for range 6 {
		created = append(created, r.Create())
	}
	r.Destroy(created[1])
	r.Destroy(created[4])

	got := slices.Collect(r.Iter())
	require.Len(t, got, 4)
	assert.Equal(t, []ecs.Entity{created[0], created[2], created[3], created[5]}, got)
	assert.True(t, slices.IsSortedFunc(got, func(a, b ecs.Entity) int {
		return int(a.Index()) - int(b.Index())
	}))
}

func TestEntityRegistryClear(t *testing.T) {
	r := ecs.NewEntityRegistry(0)
	a := r.Create()
	b := r.Create()
	r.Clear()

	assert.True(t, r.IsEmpty())
	assert.False(t, r.Contains(a))
	assert.False(t, r.Contains(b))
	assert.Empty(t, slices.Collect(r.Iter()))

	c := r.Create()
	assert.True(t, r.Contains(c))
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestEntityString(t *testing.T) {
	assert.Equal(t, "Entity(3v2)", ecs.NewEntity(3, 2).String())
}
