package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/sparsecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsFlush(t *testing.T) {
	w := newTestWorld()
	a := w.CreateWith(ecs.With(Position{}), ecs.With(Velocity{}))
	b := w.CreateWith(ecs.With(Position{}))

	cmds := ecs.NewCommands()
	cmds.Create(ecs.With(Name{Value: "spawned"}))
	cmds.Attach(b, ecs.With(Health{Current: 1, Max: 1}))
	cmds.Remove(b, reflect.TypeFor[Position]())
	cmds.Destroy(a)
	var deferred bool
	cmds.Defer(func(w *ecs.World) {
		deferred = true
		ecs.InsertResource(w, Counter{N: w.Len()})
	})
	assert.Equal(t, 5, cmds.Len())

	// Nothing applies before Flush.
	assert.True(t, w.Contains(a))
	assert.Equal(t, 2, w.Len())

	cmds.Flush(w)
	assert.Equal(t, 0, cmds.Len())
	assert.True(t, deferred)

	assert.False(t, w.Contains(a))
	assert.False(t, ecs.Attached[Position](w, b))
	assert.True(t, ecs.Attached[Health](w, b))

	n := 0
	for _, name := range ecs.ViewOne[Name](w) {
		assert.Equal(t, "spawned", name.Value)
		n++
	}
	assert.Equal(t, 1, n)

	c, ok := ecs.GetResource[Counter](w)
	require.True(t, ok)
	assert.Equal(t, 2, c.N)
}

func TestCommandsSkipDestroyedEntities(t *testing.T) {
	w := newTestWorld()
	e := w.CreateWith(ecs.With(Position{}))

	cmds := ecs.NewCommands()
	cmds.Attach(e, ecs.With(Velocity{}))
	cmds.Destroy(e)
	cmds.Remove(e, reflect.TypeFor[Position]())
	cmds.Flush(w)

	assert.False(t, w.Contains(e))
	assert.Equal(t, 0, w.Components().StorageLen(reflect.TypeFor[Velocity]()))
	assert.Equal(t, 0, w.Components().StorageLen(reflect.TypeFor[Position]()))

	t.Run("buffer is reusable", func(t *testing.T) {
		cmds.Create(ecs.With(Velocity{}))
		cmds.Flush(w)
		assert.Equal(t, 1, w.Components().StorageLen(reflect.TypeFor[Velocity]()))
	})
}

func TestEntryAndBuilder(t *testing.T) {
	w := newTestWorld()

	b := w.Build().
		With(ecs.With(Position{X: 1})).
		With(ecs.With(Name{Value: "first"})).
		With(ecs.With(Position{X: 2}))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 0, w.Len())

	e := b.Spawn()
	en := w.Entry(e)
	require.True(t, en.Valid())
	assert.Equal(t, e, en.Entity())

	p, ok := ecs.EntryGet[Position](en)
	require.True(t, ok)
	assert.Equal(t, float32(2), p.X)

	assert.True(t, ecs.EntryAttach(en, Velocity{DX: 3}))
	assert.True(t, en.Has(reflect.TypeFor[Velocity]()))
	v, _ := ecs.EntryGetMut[Velocity](en)
	v.DX = 4
	v, _ = ecs.EntryGet[Velocity](en)
	assert.Equal(t, float32(4), v.DX)

	assert.Equal(t, 2, en.Remove(reflect.TypeFor[Position](), reflect.TypeFor[Name]()))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Velocity]()}, en.Components())
	assert.True(t, en.Attach(ecs.With(Health{Max: 3})))
	assert.False(t, en.IsEmpty())

	assert.True(t, en.Destroy())
	assert.False(t, en.Valid())
	assert.True(t, en.IsEmpty())
	assert.False(t, en.Attach(ecs.With(Health{})))
	assert.Nil(t, en.Components())
}
