package ecs_test

import (
	"fmt"

	"github.com/plus3/sparsecs/ecs"
)

type Lifetime struct {
	Frames int
}

// ExampleCommands shows deferring structural changes. Destroying an entity
// while a view over it is iterating would fail its guard, so the destroy is
// queued and applied after the loop.
func ExampleCommands() {
	w := ecs.NewWorld()
	for i := 1; i <= 4; i++ {
		w.CreateWith(ecs.With(Lifetime{Frames: i}))
	}

	cmds := ecs.NewCommands()
	for e, item := range ecs.Query[struct {
		L *Lifetime `ecs:"mut"`
	}](w).Iter() {
		item.L.Frames -= 2
		if item.L.Frames <= 0 {
			cmds.Destroy(e)
		}
	}
	cmds.Defer(func(w *ecs.World) {
		fmt.Println("alive after flush:", w.Len())
	})

	fmt.Println("queued:", cmds.Len())
	cmds.Flush(w)

	// Output:
	// queued: 3
	// alive after flush: 2
}

// ExampleInsertResource shows world-level singletons and borrowing them from
// a system.
func ExampleInsertResource() {
	type Score struct{ Points int }

	w := ecs.NewWorld()
	ecs.InsertResource(w, Score{})

	award := ecs.System(func(s struct{ S ecs.ResMut[Score] }) {
		s.S.Get().Points += 10
	})
	schedule := ecs.NewScheduleBuilder().System(award).Build()
	schedule.Run(w)
	schedule.Run(w)

	score, _ := ecs.GetResource[Score](w)
	fmt.Println(score.Points)

	// Output:
	// 20
}
