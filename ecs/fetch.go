package ecs

import (
	"fmt"
	"unsafe"
)

// Strategy is how a View enumerates candidate entities.
type Strategy uint8

const (
	// StrategyAll walks every live entity and probes each leaf.
	StrategyAll Strategy = iota
	// StrategyOptimized walks the dense array of the smallest required
	// component storage and probes the remaining leaves.
	StrategyOptimized
)

func (s Strategy) String() string {
	switch s {
	case StrategyAll:
		return "all"
	case StrategyOptimized:
		return "optimized"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// boundLeaf is a leaf resolved against one world.
type boundLeaf struct {
	spec     *leafSpec
	storage  iComponentStorage
	resource iResourceSlot
}

// fetch is a compiled shape bound to the current registries of a world.
type fetch struct {
	world    *World
	layout   *shapeLayout
	leaves   []boundLeaf
	commands *Commands
	guards   guardSet
}

func bindFetch(w *World, layout *shapeLayout, cmds *Commands) *fetch {
	f := &fetch{
		world:    w,
		layout:   layout,
		leaves:   make([]boundLeaf, len(layout.leaves)),
		commands: cmds,
	}
	for i := range layout.leaves {
		spec := &layout.leaves[i]
		f.leaves[i].spec = spec
		switch spec.kind {
		case leafComponent, leafExclude:
			if s, ok := w.components.lookup(spec.typ); ok {
				f.leaves[i].storage = s
			}
		case leafResource:
			if s, ok := w.resources.lookup(spec.typ); ok {
				f.leaves[i].resource = s
			}
		}
	}
	return f
}

// size reports the row count of leaf i when it is a required component column.
// A required component with no storage has size 0.
func (f *fetch) size(i int) (int, bool) {
	l := &f.leaves[i]
	if l.spec.kind != leafComponent || l.spec.optional {
		return 0, false
	}
	if l.storage == nil {
		return 0, true
	}
	return l.storage.len(), true
}

// driver picks the required component leaf with the fewest rows. Ties go to
// the first leaf found. It returns -1 when the shape has no such leaf.
func (f *fetch) driver() int {
	best, bestLen := -1, 0
	for i := range f.leaves {
		n, ok := f.size(i)
		if !ok {
			continue
		}
		if best == -1 || n < bestLen {
			best, bestLen = i, n
		}
	}
	return best
}

// acquire takes the guard of every bound component and resource leaf. On a
// conflict the guards taken so far are released before the panic propagates.
func (f *fetch) acquire() {
	ok := false
	defer func() {
		if !ok {
			f.guards.releaseAll()
		}
	}()
	for i := range f.leaves {
		l := &f.leaves[i]
		switch {
		case l.storage != nil:
			f.guards.push(l.storage.guard(), l.spec.exclusive)
		case l.resource != nil:
			f.guards.push(l.resource.guard(), l.spec.exclusive)
		}
	}
	ok = true
}

func (f *fetch) release() {
	f.guards.releaseAll()
}

// fill resolves every leaf except skip for entity e, writing into the shape
// value at base. It returns false when e does not match: a required leaf is
// missing or an excluded component is present.
func (f *fetch) fill(e Entity, base unsafe.Pointer, skip int) bool {
	for i := range f.leaves {
		if i == skip {
			continue
		}
		l := &f.leaves[i]
		dst := unsafe.Add(base, l.spec.offset)

		switch l.spec.kind {
		case leafEntity:
			*(*Entity)(dst) = e

		case leafComponent:
			var p unsafe.Pointer
			if l.storage != nil {
				p = l.storage.pointer(e)
			}
			if p == nil && !l.spec.optional {
				return false
			}
			*(*unsafe.Pointer)(dst) = p

		case leafExclude:
			if l.storage != nil && l.storage.attached(e) {
				return false
			}

		case leafResource:
			var p unsafe.Pointer
			if l.resource != nil {
				p = l.resource.pointer()
			}
			if p == nil && !l.spec.optional {
				return false
			}
			*(*unsafe.Pointer)(dst) = p

		case leafCommands:
			*(**Commands)(dst) = f.commands

		case leafView:
			l.spec.assign(dst, f.world, f.commands)
		}
	}
	return true
}
