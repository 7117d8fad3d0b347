package ecs

import (
	"fmt"
	"iter"
)

// Entity is a generational handle: a slot index plus the generation the slot
// had when the handle was issued. Handles compare with ==.
type Entity struct {
	index      uint32
	generation uint32
}

// NewEntity builds a handle from raw parts. Handles built this way are only
// valid if they match a live slot of some registry.
func NewEntity(index, generation uint32) Entity {
	return Entity{index: index, generation: generation}
}

// Index returns the slot index.
func (e Entity) Index() uint32 { return e.index }

// Generation returns the slot generation captured by the handle.
func (e Entity) Generation() uint32 { return e.generation }

// IsZero reports whether e is the zero handle, which is never issued.
func (e Entity) IsZero() bool { return e.generation == 0 }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%dv%d)", e.index, e.generation)
}

func (e Entity) bits() uint64 {
	return uint64(e.generation)<<32 | uint64(e.index)
}

// EntityRegistry allocates and recycles entity slots.
// A destroyed slot goes on the free list with its generation bumped, so any
// handle issued before the destroy compares invalid afterwards.
type EntityRegistry struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
	borrow      borrowFlag
}

// NewEntityRegistry creates an empty registry with room for capacity slots.
func NewEntityRegistry(capacity int) *EntityRegistry {
	return &EntityRegistry{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		free:        make([]uint32, 0, capacity/4),
		borrow:      newBorrowFlag(EntityAccess, nil),
	}
}

// Create issues a new handle, reusing a freed slot when one is available.
func (r *EntityRegistry) Create() Entity {
	r.borrow.check(true)

	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.generations))
		r.generations = append(r.generations, 1)
		r.alive = append(r.alive, false)
	}

	r.alive[index] = true
	r.count++
	return Entity{index: index, generation: r.generations[index]}
}

// Contains reports whether e refers to a live slot.
func (r *EntityRegistry) Contains(e Entity) bool {
	if int(e.index) >= len(r.generations) {
		return false
	}
	return r.alive[e.index] && r.generations[e.index] == e.generation
}

// Destroy frees the slot behind e. Destroying a dead or unknown handle is a
// no-op and returns false.
func (r *EntityRegistry) Destroy(e Entity) bool {
	if !r.Contains(e) {
		return false
	}
	r.borrow.check(true)

	r.alive[e.index] = false
	r.bump(e.index)
	r.free = append(r.free, e.index)
	r.count--
	return true
}

// bump advances the generation of slot i. Generation 0 is reserved for the
// zero Entity, so a wrapping counter restarts at 1.
func (r *EntityRegistry) bump(i uint32) {
	r.generations[i]++
	if r.generations[i] == 0 {
		r.generations[i] = 1
	}
}

// Len returns the number of live entities.
func (r *EntityRegistry) Len() int {
	return r.count
}

// IsEmpty reports whether no entity is alive.
func (r *EntityRegistry) IsEmpty() bool {
	return r.count == 0
}

// Clear kills every live entity, bumping generations so that no handle issued
// so far stays valid.
func (r *EntityRegistry) Clear() {
	r.borrow.check(true)

	for i := len(r.alive) - 1; i >= 0; i-- {
		if r.alive[i] {
			r.alive[i] = false
			r.bump(uint32(i))
			r.free = append(r.free, uint32(i))
		}
	}
	r.count = 0
}

// Iter yields live entities in ascending slot order.
func (r *EntityRegistry) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(r.alive); i++ {
			if !r.alive[i] {
				continue
			}
			if !yield(Entity{index: uint32(i), generation: r.generations[i]}) {
				return
			}
		}
	}
}
