package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// StorageKind selects how a component storage maps entities to dense slots.
type StorageKind uint8

const (
	// DenseIndex keeps a slice indexed by entity slot. Best for components most
	// entities carry.
	DenseIndex StorageKind = iota
	// HashIndex keeps a hash map keyed by entity slot. Best for rare components
	// on a large entity population.
	HashIndex
)

func (k StorageKind) String() string {
	switch k {
	case DenseIndex:
		return "dense"
	case HashIndex:
		return "hash"
	default:
		return fmt.Sprintf("StorageKind(%d)", uint8(k))
	}
}

// StorageKinder can be implemented by a component type to pick its storage
// kind. WithStorageKind at registration takes precedence.
type StorageKinder interface {
	StorageKind() StorageKind
}

const absent = -1

// ComponentStorage is the packed container for one component type: owners and
// values live in parallel dense slices, and a sparse index maps an entity slot
// to its dense position. Attach, Remove and lookups are O(1); Remove swaps the
// last entry into the hole.
//
// The methods on ComponentStorage take no guards. Pointers returned by Get and
// GetMut stay valid until the next Attach or Remove on the same storage.
type ComponentStorage[T any] struct {
	typ    reflect.Type
	kind   StorageKind
	owners []Entity
	values []T

	// DenseIndex: slot -> dense position, absent when unset.
	slots []int32
	// HashIndex: slot -> dense position.
	hashed *intmap.Map[uint32, int32]

	borrow borrowFlag
}

func newComponentStorage[T any](kind StorageKind, capacity int) *ComponentStorage[T] {
	t := reflect.TypeFor[T]()
	s := &ComponentStorage[T]{
		typ:    t,
		kind:   kind,
		owners: make([]Entity, 0, capacity),
		values: make([]T, 0, capacity),
		borrow: newBorrowFlag(ComponentAccess, t),
	}
	if kind == HashIndex {
		s.hashed = intmap.New[uint32, int32](capacity)
	}
	return s
}

func (s *ComponentStorage[T]) indexOf(slot uint32) int {
	if s.kind == HashIndex {
		pos, ok := s.hashed.Get(slot)
		if !ok {
			return absent
		}
		return int(pos)
	}
	if int(slot) >= len(s.slots) {
		return absent
	}
	return int(s.slots[slot])
}

func (s *ComponentStorage[T]) setIndex(slot uint32, pos int) {
	if s.kind == HashIndex {
		s.hashed.Put(slot, int32(pos))
		return
	}
	for int(slot) >= len(s.slots) {
		s.slots = append(s.slots, absent)
	}
	s.slots[slot] = int32(pos)
}

func (s *ComponentStorage[T]) clearIndex(slot uint32) {
	if s.kind == HashIndex {
		s.hashed.Del(slot)
		return
	}
	s.slots[slot] = absent
}

// lookup returns e's dense position. A stale handle sharing a slot with the
// current owner does not match.
func (s *ComponentStorage[T]) lookup(e Entity) int {
	pos := s.indexOf(e.index)
	if pos == absent || s.owners[pos] != e {
		return absent
	}
	return pos
}

// Attach stores v for e, overwriting any value e already has. A row left
// behind by an older handle of the same slot is taken over; a handle older
// than the current owner is ignored.
func (s *ComponentStorage[T]) Attach(e Entity, v T) {
	if pos := s.indexOf(e.index); pos != absent {
		if owner := s.owners[pos]; owner != e && owner.generation >= e.generation {
			return
		}
		s.owners[pos] = e
		s.values[pos] = v
		return
	}
	s.owners = append(s.owners, e)
	s.values = append(s.values, v)
	s.setIndex(e.index, len(s.values)-1)
}

// Get returns e's value, or nil if e has none.
func (s *ComponentStorage[T]) Get(e Entity) *T {
	pos := s.lookup(e)
	if pos == absent {
		return nil
	}
	return &s.values[pos]
}

// GetMut is Get for callers that intend to write through the pointer.
func (s *ComponentStorage[T]) GetMut(e Entity) *T {
	return s.Get(e)
}

// Attached reports whether e has a value in this storage.
func (s *ComponentStorage[T]) Attached(e Entity) bool {
	return s.lookup(e) != absent
}

// Remove deletes e's value. It returns false if e had none.
func (s *ComponentStorage[T]) Remove(e Entity) bool {
	pos := s.lookup(e)
	if pos == absent {
		return false
	}

	last := len(s.values) - 1
	if pos != last {
		moved := s.owners[last]
		s.owners[pos] = moved
		s.values[pos] = s.values[last]
		s.setIndex(moved.index, pos)
	}

	var zero T
	s.values[last] = zero
	s.owners = s.owners[:last]
	s.values = s.values[:last]
	s.clearIndex(e.index)
	return true
}

// Clear drops every value.
func (s *ComponentStorage[T]) Clear() {
	clear(s.values)
	s.values = s.values[:0]
	s.owners = s.owners[:0]
	if s.kind == HashIndex {
		s.hashed.Clear()
	} else {
		s.slots = s.slots[:0]
	}
}

// Len returns the number of entities with a value in this storage.
func (s *ComponentStorage[T]) Len() int {
	return len(s.values)
}

// Kind returns the storage kind chosen at registration.
func (s *ComponentStorage[T]) Kind() StorageKind {
	return s.kind
}

// Entities returns the dense owner slice. Callers must not modify it.
func (s *ComponentStorage[T]) Entities() []Entity {
	return s.owners
}

// Iter yields every (entity, value) pair in dense order; exactly Len pairs.
func (s *ComponentStorage[T]) Iter() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range s.values {
			if !yield(s.owners[i], &s.values[i]) {
				return
			}
		}
	}
}

func (s *ComponentStorage[T]) componentType() reflect.Type { return s.typ }
func (s *ComponentStorage[T]) storageKind() StorageKind    { return s.kind }
func (s *ComponentStorage[T]) guard() *borrowFlag          { return &s.borrow }
func (s *ComponentStorage[T]) len() int                    { return len(s.values) }
func (s *ComponentStorage[T]) attached(e Entity) bool      { return s.Attached(e) }
func (s *ComponentStorage[T]) remove(e Entity) bool        { return s.Remove(e) }
func (s *ComponentStorage[T]) clear()                      { s.Clear() }

func (s *ComponentStorage[T]) pointer(e Entity) unsafe.Pointer {
	pos := s.lookup(e)
	if pos == absent {
		return nil
	}
	return unsafe.Pointer(&s.values[pos])
}

func (s *ComponentStorage[T]) denseAt(i int) (Entity, unsafe.Pointer) {
	return s.owners[i], unsafe.Pointer(&s.values[i])
}

func (s *ComponentStorage[T]) valueOf(e Entity) any {
	if v := s.Get(e); v != nil {
		return v
	}
	return nil
}
