package ecs

import (
	"reflect"
	"unsafe"
)

// iComponentStorage is the type-erased face of a ComponentStorage[T]. The
// registry only ever stores a *ComponentStorage[T] under reflect.TypeFor[T](),
// so typed access never needs a checked downcast.
type iComponentStorage interface {
	componentType() reflect.Type
	storageKind() StorageKind
	guard() *borrowFlag

	len() int
	attached(e Entity) bool
	remove(e Entity) bool
	clear()

	// pointer returns the address of e's value, or nil if e has none.
	pointer(e Entity) unsafe.Pointer
	// denseAt returns the owner and value address at dense position i.
	denseAt(i int) (Entity, unsafe.Pointer)
	// valueOf returns e's value boxed as *T, or nil.
	valueOf(e Entity) any
}
