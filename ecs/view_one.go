package ecs

import "iter"

// ViewOne iterates the dense arrays of C's storage directly, yielding every
// (entity, value) pair under a shared guard. No shape is compiled. An
// unregistered C yields nothing.
func ViewOne[C any](w *World) iter.Seq2[Entity, *C] {
	return viewOne[C](w, false)
}

// ViewOneMut is ViewOne under an exclusive guard.
func ViewOneMut[C any](w *World) iter.Seq2[Entity, *C] {
	return viewOne[C](w, true)
}

func viewOne[C any](w *World, exclusive bool) iter.Seq2[Entity, *C] {
	return func(yield func(Entity, *C) bool) {
		s, ok := ComponentStorageOf[C](w)
		if !ok {
			return
		}
		defer s.borrow.hold(exclusive)()
		for i := range s.values {
			if !yield(s.owners[i], &s.values[i]) {
				return
			}
		}
	}
}
