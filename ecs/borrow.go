package ecs

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// BorrowError is raised when a guard cannot be acquired because a conflicting
// borrow of the same storage, resource, or entity registry is outstanding.
// Guards never block, so a conflict always surfaces as a panic carrying this error.
type BorrowError struct {
	Kind      AccessKind
	Type      reflect.Type
	Exclusive bool
	// Held is the number of outstanding shared borrows, or -1 when an exclusive
	// borrow is outstanding.
	Held int32
}

func (e *BorrowError) Error() string {
	want := "shared"
	if e.Exclusive {
		want = "exclusive"
	}
	held := "exclusively"
	if e.Held > 0 {
		held = fmt.Sprintf("shared (%d outstanding)", e.Held)
	}
	if e.Type == nil {
		return fmt.Sprintf("ecs: cannot take %s borrow of %s: already borrowed %s", want, e.Kind, held)
	}
	return fmt.Sprintf("ecs: cannot take %s borrow of %s %s: already borrowed %s", want, e.Kind, e.Type, held)
}

// borrowFlag is a non-blocking shared/exclusive guard.
// state > 0 counts shared borrows, -1 marks an exclusive borrow.
type borrowFlag struct {
	state atomic.Int32
	kind  AccessKind
	typ   reflect.Type
}

func newBorrowFlag(kind AccessKind, typ reflect.Type) borrowFlag {
	return borrowFlag{kind: kind, typ: typ}
}

func (b *borrowFlag) fail(exclusive bool, held int32) {
	panic(&BorrowError{Kind: b.kind, Type: b.typ, Exclusive: exclusive, Held: held})
}

func (b *borrowFlag) acquireShared() {
	for {
		s := b.state.Load()
		if s < 0 {
			b.fail(false, s)
		}
		if b.state.CompareAndSwap(s, s+1) {
			return
		}
	}
}

func (b *borrowFlag) acquireExclusive() {
	if !b.state.CompareAndSwap(0, -1) {
		b.fail(true, b.state.Load())
	}
}

func (b *borrowFlag) acquire(exclusive bool) {
	if exclusive {
		b.acquireExclusive()
	} else {
		b.acquireShared()
	}
}

func (b *borrowFlag) release(exclusive bool) {
	if exclusive {
		b.state.Store(0)
	} else {
		b.state.Add(-1)
	}
}

// hold acquires the guard and returns its release function, for use with defer.
func (b *borrowFlag) hold(exclusive bool) func() {
	b.acquire(exclusive)
	return func() { b.release(exclusive) }
}

// check verifies the guard could be acquired right now without keeping it.
func (b *borrowFlag) check(exclusive bool) {
	b.acquire(exclusive)
	b.release(exclusive)
}

func (b *borrowFlag) borrowed() bool {
	return b.state.Load() != 0
}

// guardSet holds a batch of acquired guards and releases them together.
type guardSet struct {
	held []heldGuard
}

type heldGuard struct {
	flag      *borrowFlag
	exclusive bool
}

// acquire takes every guard in order. If one of them conflicts, the guards
// taken so far are released before the BorrowError propagates.
func (g *guardSet) acquire(flags []*borrowFlag, exclusive []bool) {
	ok := false
	defer func() {
		if !ok {
			g.releaseAll()
		}
	}()
	for i, f := range flags {
		f.acquire(exclusive[i])
		g.held = append(g.held, heldGuard{flag: f, exclusive: exclusive[i]})
	}
	ok = true
}

func (g *guardSet) push(f *borrowFlag, exclusive bool) {
	f.acquire(exclusive)
	g.held = append(g.held, heldGuard{flag: f, exclusive: exclusive})
}

func (g *guardSet) releaseAll() {
	for i := len(g.held) - 1; i >= 0; i-- {
		g.held[i].flag.release(g.held[i].exclusive)
	}
	g.held = g.held[:0]
}
