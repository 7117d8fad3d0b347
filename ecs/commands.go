package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Commands buffers structural changes so they can be applied once no view is
// iterating. Systems receive one through a *Commands shape field and the
// schedule flushes it after each system.
//
// Flush applies destroys first, then removes, attaches, creates and finally
// deferred functions. Removes and attaches aimed at an entity destroyed in the
// same flush are dropped.
type Commands struct {
	creates  [][]ComponentValue
	destroys []Entity
	attaches []attachCommand
	removes  []removeCommand
	defers   []func(*World)

	destroyed *intmap.Map[uint64, struct{}]
}

type attachCommand struct {
	entity Entity
	values []ComponentValue
}

type removeCommand struct {
	entity Entity
	types  []reflect.Type
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{destroyed: intmap.New[uint64, struct{}](16)}
}

// Create queues a new entity carrying values.
func (c *Commands) Create(values ...ComponentValue) {
	c.creates = append(c.creates, values)
}

// Destroy queues the destruction of e.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Attach queues values to be attached to e.
func (c *Commands) Attach(e Entity, values ...ComponentValue) {
	c.attaches = append(c.attaches, attachCommand{entity: e, values: values})
}

// Remove queues the removal of the given component types from e.
func (c *Commands) Remove(e Entity, types ...reflect.Type) {
	c.removes = append(c.removes, removeCommand{entity: e, types: types})
}

// Defer queues fn to run against the world at flush time.
func (c *Commands) Defer(fn func(*World)) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.destroys) + len(c.attaches) + len(c.removes) + len(c.defers)
}

// Flush applies every queued command to w and resets the buffer. Commands
// queued by deferred functions during the flush run in the next flush.
func (c *Commands) Flush(w *World) {
	if c.Len() == 0 {
		return
	}

	creates, destroys, attaches, removes, defers := c.creates, c.destroys, c.attaches, c.removes, c.defers
	c.creates, c.destroys, c.attaches, c.removes, c.defers = nil, nil, nil, nil, nil
	c.destroyed.Clear()

	for _, e := range destroys {
		w.Destroy(e)
		c.destroyed.Put(e.bits(), struct{}{})
	}

	for _, cmd := range removes {
		if _, gone := c.destroyed.Get(cmd.entity.bits()); gone {
			continue
		}
		w.RemoveAll(cmd.entity, cmd.types...)
	}

	for _, cmd := range attaches {
		if _, gone := c.destroyed.Get(cmd.entity.bits()); gone {
			continue
		}
		w.AttachAll(cmd.entity, cmd.values...)
	}

	for _, values := range creates {
		w.CreateWith(values...)
	}

	for _, fn := range defers {
		fn(w)
	}
}
