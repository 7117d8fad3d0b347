package ecs_test

import "github.com/plus3/sparsecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Mass float32

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Frozen struct{}

type Score int32

// Marker picks the hash-indexed storage.
type Marker struct {
	ID int
}

func (Marker) StorageKind() ecs.StorageKind { return ecs.HashIndex }

// Gravity is a resource.
type Gravity struct {
	G float32
}

type Counter struct {
	N int
}

func newTestWorld() *ecs.World {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)
	ecs.RegisterComponent[Mass](w)
	ecs.RegisterComponent[Name](w)
	ecs.RegisterComponent[Health](w)
	ecs.RegisterComponent[Frozen](w)
	ecs.RegisterComponent[Score](w)
	ecs.RegisterComponent[Marker](w)
	return w
}
