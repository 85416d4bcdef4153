package ecs_test

import "github.com/plus3/lattice/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

type AI struct {
	State int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

const testCapacity = 64

func newTestCoordinator() *ecs.Coordinator {
	world := ecs.NewCoordinator(testCapacity)
	ecs.RegisterComponent[Position](world)
	ecs.RegisterComponent[Velocity](world)
	ecs.RegisterComponent[Name](world)
	ecs.RegisterComponent[Health](world)
	ecs.RegisterComponent[PlayerController](world)
	ecs.RegisterComponent[AI](world)
	ecs.RegisterComponent[Score](world)
	ecs.RegisterComponent[Tag](world)
	return world
}
