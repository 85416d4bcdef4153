package ecs_test

import (
	"testing"

	"github.com/plus3/lattice/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// movementSystem requires Position and Velocity.
type movementSystem struct {
	Entities ecs.Matched
}

func (s *movementSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		pos, err := ecs.GetComponent[Position](frame.World, e)
		if err != nil {
			continue
		}
		vel, err := ecs.GetComponent[Velocity](frame.World, e)
		if err != nil {
			continue
		}
		pos.X += vel.DX * float32(frame.DeltaTime)
		pos.Y += vel.DY * float32(frame.DeltaTime)
	}
}

// driftSystem requires only Velocity.
type driftSystem struct {
	Entities ecs.Matched
}

func (s *driftSystem) Execute(frame *ecs.UpdateFrame) {}

func registerMatchingSystems(t *testing.T, world *ecs.Coordinator) (*movementSystem, *driftSystem) {
	t.Helper()
	posID, err := ecs.ComponentTypeFor[Position](world)
	require.NoError(t, err)
	velID, err := ecs.ComponentTypeFor[Velocity](world)
	require.NoError(t, err)

	movement := ecs.RegisterSystem[movementSystem](world)
	require.NoError(t, ecs.SetSystemSignature[movementSystem](world, ecs.NewSignature(posID, velID)))

	drift := ecs.RegisterSystem[driftSystem](world)
	require.NoError(t, ecs.SetSystemSignature[driftSystem](world, ecs.NewSignature(velID)))

	return movement, drift
}

func TestSystemMatching(t *testing.T) {
	world := newTestCoordinator()
	movement, drift := registerMatchingSystems(t, world)

	e1, err := world.CreateEntity()
	require.NoError(t, err)

	// Position alone matches neither the {Velocity} nor the
	// {Position, Velocity} system.
	require.NoError(t, ecs.AddComponent(world, e1, Position{}))
	assert.False(t, drift.Entities.Contains(e1))
	assert.False(t, movement.Entities.Contains(e1))

	// Adding Velocity completes both required sets.
	require.NoError(t, ecs.AddComponent(world, e1, Velocity{DX: 1, DY: 1}))
	assert.True(t, drift.Entities.Contains(e1))
	assert.True(t, movement.Entities.Contains(e1))

	// Removing Position drops the entity from the {Position, Velocity}
	// system but keeps it in the {Velocity}-only system.
	require.NoError(t, ecs.RemoveComponent[Position](world, e1))
	assert.True(t, drift.Entities.Contains(e1))
	assert.False(t, movement.Entities.Contains(e1))

	require.NoError(t, world.DestroyEntity(e1))
	assert.Equal(t, 0, drift.Entities.Len())
	assert.Equal(t, 0, movement.Entities.Len())
}

func TestSystemMatchingIsSupersetBased(t *testing.T) {
	world := newTestCoordinator()
	_, drift := registerMatchingSystems(t, world)

	e, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, e, Velocity{}))
	require.NoError(t, ecs.AddComponent(world, e, Health{}))
	require.NoError(t, ecs.AddComponent(world, e, Name{}))

	// Extra components never disqualify an entity.
	assert.True(t, drift.Entities.Contains(e))
}

func TestSetSystemSignatureReconcilesExistingEntities(t *testing.T) {
	world := newTestCoordinator()

	matching, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, matching, Velocity{}))
	other, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, other, Position{}))

	// Signature declared after the entities already exist.
	drift := ecs.RegisterSystem[driftSystem](world)
	velID, _ := ecs.ComponentTypeFor[Velocity](world)
	require.NoError(t, ecs.SetSystemSignature[driftSystem](world, ecs.NewSignature(velID)))

	assert.True(t, drift.Entities.Contains(matching))
	assert.False(t, drift.Entities.Contains(other))
}

func TestSetSystemSignatureConflicts(t *testing.T) {
	world := newTestCoordinator()
	posID, _ := ecs.ComponentTypeFor[Position](world)
	velID, _ := ecs.ComponentTypeFor[Velocity](world)

	ecs.RegisterSystem[driftSystem](world)
	require.NoError(t, ecs.SetSystemSignature[driftSystem](world, ecs.NewSignature(velID)))

	// Same signature again is harmless.
	assert.NoError(t, ecs.SetSystemSignature[driftSystem](world, ecs.NewSignature(velID)))

	// A different signature is a conflict.
	err := ecs.SetSystemSignature[driftSystem](world, ecs.NewSignature(posID))
	var conflict ecs.ConflictingSystemError
	assert.ErrorAs(t, err, &conflict)
}

func TestUnregisteredSystem(t *testing.T) {
	world := newTestCoordinator()

	err := ecs.SetSystemSignature[movementSystem](world, ecs.NewSignature())
	var unreg ecs.UnregisteredSystemError
	assert.ErrorAs(t, err, &unreg)

	_, err = ecs.SystemEntities[movementSystem](world)
	assert.ErrorAs(t, err, &unreg)
}

func TestRegisterSystemIsConstructOrFetch(t *testing.T) {
	world := newTestCoordinator()

	first := ecs.RegisterSystem[driftSystem](world)
	second := ecs.RegisterSystem[driftSystem](world)
	assert.Same(t, first, second)
}

func TestAddSystemInstance(t *testing.T) {
	world := newTestCoordinator()

	// A caller-constructed instance gets its Matched field wired too.
	movement := &movementSystem{}
	world.AddSystem(movement)

	posID, _ := ecs.ComponentTypeFor[Position](world)
	require.NoError(t, ecs.SetSystemSignature[movementSystem](world, ecs.NewSignature(posID)))

	e, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, e, Position{}))
	assert.True(t, movement.Entities.Contains(e))

	// A second instance of the same type is ignored.
	duplicate := &movementSystem{}
	world.AddSystem(duplicate)
	assert.False(t, duplicate.Entities.Contains(e))

	entities, err := ecs.SystemEntities[movementSystem](world)
	require.NoError(t, err)
	assert.Equal(t, []ecs.Entity{e}, entities)
}

func TestSystemExecuteMutatesComponents(t *testing.T) {
	world := newTestCoordinator()
	movement, _ := registerMatchingSystems(t, world)

	e, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, e, Position{X: 0, Y: 0}))
	require.NoError(t, ecs.AddComponent(world, e, Velocity{DX: 2, DY: 4}))

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(movement)
	require.NoError(t, scheduler.Once(0.5))

	pos, err := ecs.GetComponent[Position](world, e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)
}
