/*
Package ecs provides the entity-component runtime core for a real-time
application loop.

Entities are small integer identifiers issued from a bounded pool. Components
are plain data values stored in one densely-packed array per component type.
Systems declare a required component signature and the runtime keeps each
system's set of matching entities synchronized after every structural change.

Core Concepts:

  - Entity: a recycled integer identifier that represents a logical object.
  - Signature: a fixed-width bitset describing which component types an
    entity currently holds.
  - Packed store: contiguous per-type component storage kept dense via
    swap-and-pop removal, with O(1) entity-to-slot translation.
  - System: a behavior with a required signature and a maintained set of
    matching entities.

Basic Usage:

	world := ecs.NewCoordinator(10_000)

	ecs.RegisterComponent[Position](world)
	ecs.RegisterComponent[Velocity](world)

	physics := ecs.RegisterSystem[PhysicsSystem](world)
	posID, _ := ecs.ComponentTypeFor[Position](world)
	velID, _ := ecs.ComponentTypeFor[Velocity](world)
	ecs.SetSystemSignature[PhysicsSystem](world, ecs.NewSignature(posID, velID))

	player, _ := world.CreateEntity()
	ecs.AddComponent(world, player, Position{X: 0, Y: 0})
	ecs.AddComponent(world, player, Velocity{DX: 1, DY: 1})

	_ = physics // iterates its Matched entity set each frame

The core is single-threaded by design: all operations are synchronous
bookkeeping steps and no internal locking is performed. Structural mutations
must not be interleaved with an in-progress iteration; defer them through a
Commands buffer instead (the Scheduler does this automatically at the end of
each frame).
*/
package ecs
