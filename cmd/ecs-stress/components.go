package main

import (
	"math/rand"

	"github.com/plus3/lattice/ecs"
)

// The stress workload mixes hot-loop iteration systems with a churn system
// that destroys and respawns entities through the command buffer, so id
// recycling and signature reconciliation stay under constant pressure.

type Position struct{ X, Y, Z float64 }
type Velocity struct{ X, Y, Z float64 }
type Acceleration struct{ X, Y, Z float64 }
type Rotation struct{ Angle float64 }
type Spin struct{ Rate float64 }
type Health struct{ Current, Max float64 }
type Regen struct{ Rate float64 }
type Lifetime struct{ Remaining float64 }
type Mass struct{ Kg float64 }
type Team struct{ ID uint8 }

// componentMakers build random component values; spawning picks a prefix of
// a shuffled copy so every entity gets a distinct random component mix.
var componentMakers = []func() any{
	func() any { return Position{X: rand.Float64() * 100, Y: rand.Float64() * 100, Z: rand.Float64() * 100} },
	func() any { return Velocity{X: rand.Float64() - 0.5, Y: rand.Float64() - 0.5, Z: rand.Float64() - 0.5} },
	func() any { return Acceleration{X: rand.Float64() - 0.5, Y: rand.Float64() - 0.5} },
	func() any { return Rotation{Angle: rand.Float64() * 360} },
	func() any { return Spin{Rate: rand.Float64() * 90} },
	func() any { return Health{Current: 50 + rand.Float64()*50, Max: 100} },
	func() any { return Regen{Rate: rand.Float64() * 5} },
	func() any { return Lifetime{Remaining: 1 + rand.Float64()*30} },
	func() any { return Mass{Kg: 1 + rand.Float64()*99} },
	func() any { return Team{ID: uint8(rand.Intn(4))} },
}

func RegisterStressComponents(world *ecs.Coordinator) error {
	registrations := []func(*ecs.Coordinator) (ecs.ComponentTypeID, error){
		ecs.RegisterComponent[Position],
		ecs.RegisterComponent[Velocity],
		ecs.RegisterComponent[Acceleration],
		ecs.RegisterComponent[Rotation],
		ecs.RegisterComponent[Spin],
		ecs.RegisterComponent[Health],
		ecs.RegisterComponent[Regen],
		ecs.RegisterComponent[Lifetime],
		ecs.RegisterComponent[Mass],
		ecs.RegisterComponent[Team],
	}
	for _, register := range registrations {
		if _, err := register(world); err != nil {
			return err
		}
	}
	return nil
}

func randomComponents(numComponents int) []any {
	if numComponents > len(componentMakers) {
		numComponents = len(componentMakers)
	}
	order := rand.Perm(len(componentMakers))

	components := make([]any, 0, numComponents)
	for _, idx := range order[:numComponents] {
		components = append(components, componentMakers[idx]())
	}
	return components
}

func SpawnRandomEntity(world *ecs.Coordinator, numComponents int) error {
	e, err := world.CreateEntity()
	if err != nil {
		return err
	}
	for _, component := range randomComponents(numComponents) {
		if err := world.AddComponentValue(e, component); err != nil {
			return err
		}
	}
	return nil
}

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
		pos.X += vel.X * frame.DeltaTime
		pos.Y += vel.Y * frame.DeltaTime
		pos.Z += vel.Z * frame.DeltaTime
	}
}

type accelerationSystem struct {
	Entities ecs.Matched
}

func (s *accelerationSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		vel, err := ecs.GetComponent[Velocity](frame.World, e)
		if err != nil {
			continue
		}
		acc, err := ecs.GetComponent[Acceleration](frame.World, e)
		if err != nil {
			continue
		}
		vel.X += acc.X * frame.DeltaTime
		vel.Y += acc.Y * frame.DeltaTime
		vel.Z += acc.Z * frame.DeltaTime
	}
}

type spinSystem struct {
	Entities ecs.Matched
}

func (s *spinSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		rot, err := ecs.GetComponent[Rotation](frame.World, e)
		if err != nil {
			continue
		}
		spin, err := ecs.GetComponent[Spin](frame.World, e)
		if err != nil {
			continue
		}
		rot.Angle += spin.Rate * frame.DeltaTime
	}
}

type regenSystem struct {
	Entities ecs.Matched
}

func (s *regenSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		hp, err := ecs.GetComponent[Health](frame.World, e)
		if err != nil {
			continue
		}
		regen, err := ecs.GetComponent[Regen](frame.World, e)
		if err != nil {
			continue
		}
		hp.Current += regen.Rate * frame.DeltaTime
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	}
}

// churnSystem expires entities and queues random replacements, keeping the
// population roughly constant while exercising destroy, recycle and create
// through the command buffer.
type churnSystem struct {
	Entities ecs.Matched
}

func (s *churnSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		life, err := ecs.GetComponent[Lifetime](frame.World, e)
		if err != nil {
			continue
		}
		life.Remaining -= frame.DeltaTime
		if life.Remaining <= 0 {
			frame.Commands.Destroy(e)
			frame.Commands.Create(randomComponents(rand.Intn(5) + 1)...)
		}
	}
}

func RegisterStressSystems(world *ecs.Coordinator, scheduler *ecs.Scheduler) error {
	posID, _ := ecs.ComponentTypeFor[Position](world)
	velID, _ := ecs.ComponentTypeFor[Velocity](world)
	accID, _ := ecs.ComponentTypeFor[Acceleration](world)
	rotID, _ := ecs.ComponentTypeFor[Rotation](world)
	spinID, _ := ecs.ComponentTypeFor[Spin](world)
	hpID, _ := ecs.ComponentTypeFor[Health](world)
	regenID, _ := ecs.ComponentTypeFor[Regen](world)
	lifeID, _ := ecs.ComponentTypeFor[Lifetime](world)

	scheduler.Register(ecs.RegisterSystem[movementSystem](world))
	scheduler.Register(ecs.RegisterSystem[accelerationSystem](world))
	scheduler.Register(ecs.RegisterSystem[spinSystem](world))
	scheduler.Register(ecs.RegisterSystem[regenSystem](world))
	scheduler.Register(ecs.RegisterSystem[churnSystem](world))

	signatures := []error{
		ecs.SetSystemSignature[movementSystem](world, ecs.NewSignature(posID, velID)),
		ecs.SetSystemSignature[accelerationSystem](world, ecs.NewSignature(velID, accID)),
		ecs.SetSystemSignature[spinSystem](world, ecs.NewSignature(rotID, spinID)),
		ecs.SetSystemSignature[regenSystem](world, ecs.NewSignature(hpID, regenID)),
		ecs.SetSystemSignature[churnSystem](world, ecs.NewSignature(lifeID)),
	}
	for _, err := range signatures {
		if err != nil {
			return err
		}
	}
	return nil
}
