package ecs_test

import (
	"fmt"

	"github.com/plus3/lattice/ecs"
)

type Hitpoints struct {
	Current, Max int
}

// HealingSystem regenerates every entity that has Hitpoints.
type HealingSystem struct {
	Entities  ecs.Matched
	RegenRate float64
}

func (s *HealingSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Entities.Iter() {
		hp, err := ecs.GetComponent[Hitpoints](frame.World, e)
		if err != nil {
			continue
		}
		hp.Current += int(s.RegenRate * frame.DeltaTime)
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	}
}

func ExampleSetSystemSignature() {
	world := ecs.NewCoordinator(100)
	hpID, _ := ecs.RegisterComponent[Hitpoints](world)

	world.AddSystem(&HealingSystem{RegenRate: 10})
	ecs.SetSystemSignature[HealingSystem](world, ecs.NewSignature(hpID))

	wounded, _ := world.CreateEntity()
	ecs.AddComponent(world, wounded, Hitpoints{Current: 50, Max: 100})

	bystander, _ := world.CreateEntity()

	matched, _ := ecs.SystemEntities[HealingSystem](world)
	fmt.Println("matched entities:", len(matched))
	fmt.Println("wounded matched:", matched[0] == wounded)
	fmt.Println("bystander alive:", world.Alive(bystander))

	// Output:
	// matched entities: 1
	// wounded matched: true
	// bystander alive: true
}

func ExampleScheduler() {
	world := ecs.NewCoordinator(100)
	hpID, _ := ecs.RegisterComponent[Hitpoints](world)

	healing := ecs.RegisterSystem[HealingSystem](world)
	healing.RegenRate = 10
	ecs.SetSystemSignature[HealingSystem](world, ecs.NewSignature(hpID))

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(healing)

	wounded, _ := world.CreateEntity()
	ecs.AddComponent(world, wounded, Hitpoints{Current: 50, Max: 100})

	// Two simulated frames of half a second each.
	scheduler.Once(0.5)
	scheduler.Once(0.5)

	hp, _ := ecs.GetComponent[Hitpoints](world, wounded)
	fmt.Printf("hitpoints: %d/%d\n", hp.Current, hp.Max)

	// Output:
	// hitpoints: 60/100
}
