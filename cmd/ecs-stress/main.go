package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/lattice/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	// 1. Setup Coordinator and Scheduler. Capacity has headroom over the
	// initial population so the churn system can respawn freely.
	world := ecs.NewCoordinator(*entityCount * 2)
	if err := RegisterStressComponents(world); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}
	scheduler := ecs.NewScheduler(world)
	if err := RegisterStressSystems(world, scheduler); err != nil {
		log.Fatalf("Failed to register systems: %v", err)
	}

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		numComponents := rand.Intn(5) + 1
		if err := SpawnRandomEntity(world, numComponents); err != nil {
			log.Fatalf("Failed to spawn entity: %v", err)
		}
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	worldStats := world.CollectStats()
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     worldStats.ComponentTypeCount,
		Systems:        worldStats.SystemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := scheduler.Once(float64(deltaTime) / float64(time.Second)); err != nil {
				log.Fatalf("Frame failed: %v", err)
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.FinalEntities = world.LiveEntities()
	report.SchedulerStats = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
