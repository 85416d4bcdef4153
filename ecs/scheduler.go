package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

// Scheduler executes registered systems in registration order, once per
// frame, and flushes the frame's deferred commands afterwards. Iteration and
// timing live here; entity matching lives in the Coordinator's system
// registry.
type Scheduler struct {
	world       *Coordinator
	systems     []System
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler driving the given coordinator.
func NewScheduler(world *Coordinator) *Scheduler {
	return &Scheduler{
		world: world,
	}
}

// Register adds a system to the run order and registers it with the
// coordinator, wiring any Matched fields.
func (s *Scheduler) Register(system System) {
	s.world.AddSystem(system)
	s.systems = append(s.systems, system)

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemKey(reflect.TypeOf(system)).Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time, then
// applies the deferred command buffer.
func (s *Scheduler) Once(dt float64) error {
	frame := newUpdateFrame(dt, s.world)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}

	return frame.Commands.Flush(s.world)
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled or a frame fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
