package ecs

// UpdateFrame carries per-frame context into each system: the elapsed time,
// the coordinator for component access, and the command buffer for deferring
// structural mutations until the frame ends.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *Coordinator
}

func newUpdateFrame(dt float64, world *Coordinator) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
