// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem collects all ImguiItem components and defers their render
// functions to the end of the frame. It also refreshes InputState with the
// current capture state; read it through the registered system instance.
type ImguiSystem struct {
	Items      ecs.Matched
	InputState ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for e := range i.Items.Iter() {
		item, err := ecs.GetComponent[ImguiItem](frame.World, e)
		if err != nil {
			continue
		}
		frame.Commands.Defer(item.Render)
	}
}

// AttachImguiSystem registers the ImguiSystem with the world and the
// scheduler and declares its signature over ImguiItem. The returned instance
// exposes the live InputState.
func AttachImguiSystem(world *ecs.Coordinator, scheduler *ecs.Scheduler) (*ImguiSystem, error) {
	if err := RegisterDebugUIComponents(world); err != nil {
		return nil, err
	}
	itemID, err := ecs.ComponentTypeFor[ImguiItem](world)
	if err != nil {
		return nil, err
	}

	sys := ecs.RegisterSystem[ImguiSystem](world)
	if err := ecs.SetSystemSignature[ImguiSystem](world, ecs.NewSignature(itemID)); err != nil {
		return nil, err
	}
	scheduler.Register(sys)
	return sys, nil
}

// signatureBits flattens a signature into a raw bit pattern for display.
func signatureBits(sig ecs.Signature) uint64 {
	var bits uint64
	for i := 0; i < ecs.MaxComponentTypes; i++ {
		if sig.ContainsAll(ecs.NewSignature(ecs.ComponentTypeID(i))) {
			bits |= 1 << i
		}
	}
	return bits
}
