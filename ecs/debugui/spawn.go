package debugui

import "github.com/plus3/lattice/ecs"

// RegisterDebugUIComponents registers the overlay's component types with the
// world. Registration is idempotent, so calling it alongside application
// registration is safe.
func RegisterDebugUIComponents(world *ecs.Coordinator) error {
	if _, err := ecs.RegisterComponent[ImguiItem](world); err != nil {
		return err
	}
	return nil
}

// SpawnDebugUI creates one entity per debug panel, each carrying an
// ImguiItem closure that renders the panel against the world. The entity
// browser's selection feeds the component inspector.
func SpawnDebugUI(world *ecs.Coordinator) error {
	if err := RegisterDebugUIComponents(world); err != nil {
		return err
	}

	browser := NewEntityBrowserPanel(100)
	inspector := NewComponentInspectorPanel()
	viewer := NewSystemViewerPanel()
	perf := NewPerformanceStatsPanel(120)
	sigDebug := NewSignatureDebuggerPanel()
	timer := NewFrameTimer()

	panels := []func(){
		func() { browser.Render(world) },
		func() { inspector.Render(world, browser.GetSelectedEntity()) },
		func() { viewer.Render(world) },
		func() { perf.Render(world, timer.GetDeltaTime()) },
		func() { sigDebug.Render(world) },
	}

	for _, render := range panels {
		e, err := world.CreateEntity()
		if err != nil {
			return err
		}
		if err := ecs.AddComponent(world, e, ImguiItem{Render: render}); err != nil {
			return err
		}
	}
	return nil
}
