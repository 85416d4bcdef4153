package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/lattice/ecs"
	"github.com/plus3/lattice/ecs/debugui"
	debugui_ebiten "github.com/plus3/lattice/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	world     *ecs.Coordinator
	scheduler *ecs.Scheduler
	backend   debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.backend.BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	if err := g.scheduler.Once(1.0 / 60.0); err != nil {
		return err
	}

	// End ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// Set up the world and scheduler
	world := ecs.NewCoordinator(10000)
	scheduler := ecs.NewScheduler(world)

	if _, err := debugui.AttachImguiSystem(world, scheduler); err != nil {
		panic(err)
	}

	// Spawn an entity with an ImGui render function
	e, _ := world.CreateEntity()
	ecs.AddComponent(world, e, debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the world!")
			imgui.End()
		},
	})

	// Spawn the built-in debug panels
	if err := debugui.SpawnDebugUI(world); err != nil {
		panic(err)
	}

	// Create game instance
	game := &Game{
		world:     world,
		scheduler: scheduler,
		backend:   debugui_ebiten.ImguiBackend{EbitenBackend: backend},
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
