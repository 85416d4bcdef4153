package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

func NewPerformanceStatsPanel(historyFrames int) PerformanceStatsPanel {
	return PerformanceStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStatsPanel) Render(world *ecs.Coordinator, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := world.CollectStats()

	imgui.Text(fmt.Sprintf("Live Entities: %d / %d", stats.LiveEntities, stats.Capacity))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Component Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("CompStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, comp := range stats.Components {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(comp.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", comp.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", comp.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Details") {
		for _, sys := range stats.Systems {
			imgui.BulletText(fmt.Sprintf("%s: %d entities", sys.Name, sys.EntityCount))
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
