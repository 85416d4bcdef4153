package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

func NewSystemViewerPanel() SystemViewerPanel {
	return SystemViewerPanel{
		sortColumn:    2,
		sortAscending: false,
	}
}

func (sv *SystemViewerPanel) Render(world *ecs.Coordinator) {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	systems := world.CollectStats().Systems
	sv.sortSystems(systems)

	maxEntityCount := 0
	for _, sys := range systems {
		if sys.EntityCount > maxEntityCount {
			maxEntityCount = sys.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Matched Entities")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.sortColumn = int(spec.ColumnIndex())
			sv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortSystems(systems)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, sys := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			if sys.SignatureSet {
				imgui.Text("declared")
			} else {
				imgui.Text("not declared")
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(sys.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (sv *SystemViewerPanel) sortSystems(systems []ecs.SystemMatchStats) {
	sort.Slice(systems, func(i, j int) bool {
		a, b := systems[i], systems[j]
		var less bool

		switch sv.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = !a.SignatureSet && b.SignatureSet
		case 2:
			less = a.EntityCount < b.EntityCount
		default:
			less = a.Name < b.Name
		}

		if !sv.sortAscending {
			return !less
		}
		return less
	})
}
