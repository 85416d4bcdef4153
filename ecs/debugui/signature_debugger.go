package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

type SignatureDebuggerCache struct {
	componentTypes []string
	lastTypeCount  int
}

// NewSignatureDebuggerPanel builds the "which entities would a system with
// this signature match" panel. Tick component types and the panel reports
// every live entity carrying all of them.
func NewSignatureDebuggerPanel() SignatureDebuggerPanel {
	return SignatureDebuggerPanel{
		selectedTypeNames: make(map[string]bool),
		cache: &SignatureDebuggerCache{
			lastTypeCount: -1,
		},
	}
}

func (sd *SignatureDebuggerPanel) Render(world *ecs.Coordinator) {
	if !imgui.BeginV("Signature Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sd.rebuildCacheIfNeeded(world)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		sd.selectedTypeNames = make(map[string]bool)
	}

	for _, typeName := range sd.cache.componentTypes {
		selected := sd.selectedTypeNames[typeName]
		if imgui.Checkbox(typeName, &selected) {
			if selected {
				sd.selectedTypeNames[typeName] = true
			} else {
				delete(sd.selectedTypeNames, typeName)
			}
		}
	}

	imgui.Separator()

	if len(sd.selectedTypeNames) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := sd.findMatchingEntities(world)

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entity Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SigMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for _, info := range matching {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", info.ID))

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%v", info.ComponentTypes))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (sd *SignatureDebuggerPanel) rebuildCacheIfNeeded(world *ecs.Coordinator) {
	currentTypeCount := world.CollectStats().ComponentTypeCount
	if sd.cache.lastTypeCount != currentTypeCount {
		sd.cache.componentTypes = nil
		sd.cache.lastTypeCount = currentTypeCount
	}

	if sd.cache.componentTypes == nil {
		sd.rebuildCache(world)
	}
}

func (sd *SignatureDebuggerPanel) rebuildCache(world *ecs.Coordinator) {
	stats := world.CollectStats()

	sd.cache.componentTypes = make([]string, 0, len(stats.Components))
	for _, comp := range stats.Components {
		sd.cache.componentTypes = append(sd.cache.componentTypes, comp.Name)
	}

	sort.Strings(sd.cache.componentTypes)
}

func (sd *SignatureDebuggerPanel) findMatchingEntities(world *ecs.Coordinator) []EntityInfo {
	matching := make([]EntityInfo, 0)

	for entity := range world.EachEntity() {
		types, err := world.EntityComponentTypes(entity)
		if err != nil {
			continue
		}

		names := make(map[string]bool, len(types))
		typeNames := make([]string, len(types))
		for i, t := range types {
			names[t.String()] = true
			typeNames[i] = t.String()
		}

		hasAll := true
		for required := range sd.selectedTypeNames {
			if !names[required] {
				hasAll = false
				break
			}
		}
		if !hasAll {
			continue
		}

		matching = append(matching, EntityInfo{
			ID:             entity,
			ComponentTypes: typeNames,
			ComponentCount: len(typeNames),
		})
	}

	return matching
}
