package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

type EntityInfo struct {
	ID             ecs.Entity
	ComponentTypes []string
	ComponentCount int
}

type EntityBrowserCache struct {
	entities          []EntityInfo
	lastLiveCount     int
	lastAttachedTotal int
	sortColumn        int
	sortAscending     bool
}

func NewEntityBrowserPanel(maxEntitiesPerPage int) EntityBrowserPanel {
	return EntityBrowserPanel{
		cache: &EntityBrowserCache{
			lastLiveCount: -1,
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserPanel) Render(world *ecs.Coordinator) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(world)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filteredEntities) {
			endIdx = len(filteredEntities)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity != nil && *eb.selectedEntity == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				idCopy := entity.ID
				eb.selectedEntity = &idCopy
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	filteredEntities := eb.getFilteredEntities()

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

func (eb *EntityBrowserPanel) rebuildCacheIfNeeded(world *ecs.Coordinator) {
	stats := world.CollectStats()
	attachedTotal := 0
	for _, comp := range stats.Components {
		attachedTotal += comp.EntityCount
	}

	if eb.cache.lastLiveCount != stats.LiveEntities || eb.cache.lastAttachedTotal != attachedTotal {
		eb.cache.entities = nil
		eb.cache.lastLiveCount = stats.LiveEntities
		eb.cache.lastAttachedTotal = attachedTotal
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(world)
	}
}

func (eb *EntityBrowserPanel) rebuildCache(world *ecs.Coordinator) {
	eb.cache.entities = make([]EntityInfo, 0, 1024)

	for entity := range world.EachEntity() {
		types, err := world.EntityComponentTypes(entity)
		if err != nil {
			continue
		}

		componentTypes := make([]string, len(types))
		for i, t := range types {
			componentTypes[i] = t.String()
		}

		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			ID:             entity,
			ComponentTypes: componentTypes,
			ComponentCount: len(componentTypes),
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowserPanel) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserPanel) getFilteredEntities() []EntityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// GetSelectedEntity returns the entity picked in the table, or nil when no
// row has been clicked yet.
func (eb *EntityBrowserPanel) GetSelectedEntity() *ecs.Entity {
	return eb.selectedEntity
}
