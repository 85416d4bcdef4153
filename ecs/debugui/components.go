package debugui

import (
	"github.com/plus3/lattice/ecs"
)

type EntityBrowserPanel struct {
	cache              *EntityBrowserCache
	selectedEntity     *ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorPanel struct {
	selectedEntity *ecs.Entity
}

type SystemViewerPanel struct {
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type SignatureDebuggerPanel struct {
	selectedTypeNames map[string]bool
	cache             *SignatureDebuggerCache
}
