package debugui

import (
	"github.com/plus3/slotecs/ecs"
)

type EntityBrowserComponent struct {
	entities           []EntityInfo
	selectedEntity     ecs.Entity
	filterText         string
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedComponents map[ecs.ComponentKind]bool
	selectedTags       map[ecs.TagKind]bool
}
