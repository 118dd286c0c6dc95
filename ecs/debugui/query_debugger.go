package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/slotecs/ecs"
)

const maxListedEntities = 100

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponents: make(map[ecs.ComponentKind]bool),
		selectedTags:       make(map[ecs.TagKind]bool),
	}
}

func (qd *QueryDebuggerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Clear All") {
		clear(qd.selectedComponents)
		clear(qd.selectedTags)
	}

	components := storage.Components()
	imgui.Text("Components:")
	imgui.Separator()
	for k := range components.Len() {
		kind := ecs.ComponentKind(k)
		selected := qd.selectedComponents[kind]
		if imgui.Checkbox(components.Name(kind), &selected) {
			qd.selectedComponents[kind] = selected
		}
	}

	tags := storage.Tags()
	imgui.Text("Tags:")
	imgui.Separator()
	for k := range tags.Len() {
		kind := ecs.TagKind(k)
		selected := qd.selectedTags[kind]
		if imgui.Checkbox(fmt.Sprintf("%s##tag", tags.Name(kind)), &selected) {
			qd.selectedTags[kind] = selected
		}
	}

	imgui.Separator()

	componentKinds := selectedKinds(qd.selectedComponents)
	tagKinds := selectedKinds(qd.selectedTags)
	if len(componentKinds) == 0 && len(tagKinds) == 0 {
		imgui.Text("No kinds selected")
		imgui.End()
		return
	}

	var matches []ecs.Entity
	switch {
	case len(tagKinds) == 0:
		matches = storage.Query(componentKinds...)
	case len(componentKinds) == 0:
		matches = storage.QueryTags(tagKinds...)
	default:
		tagged := storage.QueryTags(tagKinds...)
		for _, e := range storage.Query(componentKinds...) {
			if _, found := slices.BinarySearch(tagged, e); found {
				matches = append(matches, e)
			}
		}
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))
	imgui.Text(fmt.Sprintf("Scanned: 0..%d", storage.HighWaterMark()))

	if imgui.TreeNodeStr("Entities") {
		for i, e := range matches {
			if i == maxListedEntities {
				imgui.Text(fmt.Sprintf("... and %d more", len(matches)-maxListedEntities))
				break
			}
			imgui.BulletText(fmt.Sprintf("%d", e))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func selectedKinds[K ~int](selected map[K]bool) []K {
	kinds := make([]K, 0, len(selected))
	for k, on := range selected {
		if on {
			kinds = append(kinds, k)
		}
	}
	slices.Sort(kinds)
	return kinds
}
