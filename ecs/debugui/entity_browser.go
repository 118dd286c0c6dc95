package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/slotecs/ecs"
)

type EntityInfo struct {
	ID             ecs.Entity
	Components     []string
	Tags           []string
	ComponentCount int
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		selectedEntity:     ecs.NoEntity,
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuild(storage)
	if !storage.IsValid(eb.selectedEntity) {
		eb.selectedEntity = ecs.NoEntity
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := eb.filtered()
	if eb.currentPage*eb.maxEntitiesPerPage >= len(filtered) {
		eb.currentPage = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Tags")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		start := eb.currentPage * eb.maxEntitiesPerPage
		end := min(start+eb.maxEntitiesPerPage, len(filtered))

		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), eb.selectedEntity == entity.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Components, ", "))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.Tags, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d / %d entities", len(filtered), storage.Capacity()))
	}

	imgui.End()
}

// rebuild snapshots every live entity. Storages are small and bounded so
// this runs every frame.
func (eb *EntityBrowserComponent) rebuild(storage *ecs.Storage) {
	eb.entities = eb.entities[:0]

	components := storage.Components()
	tags := storage.Tags()
	for e := range storage.Entities() {
		info := EntityInfo{ID: e}
		for _, k := range storage.ComponentKinds(e) {
			info.Components = append(info.Components, components.Name(k))
		}
		for _, k := range storage.TagKinds(e) {
			info.Tags = append(info.Tags, tags.Name(k))
		}
		info.ComponentCount = len(info.Components)
		eb.entities = append(eb.entities, info)
	}

	eb.sortEntities()
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = strings.Join(a.Components, ",") < strings.Join(b.Components, ",")
		case 2:
			less = strings.Join(a.Tags, ",") < strings.Join(b.Tags, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserComponent) filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filter := strings.ToLower(eb.filterText)
	filtered := make([]EntityInfo, 0, len(eb.entities))
	for _, entity := range eb.entities {
		if strings.Contains(fmt.Sprintf("%d", entity.ID), filter) ||
			strings.Contains(strings.ToLower(strings.Join(entity.Components, " ")), filter) ||
			strings.Contains(strings.ToLower(strings.Join(entity.Tags, " ")), filter) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

// GetSelectedEntity returns the highlighted entity, or ecs.NoEntity.
func (eb *EntityBrowserComponent) GetSelectedEntity() ecs.Entity {
	return eb.selectedEntity
}
