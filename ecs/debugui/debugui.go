// Package debugui provides Dear ImGui panels for inspecting a Storage.
// The panels are themselves components: register them alongside the
// application's types, spawn them once, then call Render every frame between
// the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/slotecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState reports whether Dear ImGui is consuming mouse or keyboard
// input this frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the input capture flags from the active context.
func CurrentInputState() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// RegisterDebugUIComponents adds the panel component types to a registry.
// Call it before the registry is handed to ecs.NewStorage.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[EntityBrowserComponent](registry)
	ecs.RegisterComponent[ComponentInspectorComponent](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
	ecs.RegisterComponent[QueryDebuggerComponent](registry)
}

// SpawnDebugUI creates one entity per panel. Panels that do not fit in the
// storage are skipped.
func SpawnDebugUI(storage *ecs.Storage) {
	spawn(storage, NewEntityBrowserComponent(100))
	spawn(storage, NewComponentInspectorComponent())
	spawn(storage, NewPerformanceStatsComponent(120))
	spawn(storage, NewQueryDebuggerComponent())
}

func spawn[T any](storage *ecs.Storage, value T) {
	e := storage.Create()
	if e == ecs.NoEntity {
		return
	}
	*ecs.AddComponent[T](storage, e) = value
}

// Render draws every spawned panel and runs every ImguiItem.
func Render(storage *ecs.Storage, deltaTime float32) {
	selected := ecs.NoEntity
	for _, e := range storage.Query(ecs.ComponentKindOf[EntityBrowserComponent](storage)) {
		browser := ecs.GetComponent[EntityBrowserComponent](storage, e)
		browser.Render(storage)
		selected = browser.GetSelectedEntity()
	}

	for _, e := range storage.Query(ecs.ComponentKindOf[ComponentInspectorComponent](storage)) {
		ecs.GetComponent[ComponentInspectorComponent](storage, e).Render(storage, selected)
	}

	for _, e := range storage.Query(ecs.ComponentKindOf[PerformanceStatsComponent](storage)) {
		ecs.GetComponent[PerformanceStatsComponent](storage, e).Render(storage, deltaTime)
	}

	for _, e := range storage.Query(ecs.ComponentKindOf[QueryDebuggerComponent](storage)) {
		ecs.GetComponent[QueryDebuggerComponent](storage, e).Render(storage)
	}

	for _, e := range storage.Query(ecs.ComponentKindOf[ImguiItem](storage)) {
		if item := ecs.GetComponent[ImguiItem](storage, e); item.Render != nil {
			item.Render()
		}
	}
}
