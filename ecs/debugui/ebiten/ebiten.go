// Package ebiten runs the debugui panels inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/slotecs/ecs"
	"github.com/plus3/slotecs/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and renders the
// debugui panels of one Storage.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	storage *ecs.Storage
	timer   *debugui.FrameTimer
}

// NewImguiBackend creates the backend window and binds it to storage. The
// storage must have been built from a registry passed through
// debugui.RegisterDebugUIComponents.
func NewImguiBackend(storage *ecs.Storage, title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		storage:       storage,
		timer:         debugui.NewFrameTimer(),
	}
}

// Update renders one frame of panels. Call it from ebiten.Game.Update.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	debugui.Render(b.storage, b.timer.GetDeltaTime())
	b.EndFrame()
}

// DrawOverlay draws the panels over screen. Call it last in ebiten.Game.Draw.
func (b *ImguiBackend) DrawOverlay(screen *ebiten.Image) {
	b.Draw(screen)
}
