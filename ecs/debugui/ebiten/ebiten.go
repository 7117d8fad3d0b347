// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/sparsecs/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Stored as a resource so systems can reach the backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game by running a schedule against a world once per
// Ebiten update, inside an ImGui frame, and drawing the ImGui overlay on top
// of whatever DrawWorld renders.
type Game struct {
	World    *ecs.World
	Schedule *ecs.Schedule
	// DrawWorld, if set, draws the game itself before the overlay.
	DrawWorld func(w *ecs.World, screen *ebiten.Image)

	clock ecs.FrameClock
}

// NewGame stores backend as the ImguiBackend resource of w.
func NewGame(w *ecs.World, schedule *ecs.Schedule, backend *ebitenbackend.EbitenBackend) *Game {
	ecs.InsertResource(w, ImguiBackend{EbitenBackend: backend})
	return &Game{World: w, Schedule: schedule}
}

func (g *Game) backend() *ImguiBackend {
	b, ok := ecs.GetResource[ImguiBackend](g.World)
	if !ok || b.EbitenBackend == nil {
		return nil
	}
	return b
}

func (g *Game) Update() error {
	g.clock.Tick(g.World, time.Now())

	b := g.backend()
	if b != nil {
		b.BeginFrame()
	}

	g.Schedule.Run(g.World)

	if b != nil {
		b.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(g.World, screen)
	}
	if b := g.backend(); b != nil {
		b.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if b := g.backend(); b != nil {
		b.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
