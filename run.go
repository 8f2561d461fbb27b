package confetti

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	// Zero values default to 800x600.
	Width, Height int
	// ClearColor fills the surface each frame before particles are drawn.
	ClearColor Color
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// TriggerOnClick fires a burst at the cursor on every left click.
	TriggerOnClick bool
	// OnUpdate, when set, runs once per frame after the engine update.
	// Returning an error stops the game loop.
	OnUpdate func() error
}

// game adapts an Engine to the ebiten.Game interface.
type game struct {
	engine *Engine
	cfg    RunConfig
}

func (g *game) Update() error {
	if g.cfg.TriggerOnClick && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.engine.Trigger(BurstOptions{Origin: &Vec2{X: float64(x), Y: float64(y)}})
	}
	g.engine.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.rgba())
	}
	g.engine.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout binds the engine on the first call and resyncs the surface size on
// every window resize, keeping the culling bound and default spawn center
// in step with the viewport.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.engine.Bound() {
		g.engine.Bind(outsideWidth, outsideHeight)
	} else if w, h := g.engine.Size(); int(w) != outsideWidth || int(h) != outsideHeight {
		g.engine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run creates a resizable window and drives the engine from Ebitengine's
// frame loop until the window closes. It blocks; call it from main.
func Run(engine *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&game{engine: engine, cfg: cfg}); err != nil {
		return fmt.Errorf("confetti: run: %w", err)
	}
	return nil
}
