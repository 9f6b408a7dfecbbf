package chalk

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Stage is a playable scene: Update advances animation state by dt seconds
// and Draw renders the current frame.
type Stage interface {
	Update(dt float32) error
	Draw(screen *ebiten.Image)
}

// Config configures Play.
type Config struct {
	Title  string
	Width  int // logical width in pixels (default 960)
	Height int // logical height in pixels (default 540)

	// ClearColor fills the screen before each frame. Zero value is opaque
	// black.
	ClearColor Color

	// ShowFPS overlays the current FPS/TPS in the top-left corner.
	ShowFPS bool
}

// game adapts a Stage to ebiten.Game with a fixed per-tick timestep.
type game struct {
	stage Stage
	cfg   Config
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	return g.stage.Update(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.stage.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Play opens a window and runs the stage until it returns an error or the
// window is closed. It blocks for the lifetime of the window and must be
// called from the main goroutine.
func Play(stage Stage, cfg Config) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}
