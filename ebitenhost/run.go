// Package ebitenhost runs radial sliders inside an Ebitengine window: it polls
// mouse and touch input into a radial.Surface, draws every mounted slider with
// vector graphics and writes queued screenshots.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/radial"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ClearColor fills the screen before drawing. The zero value leaves
	// the screen transparent.
	ClearColor radial.Color
}

// Game implements ebiten.Game for a radial.Surface. Most callers use Run; the
// type is exported for hosts that embed sliders in a larger game.
type Game struct {
	Surface  *radial.Surface
	Renderer *Renderer
	Input    radial.InputSource
	Config   RunConfig

	// OnUpdate, if set, runs once per tick after input has been processed.
	// Returning an error stops the game.
	OnUpdate func(dt float64) error

	fps fpsOverlay
}

// NewGame creates a Game for s with the default font and live input.
func NewGame(s *radial.Surface, cfg RunConfig) (*Game, error) {
	font, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	return &Game{
		Surface:  s,
		Renderer: NewRenderer(font),
		Input:    &Input{},
		Config:   cfg,
	}, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.Surface.Update(g.Input)
	if g.Config.ShowFPS {
		g.fps.update(dt)
	}
	if g.OnUpdate != nil {
		return g.OnUpdate(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Config.ClearColor.A > 0 {
		screen.Fill(g.Config.ClearColor.RGBA())
	}
	g.Renderer.DrawSurface(screen, g.Surface)
	if g.Config.ShowFPS {
		g.fps.draw(screen)
	}
	flushScreenshots(g.Surface, screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Config.Width, g.Config.Height
}

// Run opens a window and drives s until the window closes. The surface is
// closed on return so no drag outlives the window.
func Run(s *radial.Surface, cfg RunConfig) error {
	g, err := NewGame(s, cfg)
	if err != nil {
		return err
	}
	return RunGame(g)
}

// RunGame opens a window for a Game built with NewGame.
func RunGame(g *Game) error {
	defer g.Surface.Close()
	ebiten.SetWindowTitle(g.Config.Title)
	ebiten.SetWindowSize(g.Config.Width, g.Config.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}
