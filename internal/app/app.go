//go:build ebiten

package app

import (
	"image/color"
	"log"

	"mad-sand/internal/audio"
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sand"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand simulation to the ebiten.Game interface.
type Game struct {
	driver  *sand.Driver
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	sound   *audio.Pourer

	preset     string
	background color.RGBA
	viewW      int
	viewH      int
}

// New constructs a Game for a view of cfg.Width x cfg.Height pixels.
func New(cfg *Config, p sand.Params, rng core.Rand, sound *audio.Pourer) *Game {
	driver := sand.NewDriver(cfg.Width, cfg.Height, p, rng)
	return &Game{
		driver:     driver,
		painter:    render.NewGridPainter(),
		hud:        ui.NewHUD(driver, driver, cfg.HUDWidth),
		overlay:    ui.NewOverlay(driver),
		sound:      sound,
		preset:     cfg.Preset,
		background: render.Background,
		viewW:      cfg.Width,
		viewH:      cfg.Height,
	}
}

// Driver exposes the underlying simulation driver.
func (g *Game) Driver() *sand.Driver { return g.driver }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.driver.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.driver.Running() {
		g.driver.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.preset != "" {
		if err := sand.SavePreset(g.preset, g.driver.Params()); err != nil {
			log.Printf("save preset: %v", err)
		} else {
			log.Printf("saved preset to %s", g.preset)
		}
	}

	g.hud.Update(g.viewW)

	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < g.viewW && my < g.viewH && !g.hud.Captures(mx, my)
	g.overlay.Update(mx, my, inView)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !g.driver.Pointer().Held && !inView {
		pressed = false
	}
	deposited := g.driver.Sample(sand.PointerSample{Pressed: pressed, X: mx, Y: my})
	res := g.driver.Tick()
	g.sound.Pour(deposited + res.Deposited)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.driver.Grid(), g.background, g.driver.Params().CellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewW)
}

// Layout reallocates the grid whenever the window size changes and returns
// the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	viewW := outsideWidth - g.hud.Width()
	if viewW < 0 {
		viewW = 0
	}
	if viewW != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = viewW, outsideHeight
		g.driver.Resize(g.viewW, g.viewH)
	}
	return outsideWidth, outsideHeight
}
