//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the brush outline under the cursor and an optional status line.
type Overlay struct {
	driver     *sand.Driver
	showBrush  bool
	showStatus bool
	cursorX    int
	cursorY    int
	inView     bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(driver *sand.Driver) *Overlay {
	return &Overlay{driver: driver, showBrush: true}
}

// Update toggles overlay layers and records the cursor for the next Draw.
func (o *Overlay) Update(cursorX, cursorY int, inView bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBrush = !o.showBrush
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStatus = !o.showStatus
	}
	o.cursorX, o.cursorY, o.inView = cursorX, cursorY, inView
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	p := o.driver.Params()
	if o.showBrush && o.inView {
		cs := float32(p.CellSize)
		gx, gy := o.driver.ToGrid(o.cursorX, o.cursorY)
		cx := (float32(gx) + 0.5) * cs
		cy := (float32(gy) + 0.5) * cs
		// Outer edge of the painted cells.
		radius := float32(p.BrushRadius) + cs/2
		c := o.driver.Color()
		outline := color.RGBA{R: c.R, G: c.G, B: c.B, A: 160}
		vector.StrokeCircle(screen, cx, cy, radius, 1, outline, true)
	}
	if o.showStatus {
		state := "running"
		if !o.driver.Running() {
			state = "paused"
		}
		size := o.driver.Size()
		msg := fmt.Sprintf("TPS %.0f  grid %dx%d  grains %d  tick %d  %s",
			ebiten.ActualTPS(), size.W, size.H, o.driver.Grid().Count(), o.driver.Ticks(), state)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}
