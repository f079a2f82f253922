//go:build ebiten

package render

import (
	"image/color"

	"mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads grid cells into an RGBA image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter. The backing image follows the grid size
// lazily.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

func (gp *GridPainter) ensure(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if gp.img != nil && gp.w == w && gp.h == h {
		return true
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
	return true
}

// Blit uploads the grid into the painter image and draws it at scale pixels
// per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *sand.Grid, background color.RGBA, scale int) {
	if !gp.ensure(g.Width(), g.Height()) {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillRGBA(gp.buf, g, background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
