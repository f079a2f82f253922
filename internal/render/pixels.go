package render

import (
	"image/color"

	"mad-sand/internal/sand"
)

// Background is the color of empty cells.
var Background = color.RGBA{A: 255}

// FillRGBA packs the grid into buf as RGBA pixels at native resolution, one
// pixel per cell. buf must hold 4*w*h bytes; a short buffer is left untouched.
func FillRGBA(buf []byte, g *sand.Grid, background color.RGBA) bool {
	w, h := g.Width(), g.Height()
	if len(buf) < 4*w*h {
		return false
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			col := background
			if c, ok := g.At(x, y); ok {
				col = c.RGBA()
			}
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	return true
}
