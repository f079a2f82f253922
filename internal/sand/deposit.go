package sand

import "mad-sand/internal/core"

// Deposit paints a circular brush centered on grid cell (cx, cy). radius is in
// device pixels and cellSize is the number of device pixels per cell: a cell
// at offset (dx, dy) is inside the brush when its device offset
// (dx*cellSize, dy*cellSize) lies within radius. Each in-bounds cell inside
// the circle is filled with probability density, one roll per cell, and only
// when it is empty. It returns the number of cells filled.
func Deposit(g *Grid, cx, cy, radius, cellSize int, density float64, c Color, rng core.Rand) int {
	if g == nil || radius < 0 {
		return 0
	}
	if cellSize < 1 {
		cellSize = 1
	}
	reach := radius / cellSize
	if cx+reach < 0 || cy+reach < 0 || cx-reach >= g.w || cy-reach >= g.h {
		return 0
	}
	threshold := 1 - density
	r2 := radius * radius
	filled := 0
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			ox, oy := dx*cellSize, dy*cellSize
			if ox*ox+oy*oy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !g.InBounds(x, y) {
				continue
			}
			if rng.Float64() <= threshold {
				continue
			}
			idx := g.index(x, y)
			if g.cells[idx].Filled {
				continue
			}
			g.cells[idx] = Cell{Color: c, Filled: true}
			filled++
		}
	}
	return filled
}
