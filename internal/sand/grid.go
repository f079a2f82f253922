package sand

import (
	"errors"
	"fmt"

	"mad-sand/internal/core"
)

// ErrCorruptGrid is returned by Validate when the backing storage does not
// match the grid dimensions.
var ErrCorruptGrid = errors.New("sand: corrupt grid")

// Color is the RGB triple carried by a grain. It never changes after the grain
// is placed.
type Color struct {
	R, G, B uint8
}

// Cell is one grid location. A zero Cell is empty.
type Cell struct {
	Color  Color
	Filled bool
}

// Grid stores the occupancy of a rectangular area in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an empty grid. Negative dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Size().Contains(x, y)
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// At returns the grain color at (x, y). The boolean is false for empty or
// out-of-range cells.
func (g *Grid) At(x, y int) (Color, bool) {
	if !g.InBounds(x, y) {
		return Color{}, false
	}
	c := g.cells[g.index(x, y)]
	return c.Color, c.Filled
}

// Filled reports whether (x, y) is occupied. Out-of-range cells are never
// filled.
func (g *Grid) Filled(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].Filled
}

// Set places a grain of color c at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Color) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = Cell{Color: c, Filled: true}
}

// Erase empties (x, y). Out-of-range writes are ignored.
func (g *Grid) Erase(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = Cell{}
}

// Resize reallocates the grid to w*h empty cells. Existing grains are dropped.
func (g *Grid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.w, g.h = w, h
	g.cells = make([]Cell, w*h)
}

// Clear empties every cell in place.
func (g *Grid) Clear() {
	clear(g.cells)
}

// CopyFrom makes g an exact copy of src, reallocating only when the sizes
// differ.
func (g *Grid) CopyFrom(src *Grid) {
	if g.w != src.w || g.h != src.h || len(g.cells) != len(src.cells) {
		g.w, g.h = src.w, src.h
		g.cells = make([]Cell, len(src.cells))
	}
	copy(g.cells, src.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{}
	c.CopyFrom(g)
	return c
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ColumnHeights returns, for every column, the distance from the floor to the
// topmost grain (0 for an empty column).
func (g *Grid) ColumnHeights() []int {
	heights := make([]int, g.w)
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if g.cells[g.index(x, y)].Filled {
				heights[x] = g.h - y
				break
			}
		}
	}
	return heights
}

// Validate checks the storage invariants.
func (g *Grid) Validate() error {
	if g.w < 0 || g.h < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrCorruptGrid, g.w, g.h)
	}
	if len(g.cells) != g.Size().Area() {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrCorruptGrid, len(g.cells), g.w, g.h)
	}
	for i, c := range g.cells {
		if !c.Filled && c.Color != (Color{}) {
			return fmt.Errorf("%w: empty cell %d carries color %v", ErrCorruptGrid, i, c.Color)
		}
	}
	return nil
}
