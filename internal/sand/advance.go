package sand

import "mad-sand/internal/core"

// Advance computes the grid one tick after src. src is left untouched.
func Advance(src *Grid, gravity int, rng core.Rand) *Grid {
	dst := &Grid{}
	AdvanceInto(dst, src, gravity, rng)
	return dst
}

// AdvanceInto writes the grid one tick after src into dst, reusing dst's
// storage when the sizes match. dst and src must not be the same grid.
//
// Rows are scanned bottom to top and columns left to right. Every decision is
// taken against src; a target counts as free only when it is empty in src and
// no earlier mover has claimed it in dst during this pass.
func AdvanceInto(dst, src *Grid, gravity int, rng core.Rand) {
	if dst == src {
		panic("sand: AdvanceInto needs distinct buffers")
	}
	dst.CopyFrom(src)
	w, h := src.w, src.h
	free := func(x, y int) bool {
		idx := y*w + x
		return !src.cells[idx].Filled && !dst.cells[idx].Filled
	}

	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			cell := src.cells[y*w+x]
			if !cell.Filled {
				continue
			}

			restY := y
			for fall := 1; fall <= gravity && y+fall < h; fall++ {
				if !free(x, y+fall) {
					break
				}
				restY = y + fall
			}
			if restY > y {
				dst.cells[y*w+x] = Cell{}
				dst.cells[restY*w+x] = cell
				continue
			}

			below := y + 1
			if below >= h {
				continue
			}
			var dirs [2]int
			n := 0
			if x-1 >= 0 && free(x-1, below) {
				dirs[n] = -1
				n++
			}
			if x+1 < w && free(x+1, below) {
				dirs[n] = 1
				n++
			}
			if n == 0 {
				continue
			}
			dir := dirs[0]
			if n == 2 {
				dir = dirs[rng.IntN(2)]
			}
			dst.cells[y*w+x] = Cell{}
			dst.cells[below*w+x+dir] = cell
		}
	}
}
