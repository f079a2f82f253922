package sand

import "mad-sand/internal/core"

// Settle advances g until a tick changes nothing or maxTicks is reached. It
// returns the final grid, the number of ticks run and whether the pile came to
// rest. g is not modified.
func Settle(g *Grid, gravity int, rng core.Rand, maxTicks int) (*Grid, int, bool) {
	cur := g.Clone()
	nxt := &Grid{}
	for tick := 1; tick <= maxTicks; tick++ {
		AdvanceInto(nxt, cur, gravity, rng)
		if nxt.Equal(cur) {
			return nxt, tick, true
		}
		cur, nxt = nxt, cur
	}
	return cur, maxTicks, false
}

// Pour deposits a brush at (cx, cy) once per tick for ticks ticks while
// advancing, the way a held pointer does. It returns the grains deposited.
func Pour(d *Driver, cx, cy, ticks int) int {
	total := d.Sample(PointerSample{Pressed: true, X: cx, Y: cy})
	for i := 0; i < ticks; i++ {
		total += d.Tick().Deposited
	}
	d.Sample(PointerSample{Pressed: false, X: cx, Y: cy})
	return total
}
