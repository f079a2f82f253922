package sand

import (
	"slices"
	"testing"

	"mad-sand/internal/core"
)

func TestDepositRadiusZeroFillsCenter(t *testing.T) {
	g := NewGrid(5, 5)
	n := Deposit(g, 2, 0, 0, 1, 1, red, &stubRand{f: 0.5})
	if n != 1 {
		t.Fatalf("expected one grain, got %d", n)
	}
	if !g.Filled(2, 0) || g.Count() != 1 {
		t.Fatalf("expected only (2,0) filled, rows %v", rowsOf(g))
	}
}

func TestDepositCircularFootprint(t *testing.T) {
	g := NewGrid(9, 9)
	n := Deposit(g, 4, 4, 2, 1, 1, red, &stubRand{f: 0.5})
	if n != 13 {
		t.Fatalf("radius 2 circle covers 13 cells, got %d", n)
	}
	want := []string{
		".........",
		".........",
		"....#....",
		"...###...",
		"..#####..",
		"...###...",
		"....#....",
		".........",
		".........",
	}
	if got := rowsOf(g); !slices.Equal(got, want) {
		t.Fatalf("footprint mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestDepositNeverOverwrites(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, green)
	g.Set(1, 2, blue)
	n := Deposit(g, 2, 2, 1, 1, 1, red, &stubRand{f: 0.5})
	if n != 3 {
		t.Fatalf("expected three new grains, got %d", n)
	}
	if c, _ := g.At(2, 2); c != green {
		t.Fatalf("occupied center changed color to %v", c)
	}
	if c, _ := g.At(1, 2); c != blue {
		t.Fatalf("occupied neighbor changed color to %v", c)
	}
}

func TestDepositOffGridIsNoop(t *testing.T) {
	g := NewGrid(4, 4)
	if n := Deposit(g, -10, -10, 3, 1, 1, red, &stubRand{f: 0.5}); n != 0 || g.Count() != 0 {
		t.Fatalf("off-grid brush must not paint, got %d", n)
	}
	if n := Deposit(g, 20, 1, 3, 1, 1, red, &stubRand{f: 0.5}); n != 0 {
		t.Fatalf("off-grid brush must not paint, got %d", n)
	}
}

func TestDepositClipsAtEdges(t *testing.T) {
	g := NewGrid(4, 4)
	n := Deposit(g, 0, 0, 1, 1, 1, red, &stubRand{f: 0.5})
	if n != 3 {
		t.Fatalf("corner brush should fill 3 in-bounds cells, got %d", n)
	}
}

func TestDepositDensityThreshold(t *testing.T) {
	g := NewGrid(5, 5)
	if n := Deposit(g, 2, 2, 2, 1, 0, red, &stubRand{f: 0.99}); n != 0 {
		t.Fatalf("density 0 must never fill, got %d", n)
	}
	// Accept iff sample > 1-density.
	if n := Deposit(g, 2, 2, 0, 1, 0.3, red, &stubRand{f: 0.7}); n != 0 {
		t.Fatalf("sample equal to 1-density must be rejected, got %d", n)
	}
	if n := Deposit(g, 2, 2, 0, 1, 0.3, red, &stubRand{f: 0.71}); n != 1 {
		t.Fatalf("sample above 1-density must be accepted, got %d", n)
	}
}

func TestDepositDensityIsStatistical(t *testing.T) {
	g := NewGrid(101, 101)
	n := Deposit(g, 50, 50, 50, 1, 0.5, red, core.NewRNG(3))
	candidates := Deposit(NewGrid(101, 101), 50, 50, 50, 1, 1, red, &stubRand{f: 0.5})
	ratio := float64(n) / float64(candidates)
	if ratio < 0.45 || ratio > 0.55 {
		t.Fatalf("half density filled %.3f of the brush", ratio)
	}
}

func TestDepositFootprintUsesDeviceRadius(t *testing.T) {
	// Radius 10 px over 3 px cells reaches cells whose device offset is
	// within 10, e.g. (9, 3), not only the 3-cell disc.
	g := NewGrid(30, 30)
	n := Deposit(g, 15, 15, 10, 3, 1, red, &stubRand{f: 0.5})
	if n != 37 {
		t.Fatalf("expected 37 cells inside the brush, got %d", n)
	}
	if !g.Filled(18, 16) || !g.Filled(12, 14) {
		t.Fatalf("cells at device offset (9, 3) must be painted")
	}
	if g.Filled(18, 17) || g.Filled(17, 18) {
		t.Fatalf("cells at device offset (9, 6) lie outside radius 10")
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			ox, oy := (x-15)*3, (y-15)*3
			if g.Filled(x, y) != (ox*ox+oy*oy <= 100) {
				t.Fatalf("cell (%d,%d) filled=%v, device offset (%d,%d)", x, y, g.Filled(x, y), ox, oy)
			}
		}
	}
}
