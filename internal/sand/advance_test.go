package sand

import (
	"slices"
	"testing"

	"mad-sand/internal/core"
)

func TestAdvanceFallsToFloorInOneTick(t *testing.T) {
	g := NewGrid(5, 5)
	Deposit(g, 2, 0, 0, 1, 1, red, &stubRand{f: 0.5})

	next := Advance(g, 5, &stubRand{})
	if !next.Filled(2, 4) || next.Count() != 1 {
		t.Fatalf("grain should land on (2,4), rows %v", rowsOf(next))
	}
	if !g.Filled(2, 0) {
		t.Fatal("advance must not mutate its input")
	}
}

func TestAdvanceFloorWithNeighborsStays(t *testing.T) {
	g := gridFromRows(
		".....",
		".....",
		".....",
		".....",
		".###.",
	)
	rng := &stubRand{}
	next := Advance(g, 5, rng)
	if !next.Equal(g) {
		t.Fatalf("floor grains must stay put, rows %v", rowsOf(next))
	}
	if rng.intCalls != 0 {
		t.Fatalf("no randomness expected, got %d tie-breaks", rng.intCalls)
	}
}

func TestAdvanceGreedyFallRespectsGravity(t *testing.T) {
	g := gridFromRows(
		"#",
		".",
		".",
		".",
		".",
		".",
	)
	next := Advance(g, 3, &stubRand{})
	if got, want := rowsOf(next), []string{".", ".", ".", "#", ".", "."}; !slices.Equal(got, want) {
		t.Fatalf("gravity 3 should drop three rows, got %v", got)
	}

	next = Advance(g, 10, &stubRand{})
	if !next.Filled(0, 5) {
		t.Fatalf("gravity beyond the column should reach the floor, got %v", rowsOf(next))
	}
}

func TestAdvanceFallStopsAboveObstacle(t *testing.T) {
	g := gridFromRows(
		"#",
		".",
		".",
		"g",
		".",
	)
	next := Advance(g, 8, &stubRand{})
	want := []string{".", ".", "#", ".", "g"}
	if got := rowsOf(next); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAdvanceSingleDiagonalIsDeterministic(t *testing.T) {
	g := gridFromRows(
		".#.",
		"##.",
	)
	for i := 0; i < 10; i++ {
		rng := &stubRand{pick: i}
		next := Advance(g, 4, rng)
		want := []string{"...", "###"}
		if got := rowsOf(next); !slices.Equal(got, want) {
			t.Fatalf("grain should slide right, got %v", got)
		}
		if rng.intCalls != 0 {
			t.Fatalf("single free diagonal must not consume randomness, got %d calls", rng.intCalls)
		}
	}
}

func TestAdvanceTwoWayTieUsesRandomness(t *testing.T) {
	g := gridFromRows(
		".#.",
		".#.",
	)
	left := Advance(g, 4, &stubRand{pick: 0})
	if got, want := rowsOf(left), []string{"...", "##."}; !slices.Equal(got, want) {
		t.Fatalf("pick 0 should slide left, got %v", got)
	}
	right := Advance(g, 4, &stubRand{pick: 1})
	if got, want := rowsOf(right), []string{"...", ".##"}; !slices.Equal(got, want) {
		t.Fatalf("pick 1 should slide right, got %v", got)
	}
}

func TestAdvanceZeroGravityStillSlides(t *testing.T) {
	g := gridFromRows(
		"#..",
		"...",
		"...",
	)
	next := Advance(g, 0, &stubRand{})
	if got, want := rowsOf(next), []string{"...", ".#.", "..."}; !slices.Equal(got, want) {
		t.Fatalf("gravity 0 disables falling only, got %v", got)
	}
}

func TestAdvanceResolvesCompetingMoves(t *testing.T) {
	g := gridFromRows(
		"...",
		"g.b",
		"#.#",
	)
	next := Advance(g, 1, &stubRand{})
	want := []string{
		"...",
		"..b",
		"#g#",
	}
	if got := rowsOf(next); !slices.Equal(got, want) {
		t.Fatalf("earlier mover claims the shared cell, got %v want %v", got, want)
	}
	if next.Count() != g.Count() {
		t.Fatalf("collision lost a grain: %d -> %d", g.Count(), next.Count())
	}
}

func TestAdvanceNoDoubleMove(t *testing.T) {
	g := gridFromRows(
		"#",
		".",
		".",
		".",
	)
	next := Advance(g, 1, &stubRand{})
	if got, want := rowsOf(next), []string{".", "#", ".", "."}; !slices.Equal(got, want) {
		t.Fatalf("a grain moves at most once per tick, got %v", got)
	}
}

func TestAdvanceConservesGrains(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := core.NewRNG(seed)
		g := randomGrid(24, 18, 0.45, rng)
		for gravity := 0; gravity <= 6; gravity += 3 {
			next := Advance(g, gravity, rng)
			if next.Count() != g.Count() {
				t.Fatalf("seed %d gravity %d: %d grains became %d", seed, gravity, g.Count(), next.Count())
			}
			if err := next.Validate(); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}
	}
}

func TestAdvanceNoTunneling(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := core.NewRNG(seed)
		g := uniqueGrid(16, 16, 0.5, rng)
		next := Advance(g, 8, rng)
		for x := 0; x < g.Width(); x++ {
			before := columnIDs(g, x)
			after := columnIDs(next, x)
			// Grains that stayed in the column keep their vertical order.
			var kept []int
			present := map[int]bool{}
			for _, id := range after {
				present[id] = true
			}
			for _, id := range before {
				if present[id] {
					kept = append(kept, id)
				}
			}
			var stayed []int
			origin := map[int]bool{}
			for _, id := range before {
				origin[id] = true
			}
			for _, id := range after {
				if origin[id] {
					stayed = append(stayed, id)
				}
			}
			if !slices.Equal(kept, stayed) {
				t.Fatalf("seed %d column %d reordered: before %v after %v", seed, x, kept, stayed)
			}
		}
	}
}

func TestAdvanceSeededReplay(t *testing.T) {
	g := randomGrid(20, 20, 0.4, core.NewRNG(9))
	a := Advance(g, 4, core.NewRNG(5))
	b := Advance(g, 4, core.NewRNG(5))
	if !a.Equal(b) {
		t.Fatal("identical seeds must replay identically")
	}
}

func TestAdvanceIntoReusesBuffer(t *testing.T) {
	src := gridFromRows("#.", "..")
	dst := NewGrid(2, 2)
	dst.Set(1, 1, green)
	AdvanceInto(dst, src, 1, &stubRand{})
	if got, want := rowsOf(dst), []string{"..", "#."}; !slices.Equal(got, want) {
		t.Fatalf("stale write buffer leaked into result: %v", got)
	}
}

func TestAdvanceEmptyGrid(t *testing.T) {
	next := Advance(NewGrid(0, 0), 3, &stubRand{})
	if next.Count() != 0 || next.Width() != 0 {
		t.Fatal("empty grid should stay empty")
	}
}

func randomGrid(w, h int, fill float64, rng core.Rand) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < fill {
				g.Set(x, y, Palette[rng.IntN(len(Palette))])
			}
		}
	}
	return g
}

// uniqueGrid colors every grain with its own id so moves can be traced.
func uniqueGrid(w, h int, fill float64, rng core.Rand) *Grid {
	g := NewGrid(w, h)
	id := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < fill {
				id++
				g.Set(x, y, Color{R: uint8(id >> 8), G: uint8(id), B: 1})
			}
		}
	}
	return g
}

func columnIDs(g *Grid, x int) []int {
	var ids []int
	for y := 0; y < g.Height(); y++ {
		if c, ok := g.At(x, y); ok {
			ids = append(ids, int(c.R)<<8|int(c.G))
		}
	}
	return ids
}
