package sand

// stubRand returns fixed samples and counts how often a tie-break was needed.
type stubRand struct {
	f        float64
	pick     int
	intCalls int
}

func (s *stubRand) Float64() float64 { return s.f }

func (s *stubRand) IntN(n int) int {
	s.intCalls++
	if n <= 0 {
		return 0
	}
	return s.pick % n
}

var (
	red   = Color{R: 255}
	green = Color{G: 255}
	blue  = Color{B: 255}
)

// gridFromRows builds a grid from rows where '#' is a red grain, 'g' green,
// 'b' blue and anything else empty.
func gridFromRows(rows ...string) *Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := NewGrid(w, h)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.Set(x, y, red)
			case 'g':
				g.Set(x, y, green)
			case 'b':
				g.Set(x, y, blue)
			}
		}
	}
	return g
}

func rowsOf(g *Grid) []string {
	rows := make([]string, g.Height())
	for y := range rows {
		buf := make([]byte, g.Width())
		for x := range buf {
			c, ok := g.At(x, y)
			switch {
			case !ok:
				buf[x] = '.'
			case c == green:
				buf[x] = 'g'
			case c == blue:
				buf[x] = 'b'
			default:
				buf[x] = '#'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}
