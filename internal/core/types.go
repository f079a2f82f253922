package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Contains reports whether (x, y) lies inside the size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// FloorDiv divides a by b rounding towards negative infinity. Pointer
// coordinates left of or above the window are negative and must not collapse
// onto cell zero.
func FloorDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
