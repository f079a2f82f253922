package term

import (
	"fmt"

	"mad-sand/internal/sand"

	"github.com/gdamore/tcell/v2"
)

// upperHalf paints the top half of a cell in the foreground color and the
// bottom half in the background color, giving two grid rows per text row.
const upperHalf = '▀'

// Background is the color of empty cells.
var Background = tcell.NewRGBColor(0, 0, 0)

// DevicePoint maps a terminal cell onto device pixels. A terminal cell is one
// pixel wide and two pixels tall.
func DevicePoint(col, row int) (int, int) {
	return col, row * 2
}

// DeviceSize returns the device surface of a cols x rows terminal that keeps
// its last row for the status line.
func DeviceSize(cols, rows int) (int, int) {
	rows--
	if rows < 0 {
		rows = 0
	}
	return cols, rows * 2
}

func colorOf(g *sand.Grid, x, y int) tcell.Color {
	c, ok := g.At(x, y)
	if !ok {
		return Background
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawGrid paints the grid into the top rows of the screen, scaling each cell
// to cellSize device pixels.
func DrawGrid(screen tcell.Screen, g *sand.Grid, cellSize int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols, rows := screen.Size()
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			x, y := DevicePoint(col, row)
			gx := x / cellSize
			top := colorOf(g, gx, y/cellSize)
			bottom := colorOf(g, gx, (y+1)/cellSize)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

// DrawStatus writes a single line of text on the last screen row.
func DrawStatus(screen tcell.Screen, line string) {
	cols, rows := screen.Size()
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	col := 0
	for _, r := range line {
		if col >= cols {
			break
		}
		screen.SetContent(col, rows-1, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		screen.SetContent(col, rows-1, ' ', nil, style)
	}
}

func statusLine(d *sand.Driver) string {
	p := d.Params()
	state := "running"
	if !d.Running() {
		state = "paused"
	}
	return fmt.Sprintf(" gravity %d  brush %d  density %.2f  cell %d  grains %d  %s | p pause  r clear  n step  +/- gravity  [/] brush  ,/. density  </> cell  q quit",
		p.Gravity, p.BrushRadius, p.Density, p.CellSize, d.Grid().Count(), state)
}
