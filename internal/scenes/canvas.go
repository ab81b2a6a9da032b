package scenes

import "strings"

// grid is a rune canvas scenes draw into before styling. Row 0 is the top
// line of the frame.
type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &grid{w: w, h: h, cells: cells}
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *grid) hline(x0, x1, y int, r rune) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		g.set(x, y, r)
	}
}

func (g *grid) vline(x, y0, y1 int, r rune) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		g.set(x, y, r)
	}
}

func (g *grid) text(x, y int, s string) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r)
	}
}

func (g *grid) String() string {
	rows := make([]string, g.h)
	for y, row := range g.cells {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

// barChars maps a fractional fill level to a partial block rune, the same
// ramp the spectrum visualizers in the wild use.
var barChars = []rune(" ▁▂▃▄▅▆▇█")

func barRune(frac float64) rune {
	if frac <= 0 {
		return barChars[0]
	}
	if frac >= 1 {
		return barChars[len(barChars)-1]
	}
	return barChars[int(frac*float64(len(barChars)-1))]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
