package diagram

import (
	"math"
	"strings"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
)

// Terminal cells are about twice as tall as they are wide.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// Canvas is a grid of runes addressed by column and row.
type Canvas struct {
	Cols, Rows int
	cells      [][]rune
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int) *Canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &Canvas{Cols: cols, Rows: rows, cells: cells}
}

// Set writes r at (col, row), ignoring positions off the canvas.
func (c *Canvas) Set(col, row int, r rune) {
	if row < 0 || row >= c.Rows || col < 0 || col >= c.Cols {
		return
	}
	c.cells[row][col] = r
}

// At returns the rune at (col, row), or a space off the canvas.
func (c *Canvas) At(col, row int) rune {
	if row < 0 || row >= c.Rows || col < 0 || col >= c.Cols {
		return ' '
	}
	return c.cells[row][col]
}

// Write writes s starting at (col, row).
func (c *Canvas) Write(col, row int, s string) {
	for i, r := range []rune(s) {
		c.Set(col+i, row, r)
	}
}

// String joins the rows with newlines, trimming trailing spaces.
func (c *Canvas) String() string {
	lines := make([]string, c.Rows)
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func toCell(x, y float64) (int, int) {
	return int(math.Round(x / cellWidth)), int(math.Round(y / cellHeight))
}

// Text renders geo on a character canvas.
func Text(geo problem.Geometry) string {
	return Draw(geo).String()
}

// Draw renders geo onto a new canvas sized to the diagram.
func Draw(geo problem.Geometry) *Canvas {
	cols, rows := toCell(geo.Width, geo.Height)
	c := NewCanvas(cols+1, rows+1)

	if f := geo.Field; f != nil {
		drawField(c, *f)
	}
	for _, w := range geo.Wires {
		drawWire(c, w)
	}
	for _, p := range geo.Points {
		col, row := toCell(p.X, p.Y)
		c.Set(col, row, '●')
		c.Write(col+1, row, p.Label)
	}
	if p := geo.Particle; p != nil {
		drawParticle(c, *p)
	}
	return c
}

func drawWire(c *Canvas, w problem.Wire) {
	switch w.Kind {
	case problem.WireLine:
		c1, r1 := toCell(w.X1, w.Y1)
		c2, r2 := toCell(w.X2, w.Y2)
		if r1 == r2 {
			for col := min(c1, c2); col <= max(c1, c2); col++ {
				c.Set(col, r1, '─')
			}
		} else {
			for row := min(r1, r2); row <= max(r1, r2); row++ {
				c.Set(c1, row, '│')
			}
		}
		mx, my := toCell(w.Midpoint())
		c.Set(mx, my, []rune(w.Current.Glyph())[0])
	case problem.WireCrossSection:
		col, row := toCell(w.CX, w.CY)
		c.Write(col-1, row, "("+w.Current.Glyph()+")")
	}
	col, row := toCell(w.LabelX, w.LabelY)
	c.Write(col, row, w.Label)
}

func drawField(c *Canvas, f problem.Field) {
	if f.Direction != direction.None {
		glyph := []rune(f.Direction.Glyph())[0]
		for _, mx := range f.Marks() {
			for _, my := range f.Marks() {
				col, row := toCell(f.X+mx, f.Y+my)
				c.Set(col, row, glyph)
			}
		}
	}
	col, row := toCell(f.X+f.Size/2, f.Y+f.Size/2)
	c.Set(col, row, 'B')
}

func drawParticle(c *Canvas, p problem.Particle) {
	sign := '−'
	if p.Positive {
		sign = '+'
	}
	glyph := []rune(p.Velocity.Glyph())[0]
	c1, r1 := toCell(p.ArrowX1, p.ArrowY1)
	c2, r2 := toCell(p.ArrowX2, p.ArrowY2)
	for col := min(c1, c2); col <= max(c1, c2); col++ {
		for row := min(r1, r2); row <= max(r1, r2); row++ {
			c.Set(col, row, glyph)
		}
	}
	col, row := toCell(p.X, p.Y)
	c.Set(col, row, sign)
	lc, lr := toCell(p.LabelX, p.LabelY)
	c.Set(lc, lr, 'v')
}
