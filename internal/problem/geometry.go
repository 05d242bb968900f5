package problem

import "github.com/abhisek/rhr/internal/direction"

// WireKind distinguishes wires drawn along the page from wires seen end-on.
type WireKind string

const (
	// WireLine is a wire lying in the page, drawn as a line with an arrow at
	// its midpoint.
	WireLine WireKind = "line"
	// WireCrossSection is a wire perpendicular to the page, drawn as a circle
	// with a dot (out of page) or a cross (into page).
	WireCrossSection WireKind = "cross-section"
)

// Geometry is everything a renderer needs to draw a problem. Coordinates use
// screen orientation: x grows to the right and y grows downward.
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Wires    []Wire    `json:"wires,omitempty"`
	Points   []Point   `json:"points,omitempty"`
	Field    *Field    `json:"field,omitempty"`
	Particle *Particle `json:"particle,omitempty"`
}

// Wire is a current-carrying wire.
type Wire struct {
	Kind    WireKind            `json:"kind"`
	Current direction.Direction `json:"current"`
	Label   string              `json:"label"`

	// Line endpoints, ordered so that the current flows from 1 to 2.
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// Cross-section centre and radius.
	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`

	LabelX float64 `json:"labelX"`
	LabelY float64 `json:"labelY"`
}

// Point is a labelled location where the field is evaluated.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Field is a square panel filled with a uniform magnetic field.
type Field struct {
	Direction direction.Direction `json:"direction"`
	X         float64             `json:"x"`
	Y         float64             `json:"y"`
	Size      float64             `json:"size"`
}

// Marks returns the grid positions, relative to the panel origin, at which
// field symbols or arrows are placed.
func (f Field) Marks() []float64 {
	step := f.Size / 4
	return []float64{step / 2, step * 1.5, step * 2.5, step * 3.5}
}

// Particle is a charged particle with its velocity arrow.
type Particle struct {
	X        float64             `json:"x"`
	Y        float64             `json:"y"`
	R        float64             `json:"r"`
	Positive bool                `json:"positive"`
	Velocity direction.Direction `json:"velocity"`

	// Velocity arrow, from tail to head.
	ArrowX1 float64 `json:"arrowX1"`
	ArrowY1 float64 `json:"arrowY1"`
	ArrowX2 float64 `json:"arrowX2"`
	ArrowY2 float64 `json:"arrowY2"`

	LabelX float64 `json:"labelX"`
	LabelY float64 `json:"labelY"`
}

const crossSectionRadius = 25.0

// LineWire lays out a wire in the page carrying current d (an x or y axis
// direction). The wire spans [0, length] along its axis at the given
// perpendicular coordinate.
func LineWire(d direction.Direction, other, length float64) Wire {
	w := Wire{Kind: WireLine, Current: d, Label: "I"}
	switch d.Axis() {
	case direction.AxisX:
		w.Y1, w.Y2 = other, other
		w.X1, w.X2 = 0, length
		if d == direction.Left {
			w.X1, w.X2 = length, 0
		}
		w.LabelX, w.LabelY = length/2, other+15
	case direction.AxisY:
		w.X1, w.X2 = other, other
		w.Y1, w.Y2 = 0, length
		if d == direction.Up {
			w.Y1, w.Y2 = length, 0
		}
		w.LabelX, w.LabelY = other+10, length/2
	default:
		panic("problem: LineWire needs an in-page current, got " + d.String())
	}
	return w
}

// CrossSectionWire lays out a wire perpendicular to the page centred at (x, y).
func CrossSectionWire(d direction.Direction, x, y float64) Wire {
	return Wire{
		Kind:    WireCrossSection,
		Current: d,
		Label:   "I",
		CX:      x,
		CY:      y,
		R:       crossSectionRadius,
		LabelX:  x + 30,
		LabelY:  y - 30,
	}
}

// Midpoint returns the centre of a line wire, where its arrowhead goes.
func (w Wire) Midpoint() (float64, float64) {
	return (w.X1 + w.X2) / 2, (w.Y1 + w.Y2) / 2
}
