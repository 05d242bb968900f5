// Package diagram renders problem geometry as SVG, PNG or a terminal
// character canvas.
package diagram

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
)

const (
	stroke      = "black"
	headLength  = 10.0
	headWidth   = 5.0
	markSize    = 5.0
	pointRadius = 5.0
	chargeArm   = 5.0
	wireMarker  = 10.0
)

// label is text placed on a diagram. Labels are kept apart from shapes so
// the PNG renderer, whose rasterizer has no text support, can draw them
// separately.
type label struct {
	Text string
	X, Y float64
	Bold bool
}

func labels(geo problem.Geometry) []label {
	var out []label
	for _, w := range geo.Wires {
		out = append(out, label{Text: w.Label, X: w.LabelX, Y: w.LabelY})
	}
	for _, p := range geo.Points {
		out = append(out, label{Text: p.Label, X: p.X + 5, Y: p.Y - 5})
	}
	if f := geo.Field; f != nil {
		out = append(out, label{Text: "B", X: f.X + f.Size/2 - 4, Y: f.Y + f.Size/2 + 5, Bold: true})
	}
	if p := geo.Particle; p != nil {
		out = append(out, label{Text: "v", X: p.LabelX, Y: p.LabelY})
	}
	return out
}

type svgWriter struct {
	buf bytes.Buffer
}

func (s *svgWriter) printf(format string, args ...any) {
	fmt.Fprintf(&s.buf, format, args...)
}

func (s *svgWriter) line(x1, y1, x2, y2, width float64) {
	s.printf(`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n", x1, y1, x2, y2, stroke, width)
}

func (s *svgWriter) circle(cx, cy, r float64, filled bool) {
	fill := "none"
	if filled {
		fill = stroke
	}
	s.printf(`<circle cx="%g" cy="%g" r="%g" stroke="%s" fill="%s"/>`+"\n", cx, cy, r, stroke, fill)
}

// head draws a filled arrowhead whose tip is at (x, y), pointing along
// (dx, dy).
func (s *svgWriter) head(x, y, dx, dy float64) {
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	dx, dy = dx/n, dy/n
	bx, by := x-dx*headLength, y-dy*headLength
	px, py := -dy*headWidth, dx*headWidth
	s.printf(`<polygon points="%g,%g %g,%g %g,%g" fill="%s"/>`+"\n",
		x, y, bx+px, by+py, bx-px, by-py, stroke)
}

// arrow draws a shaft from (x1, y1) to (x2, y2) with the head at the end.
func (s *svgWriter) arrow(x1, y1, x2, y2, width float64) {
	dx, dy := x2-x1, y2-y1
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	// Stop the shaft short so it does not poke through the tip.
	sx, sy := x2-dx/n*headLength/2, y2-dy/n*headLength/2
	s.line(x1, y1, sx, sy, width)
	s.head(x2, y2, dx, dy)
}

// perpendicular draws the into-page cross or out-of-page dot centred at
// (x, y). size is the half-width of the cross.
func (s *svgWriter) perpendicular(d direction.Direction, x, y, size float64) {
	switch d {
	case direction.IntoPage:
		s.line(x-size, y-size, x+size, y+size, 1.5)
		s.line(x-size, y+size, x+size, y-size, 1.5)
	case direction.OutOfPage:
		s.circle(x, y, size/2, true)
	}
}

// inPlane draws an arrow of the given half-length centred at (x, y) pointing
// along an in-page direction.
func (s *svgWriter) inPlane(d direction.Direction, x, y, half, width float64) {
	v := d.Vector()
	// Screen y grows downward.
	dx, dy := v[0], -v[1]
	s.arrow(x-dx*half, y-dy*half, x+dx*half, y+dy*half, width)
}

func (s *svgWriter) text(l label) {
	weight := "normal"
	style := "italic"
	if l.Bold {
		weight, style = "bold", "normal"
	}
	s.printf(`<text x="%g" y="%g" font-family="serif" font-size="18" font-style="%s" font-weight="%s">%s</text>`+"\n",
		l.X, l.Y, style, weight, l.Text)
}

func (s *svgWriter) wire(w problem.Wire) {
	switch w.Kind {
	case problem.WireLine:
		s.line(w.X1, w.Y1, w.X2, w.Y2, 2)
		mx, my := w.Midpoint()
		dx, dy := w.X2-w.X1, w.Y2-w.Y1
		n := math.Hypot(dx, dy)
		if n == 0 {
			return
		}
		s.head(mx+dx/n*headLength/2, my+dy/n*headLength/2, dx, dy)
	case problem.WireCrossSection:
		s.circle(w.CX, w.CY, w.R, false)
		s.perpendicular(w.Current, w.CX, w.CY, wireMarker)
	}
}

func (s *svgWriter) field(f problem.Field) {
	marks := f.Marks()
	switch {
	case f.Direction.IsZAxis():
		for _, mx := range marks {
			for _, my := range marks {
				s.perpendicular(f.Direction, f.X+mx, f.Y+my, markSize)
			}
		}
	case f.Direction.IsXAxis():
		for _, my := range marks {
			s.inPlane(f.Direction, f.X+f.Size/2, f.Y+my, (marks[3]-marks[0])/2, 2)
		}
	case f.Direction.IsYAxis():
		for _, mx := range marks {
			s.inPlane(f.Direction, f.X+mx, f.Y+f.Size/2, (marks[3]-marks[0])/2, 2)
		}
	}
	s.printf(`<rect x="%g" y="%g" width="%g" height="%g" stroke="%s" stroke-dasharray="4 4" fill="none"/>`+"\n",
		f.X, f.Y, f.Size, f.Size, stroke)
}

func (s *svgWriter) particle(p problem.Particle) {
	s.circle(p.X, p.Y, p.R, false)
	s.line(p.X-chargeArm, p.Y, p.X+chargeArm, p.Y, 1.5)
	if p.Positive {
		s.line(p.X, p.Y-chargeArm, p.X, p.Y+chargeArm, 1.5)
	}
	s.arrow(p.ArrowX1, p.ArrowY1, p.ArrowX2, p.ArrowY2, 1.5)
}

func (s *svgWriter) shapes(geo problem.Geometry) {
	s.printf(`<rect x="0" y="0" width="%g" height="%g" fill="white"/>`+"\n", geo.Width, geo.Height)
	if geo.Field != nil {
		s.field(*geo.Field)
	}
	for _, w := range geo.Wires {
		s.wire(w)
	}
	for _, p := range geo.Points {
		s.circle(p.X, p.Y, pointRadius, true)
	}
	if geo.Particle != nil {
		s.particle(*geo.Particle)
	}
}

func (s *svgWriter) open(w, h float64) {
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", w, h, w, h)
}

func (s *svgWriter) close() {
	s.printf("</svg>\n")
}

// SVG renders geo as a standalone SVG document.
func SVG(geo problem.Geometry) []byte {
	var s svgWriter
	s.open(geo.Width, geo.Height)
	s.shapes(geo)
	for _, l := range labels(geo) {
		s.text(l)
	}
	s.close()
	return s.buf.Bytes()
}

// WriteSVG writes the SVG rendering of geo to w.
func WriteSVG(w io.Writer, geo problem.Geometry) error {
	_, err := w.Write(SVG(geo))
	return err
}

// shapesOnly renders geo without text, for rasterizing.
func shapesOnly(geo problem.Geometry) []byte {
	var s svgWriter
	s.open(geo.Width, geo.Height)
	s.shapes(geo)
	s.close()
	return s.buf.Bytes()
}
