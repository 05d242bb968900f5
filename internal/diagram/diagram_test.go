package diagram

import (
	"bytes"
	"encoding/xml"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games/dualwire"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/problem"
)

func geometry(t *testing.T, g problem.Generator, s problem.State) problem.Geometry {
	t.Helper()
	geo, err := g.Geometry(s)
	require.NoError(t, err)
	return geo
}

func assertWellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error(), "malformed svg:\n%s", doc)
			return
		}
	}
}

func TestSVGWireField(t *testing.T) {
	geo := geometry(t, wirefield.New(), wirefield.State{Current: direction.IntoPage, Radius: direction.Right, PX: 160, PY: 100})
	doc := SVG(geo)
	assertWellFormed(t, doc)

	s := string(doc)
	assert.Contains(t, s, `viewBox="0 0 200 200"`)
	assert.Contains(t, s, `<circle cx="100" cy="100" r="25" stroke="black" fill="none"/>`)
	assert.Contains(t, s, `<circle cx="160" cy="100" r="5" stroke="black" fill="black"/>`)
	assert.Contains(t, s, `>P</text>`)
	assert.Contains(t, s, `>I</text>`)
}

func TestSVGLineWireArrowPointsWithCurrent(t *testing.T) {
	geo := geometry(t, wirefield.New(), wirefield.State{Current: direction.Left, Radius: direction.Up, PX: 200, PY: 50})
	s := string(SVG(geo))
	// Head tip is left of the midpoint for a leftward current.
	assert.Contains(t, s, `<polygon points="195,100 205,95 205,105"`)
}

func TestSVGParticle(t *testing.T) {
	geo := geometry(t, particle.New(), particle.State{Field: direction.Left, Positive: false, Velocity: direction.Up})
	doc := SVG(geo)
	assertWellFormed(t, doc)

	s := string(doc)
	assert.Contains(t, s, `viewBox="0 0 200 400"`)
	assert.Contains(t, s, `>B</text>`)
	assert.Contains(t, s, `>v</text>`)
	// Four field arrows plus the velocity arrow.
	assert.Equal(t, 5, strings.Count(s, "<polygon"))
}

func TestChoiceIcons(t *testing.T) {
	for _, d := range direction.All() {
		doc := ChoiceIcon(d)
		assertWellFormed(t, doc)
		assert.Contains(t, string(doc), `viewBox="0 0 50 50"`)
	}

	// Right arrow tip sits at the right edge.
	assert.Contains(t, string(ChoiceIcon(direction.Right)), `<polygon points="45,25 `)
	assert.Contains(t, string(ChoiceIcon(direction.Left)), `<polygon points="5,25 `)
	assert.Contains(t, string(ChoiceIcon(direction.Up)), `<polygon points="25,5 `)
	assert.Contains(t, string(ChoiceIcon(direction.None)), `>None</text>`)
}

func TestPNG(t *testing.T) {
	geo := geometry(t, dualwire.New(), dualwire.State{
		Current1: direction.OutOfPage, Current2: direction.IntoPage,
		Relative: direction.Right, Radius: direction.None, PX: 200, PY: 200,
	})

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, geo, 1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// Background is white, the point is black.
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	r, g, b, _ = img.At(200, 200).RGBA()
	assert.Less(t, r+g+b, uint32(0x8000))
}

func TestRasterRejectsEmptyGeometry(t *testing.T) {
	_, err := Raster(problem.Geometry{}, 1)
	assert.Error(t, err)
}

func TestTextWireField(t *testing.T) {
	geo := geometry(t, wirefield.New(), wirefield.State{Current: direction.Right, Radius: direction.Up, PX: 150, PY: 50})
	out := Text(geo)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 11)

	assert.Contains(t, lines[5], "─")
	assert.Equal(t, '→', []rune(lines[5])[20])
	assert.Contains(t, lines[3], "●P")
}

func TestTextCrossSectionsAndParticle(t *testing.T) {
	geo := geometry(t, dualwire.New(), dualwire.State{
		Current1: direction.IntoPage, Current2: direction.OutOfPage,
		Relative: direction.Up, Radius: direction.Down, PX: 200, PY: 350,
	})
	out := Text(geo)
	assert.Contains(t, out, "(⊗)")
	assert.Contains(t, out, "(⊙)")

	geo = geometry(t, particle.New(), particle.State{Field: direction.OutOfPage, Positive: true, Velocity: direction.Right})
	c := Draw(geo)
	assert.Equal(t, '+', c.At(5, 5))
	assert.Equal(t, '⊙', c.At(23, 1))
	assert.Equal(t, 'B', c.At(30, 5))
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(-1, 0, 'x')
	c.Set(5, 5, 'x')
	c.Write(1, 1, "abc")
	assert.Equal(t, "\n ab", c.String())
	assert.Equal(t, ' ', c.At(9, 9))
}
