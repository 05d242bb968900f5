package diagram

import "github.com/abhisek/rhr/internal/direction"

const iconSize = 50.0

// ChoiceIcon renders the 50×50 answer button image for d.
func ChoiceIcon(d direction.Direction) []byte {
	var s svgWriter
	s.open(iconSize, iconSize)
	c := iconSize / 2
	switch {
	case d.IsZAxis():
		s.perpendicular(d, c, c, markSize)
	case d == direction.None:
		s.printf(`<text x="%g" y="%g" font-family="serif" font-size="14" text-anchor="middle">None</text>`+"\n", c, c+5)
	default:
		s.inPlane(d, c, c, c-5, 2)
	}
	s.close()
	return s.buf.Bytes()
}
