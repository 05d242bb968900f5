// Package direction defines the seven discrete directions used for currents,
// velocities, fields and forces, and their canonical unit vectors.
//
// The vector table is the single source of truth for geometry: every other
// representation of a direction (names, glyphs, axis groups) is derived from
// the enumeration below.
package direction

import (
	"fmt"
	"strings"

	"github.com/abhisek/rhr/internal/vector"
)

// Direction is one of the seven discrete orientations.
type Direction int

// Declaration order is the canonical enumeration order.
const (
	IntoPage Direction = iota
	OutOfPage
	Left
	Right
	Up
	Down
	None
)

// Count is the number of directions, None included.
const Count = 7

// Axis identifies which coordinate axis a direction lies on.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}

var vectors = [Count]vector.Vec{
	IntoPage:  vector.New(0, 0, -1),
	OutOfPage: vector.New(0, 0, 1),
	Left:      vector.New(-1, 0, 0),
	Right:     vector.New(1, 0, 0),
	Up:        vector.New(0, 1, 0),
	Down:      vector.New(0, -1, 0),
	None:      vector.Zero,
}

var names = [Count]string{
	IntoPage:  "into-page",
	OutOfPage: "out-of-page",
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	None:      "none",
}

var labels = [Count]string{
	IntoPage:  "Into Page",
	OutOfPage: "Out of Page",
	Left:      "Left",
	Right:     "Right",
	Up:        "Up",
	Down:      "Down",
	None:      "None",
}

var glyphs = [Count]string{
	IntoPage:  "⊗",
	OutOfPage: "⊙",
	Left:      "←",
	Right:     "→",
	Up:        "↑",
	Down:      "↓",
	None:      "∅",
}

// All returns the seven directions in declaration order.
func All() []Direction {
	return []Direction{IntoPage, OutOfPage, Left, Right, Up, Down, None}
}

// Normal returns the six non-None directions.
func Normal() []Direction {
	return []Direction{IntoPage, OutOfPage, Left, Right, Up, Down}
}

// ZAxis returns the directions perpendicular to the page.
func ZAxis() []Direction {
	return []Direction{IntoPage, OutOfPage}
}

// XAxis returns the horizontal directions.
func XAxis() []Direction {
	return []Direction{Left, Right}
}

// YAxis returns the vertical directions.
func YAxis() []Direction {
	return []Direction{Up, Down}
}

// XYPlane returns the four in-plane directions.
func XYPlane() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// Valid reports whether d is one of the seven declared directions.
func (d Direction) Valid() bool {
	return d >= IntoPage && d <= None
}

// Vector returns the canonical vector of d. It panics for values outside the
// enumeration: those can only come from a programming error.
func (d Direction) Vector() vector.Vec {
	if !d.Valid() {
		panic(fmt.Sprintf("direction: invalid direction %d", int(d)))
	}
	return vectors[d]
}

// IsXAxis reports whether d is Left or Right.
func (d Direction) IsXAxis() bool {
	return d == Left || d == Right
}

// IsYAxis reports whether d is Up or Down.
func (d Direction) IsYAxis() bool {
	return d == Up || d == Down
}

// IsZAxis reports whether d is IntoPage or OutOfPage.
func (d Direction) IsZAxis() bool {
	return d == IntoPage || d == OutOfPage
}

// Axis returns the axis d lies on, AxisNone for None.
func (d Direction) Axis() Axis {
	switch {
	case d.IsXAxis():
		return AxisX
	case d.IsYAxis():
		return AxisY
	case d.IsZAxis():
		return AxisZ
	default:
		return AxisNone
	}
}

// Opposite returns the direction pointing the other way. None is its own
// opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case IntoPage:
		return OutOfPage
	case OutOfPage:
		return IntoPage
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return None
	}
}

// String returns the stable kebab-case name, e.g. "out-of-page".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return names[d]
}

// Label returns a human-readable name, e.g. "Out of Page".
func (d Direction) Label() string {
	if !d.Valid() {
		return d.String()
	}
	return labels[d]
}

// Glyph returns a single-cell symbol for terminal rendering.
func (d Direction) Glyph() string {
	if !d.Valid() {
		return "?"
	}
	return glyphs[d]
}

// Parse converts a name into a Direction. It accepts the kebab-case names
// returned by String as well as the CamelCase constant names, ignoring case.
func Parse(s string) (Direction, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	for _, d := range All() {
		if strings.ReplaceAll(names[d], "-", "") == norm {
			return d, nil
		}
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(names[d]), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
