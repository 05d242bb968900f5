// Package vector implements the small amount of 3D vector algebra needed to
// derive field and force directions: cross products, sums, scaling and
// normalization over right-handed screen coordinates (x right, y up, z out
// of the page).
package vector

import "math"

// Vec is a 3-component vector.
type Vec [3]float64

// Zero is the zero vector.
var Zero = Vec{}

// New builds a Vec from integer components.
func New(x, y, z int) Vec {
	return Vec{float64(x), float64(y), float64(z)}
}

// Cross returns the right-hand-rule cross product a × b.
func Cross(a, b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Equal reports exact component-wise equality.
func Equal(a, b Vec) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func ApproxEqual(a, b Vec, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Add returns the component-wise sum a + b.
func Add(a, b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale returns v multiplied by s.
func Scale(v Vec, s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Flip returns -v.
func Flip(v Vec) Vec {
	return Scale(v, -1)
}

// Dot returns the scalar product of a and b.
func Dot(a, b Vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Len returns the Euclidean length of v.
func Len(v Vec) float64 {
	return math.Sqrt(Dot(v, v))
}

// Unit returns v scaled to length 1. The zero vector is returned unchanged:
// it stands for "no net field" rather than an error.
func Unit(v Vec) Vec {
	if v.IsZero() {
		return Zero
	}
	l := Len(v)
	return Vec{v[0] / l, v[1] / l, v[2] / l}
}

// IsZero reports whether every component of v is exactly zero.
func (v Vec) IsZero() bool {
	return Equal(v, Zero)
}
