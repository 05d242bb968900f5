package direction

import "github.com/abhisek/rhr/internal/vector"

// Tolerance is the per-component slack used when matching normalized
// superposition results against the vector table.
const Tolerance = 1e-9

// FromVector returns the direction whose canonical vector equals v exactly,
// scanning in declaration order. ok is false when nothing matches.
func FromVector(v vector.Vec) (d Direction, ok bool) {
	for _, d := range All() {
		if vector.Equal(vectors[d], v) {
			return d, true
		}
	}
	return None, false
}

// Nearest is FromVector with a per-component tolerance, for vectors that went
// through vector.Unit and may carry rounding error.
func Nearest(v vector.Vec, tol float64) (d Direction, ok bool) {
	if d, ok := FromVector(v); ok {
		return d, true
	}
	for _, d := range All() {
		if vector.ApproxEqual(vectors[d], v, tol) {
			return d, true
		}
	}
	return None, false
}
