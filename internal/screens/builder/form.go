package builder

import (
	"slices"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games/dualwire"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/problem"
)

// field is one editable row of a problem state. A field is either a choice
// among labelled options or a number.
type field struct {
	label   string
	numeric bool

	options func(problem.State) []string
	index   func(problem.State) int
	pick    func(problem.State, int) problem.State

	value    func(problem.State) float64
	setValue func(problem.State, float64) problem.State
}

// form describes how to edit one problem type's state.
type form struct {
	fields []field
	// normalize repairs dependent fields after an edit and clamps the point.
	normalize func(problem.State) problem.State
}

func dirField[S problem.State](label string, opts func(S) []direction.Direction,
	get func(S) direction.Direction, set func(*S, direction.Direction)) field {
	return field{
		label: label,
		options: func(st problem.State) []string {
			var out []string
			for _, d := range opts(st.(S)) {
				out = append(out, d.Glyph()+" "+d.Label())
			}
			return out
		},
		index: func(st problem.State) int {
			return max(slices.Index(opts(st.(S)), get(st.(S))), 0)
		},
		pick: func(st problem.State, i int) problem.State {
			s := st.(S)
			set(&s, opts(s)[i])
			return s
		},
	}
}

func numField[S problem.State](label string, get func(S) float64, set func(*S, float64)) field {
	return field{
		label:   label,
		numeric: true,
		value:   func(st problem.State) float64 { return get(st.(S)) },
		setValue: func(st problem.State, v float64) problem.State {
			s := st.(S)
			set(&s, v)
			return s
		},
	}
}

// valid returns d when it is in allowed and the first allowed value otherwise.
func valid(d direction.Direction, allowed []direction.Direction) direction.Direction {
	if slices.Contains(allowed, d) || len(allowed) == 0 {
		return d
	}
	return allowed[0]
}

var forms = map[string]form{
	wirefield.ID: {
		fields: []field{
			dirField("Current",
				func(wirefield.State) []direction.Direction { return direction.Normal() },
				func(s wirefield.State) direction.Direction { return s.Current },
				func(s *wirefield.State, d direction.Direction) { s.Current = d }),
			dirField("Radius",
				func(s wirefield.State) []direction.Direction { return wirefield.RadiusDirections(s.Current) },
				func(s wirefield.State) direction.Direction { return s.Radius },
				func(s *wirefield.State, d direction.Direction) { s.Radius = d }),
			numField("px",
				func(s wirefield.State) float64 { return s.PX },
				func(s *wirefield.State, v float64) { s.PX = v }),
			numField("py",
				func(s wirefield.State) float64 { return s.PY },
				func(s *wirefield.State, v float64) { s.PY = v }),
		},
		normalize: func(st problem.State) problem.State {
			s := st.(wirefield.State)
			s.Radius = valid(s.Radius, wirefield.RadiusDirections(s.Current))
			return wirefield.ClampPoint(s)
		},
	},
	dualwire.ID: {
		fields: []field{
			dirField("Current 1",
				func(dualwire.State) []direction.Direction { return direction.Normal() },
				func(s dualwire.State) direction.Direction { return s.Current1 },
				func(s *dualwire.State, d direction.Direction) { s.Current1 = d }),
			dirField("Current 2",
				func(s dualwire.State) []direction.Direction { return dualwire.SecondCurrents(s.Current1) },
				func(s dualwire.State) direction.Direction { return s.Current2 },
				func(s *dualwire.State, d direction.Direction) { s.Current2 = d }),
			dirField("Wire 2 side",
				relativeDirections,
				func(s dualwire.State) direction.Direction { return s.Relative },
				func(s *dualwire.State, d direction.Direction) { s.Relative = d }),
			dirField("Radius",
				func(s dualwire.State) []direction.Direction {
					return dualwire.RadiusDirections(s.Current1, s.Relative)
				},
				func(s dualwire.State) direction.Direction { return s.Radius },
				func(s *dualwire.State, d direction.Direction) { s.Radius = d }),
			numField("px",
				func(s dualwire.State) float64 { return s.PX },
				func(s *dualwire.State, v float64) { s.PX = v }),
			numField("py",
				func(s dualwire.State) float64 { return s.PY },
				func(s *dualwire.State, v float64) { s.PY = v }),
		},
		normalize: func(st problem.State) problem.State {
			s := st.(dualwire.State)
			s.Current2 = valid(s.Current2, dualwire.SecondCurrents(s.Current1))
			s.Relative = valid(s.Relative, relativeDirections(s))
			s.Radius = valid(s.Radius, dualwire.RadiusDirections(s.Current1, s.Relative))
			return dualwire.ClampPoint(s)
		},
	},
	particle.ID: {
		fields: []field{
			dirField("Field",
				func(particle.State) []direction.Direction { return direction.All() },
				func(s particle.State) direction.Direction { return s.Field },
				func(s *particle.State, d direction.Direction) { s.Field = d }),
			{
				label:   "Charge",
				options: func(problem.State) []string { return []string{"+ Positive", "− Negative"} },
				index: func(st problem.State) int {
					if st.(particle.State).Positive {
						return 0
					}
					return 1
				},
				pick: func(st problem.State, i int) problem.State {
					s := st.(particle.State)
					s.Positive = i == 0
					return s
				},
			},
			dirField("Velocity",
				func(particle.State) []direction.Direction { return direction.XYPlane() },
				func(s particle.State) direction.Direction { return s.Velocity },
				func(s *particle.State, d direction.Direction) { s.Velocity = d }),
		},
		normalize: func(st problem.State) problem.State {
			s := st.(particle.State)
			s.Velocity = valid(s.Velocity, direction.XYPlane())
			return s
		},
	},
}

// relativeDirections is where the second wire sits: only cross-sections can
// be placed beside or above each other.
func relativeDirections(s dualwire.State) []direction.Direction {
	if s.Current1.IsZAxis() {
		return direction.XYPlane()
	}
	return []direction.Direction{direction.None}
}
