package statecodec

import (
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games/dualwire"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
)

// Schema is a named JSON Schema for one problem type's state.
type Schema struct {
	Name       string
	Definition map[string]any
}

func directionEnum(ds []direction.Direction) map[string]any {
	names := make([]any, len(ds))
	for i, d := range ds {
		names[i] = d.String()
	}
	return map[string]any{"type": "string", "enum": names}
}

func coordinate() map[string]any {
	return map[string]any{"type": "number", "minimum": 0, "maximum": 400}
}

// WireFieldSchema describes wirefield.State.
var WireFieldSchema = &Schema{
	Name: wirefield.ID,
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"currentDirection": directionEnum(direction.Normal()),
			"radiusDirection":  directionEnum(direction.All()),
			"px":               coordinate(),
			"py":               coordinate(),
		},
		"required":             []any{"currentDirection", "radiusDirection", "px", "py"},
		"additionalProperties": false,
	},
}

// DualWireSchema describes dualwire.State. relCurrentDirection may be
// omitted for in-page wires.
var DualWireSchema = &Schema{
	Name: dualwire.ID,
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"currentDirection1":   directionEnum(direction.Normal()),
			"currentDirection2":   directionEnum(direction.Normal()),
			"relCurrentDirection": directionEnum(direction.All()),
			"radiusDirection":     directionEnum(direction.All()),
			"px":                  coordinate(),
			"py":                  coordinate(),
		},
		"required":             []any{"currentDirection1", "currentDirection2", "radiusDirection", "px", "py"},
		"additionalProperties": false,
	},
}

// ParticleSchema describes particle.State.
var ParticleSchema = &Schema{
	Name: particle.ID,
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vectorFieldDirection": directionEnum(direction.All()),
			"particleCharge":       map[string]any{"type": "boolean"},
			"particleVelocity":     directionEnum(direction.XYPlane()),
		},
		"required":             []any{"vectorFieldDirection", "particleCharge", "particleVelocity"},
		"additionalProperties": false,
	},
}
