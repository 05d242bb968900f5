// Package statecodec serializes problem states as JSON so they can be saved,
// shared and posted back for rendering or grading.
//
// A state travels in an envelope naming its problem type:
//
//	{"type": "wire-field", "state": {"currentDirection": "out-of-page", ...}}
//
// Decoding checks the state against the type's JSON Schema and then against
// the generator's own domain rules.
package statecodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/games/dualwire"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/problem"
)

// ErrUnknownType is returned for an envelope whose type is not registered.
var ErrUnknownType = errors.New("unknown state type")

// InvalidError is returned when a state fails schema or domain validation.
type InvalidError struct {
	Type    string
	Content json.RawMessage
	Err     error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid %s state: %v", e.Type, e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

// Envelope is the wire form of a state.
type Envelope struct {
	Type  string          `json:"type"`
	State json.RawMessage `json:"state"`
}

type decoder func(json.RawMessage) (problem.State, error)

func decodeInto[T problem.State](raw json.RawMessage) (problem.State, error) {
	var s T
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

type codec struct {
	schema *Schema
	decode decoder
}

var codecs = map[string]codec{
	wirefield.ID: {WireFieldSchema, decodeInto[wirefield.State]},
	dualwire.ID:  {DualWireSchema, decodeDualWire},
	particle.ID:  {ParticleSchema, decodeInto[particle.State]},
}

// decodeDualWire treats a missing relCurrentDirection as None.
func decodeDualWire(raw json.RawMessage) (problem.State, error) {
	s := dualwire.State{Relative: direction.None}
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Encode wraps s in an envelope.
func Encode(s problem.State) ([]byte, error) {
	if s == nil {
		return nil, problem.ErrStateMismatch
	}
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal %s state: %w", s.ProblemType(), err)
	}
	return json.Marshal(Envelope{Type: s.ProblemType(), State: body})
}

// EncodeIndent is Encode with indentation, for files meant to be edited.
func EncodeIndent(s problem.State) ([]byte, error) {
	raw, err := Encode(s)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return json.MarshalIndent(env, "", "  ")
}

// Decode parses an envelope and returns the validated state.
func Decode(raw []byte) (problem.State, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse state envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrUnknownType)
	}
	return DecodeState(env.Type, env.State)
}

// DecodeState decodes a bare state body of the given problem type.
func DecodeState(problemType string, raw json.RawMessage) (problem.State, error) {
	c, ok := codecs[problemType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, problemType)
	}
	g, err := games.Lookup(problemType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, problemType)
	}

	if err := Validate(c.schema, raw); err != nil {
		return nil, &InvalidError{Type: problemType, Content: raw, Err: err}
	}

	s, err := c.decode(raw)
	if err != nil {
		return nil, &InvalidError{Type: problemType, Content: raw, Err: err}
	}
	if err := g.Validate(s); err != nil {
		return nil, &InvalidError{Type: problemType, Content: raw, Err: err}
	}
	return s, nil
}

// SchemaFor returns the schema of a problem type.
func SchemaFor(problemType string) (*Schema, bool) {
	c, ok := codecs[problemType]
	if !ok {
		return nil, false
	}
	return c.schema, true
}

// Validate checks raw JSON against schema.
func Validate(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON, not Go maps with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
