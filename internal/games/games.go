// Package games is the registry of problem types.
package games

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/rhr/internal/games/dualwire"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/problem"
)

// ErrUnknownGenerator is returned by Lookup for an unregistered ID.
var ErrUnknownGenerator = errors.New("unknown problem type")

// registry is built once; generators carry no mutable state.
var registry = []problem.Generator{
	particle.New(),
	wirefield.New(),
	dualwire.New(),
}

// All returns every registered generator in display order.
func All() []problem.Generator {
	return slices.Clone(registry)
}

// IDs returns the registered IDs in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, g := range registry {
		ids[i] = g.ID()
	}
	return ids
}

// Lookup returns the generator with the given ID.
func Lookup(id string) (problem.Generator, error) {
	for _, g := range registry {
		if g.ID() == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, id)
}

// ForState returns the generator that owns s.
func ForState(s problem.State) (problem.Generator, error) {
	if s == nil {
		return nil, problem.ErrStateMismatch
	}
	return Lookup(s.ProblemType())
}

// ParsePool splits a comma-separated list of IDs, trimming blanks.
func ParsePool(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResolvePool keeps the known IDs of raw in the order given, dropping unknown
// ones and duplicates. An empty result falls back to every registered ID.
// changed reports whether the normalized pool differs from raw, so callers
// can rewrite the value they were given.
func ResolvePool(raw string) (ids []string, changed bool) {
	requested := ParsePool(raw)
	for _, id := range requested {
		if slices.Contains(ids, id) {
			continue
		}
		if _, err := Lookup(id); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = IDs()
	}
	return ids, strings.Join(ids, ",") != raw
}

// Pool resolves ids to generators, skipping unknown ones.
func Pool(ids []string) []problem.Generator {
	var out []problem.Generator
	for _, id := range ids {
		if g, err := Lookup(id); err == nil {
			out = append(out, g)
		}
	}
	return out
}

// Pick chooses a generator uniformly from pool, or from the full registry
// when pool is empty.
func Pick(pool []problem.Generator, r problem.Rand) problem.Generator {
	if len(pool) == 0 {
		pool = registry
	}
	return problem.Pick(r, pool)
}
