package schema

import (
	"fmt"
	"sort"
)

// Registry is a named collection of schemas, typically the shapes compiled
// into one program.
type Registry struct {
	byName map[string]*Schema
}

// NewRegistry returns a registry holding the given schemas.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add registers s. Registering a different schema under a taken name fails;
// registering an equal schema again is a no-op.
func (r *Registry) Add(s *Schema) error {
	if prev, ok := r.byName[s.Name()]; ok {
		if prev.Equal(s) {
			return nil
		}

		return fmt.Errorf("shape %s already registered as %s", s.Name(), prev)
	}

	r.byName[s.Name()] = s

	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Schemas returns the registered schemas sorted by name.
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, 0, len(r.byName))
	for _, s := range r.byName {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}
