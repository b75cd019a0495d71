package variations

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// BuilderFunc creates a VariationGenerator.
type BuilderFunc func() driven.VariationGenerator

// Registry maps generator names to their builders.
// It allows the pipeline to be assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a generator builder to the registry.
// Name should be unique and match the generator's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a generator by name.
// Returns ErrUnknownVariation if the name is not registered.
func (r *Registry) Build(name string) (driven.VariationGenerator, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVariation, name)
	}
	return builder(), nil
}

// BuildPipeline creates a pipeline from generator names, in order.
// Repeated names are only built once.
func (r *Registry) BuildPipeline(names []string) (*Pipeline, error) {
	p := NewPipeline()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		g, err := r.Build(name)
		if err != nil {
			return nil, err
		}
		p.Add(g)
	}
	return p, nil
}

// Has returns true if a generator with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered generator names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
