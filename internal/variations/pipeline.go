// Package variations provides the tag variation pipeline and its registry.
package variations

import (
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.VariationPipeline = (*Pipeline)(nil)

// Pipeline chains multiple VariationGenerators. Every generator sees the
// original tag, never another generator's output.
type Pipeline struct {
	generators []driven.VariationGenerator
}

// NewPipeline creates a new variation pipeline with the given generators.
// Generators are executed in the order provided.
func NewPipeline(generators ...driven.VariationGenerator) *Pipeline {
	return &Pipeline{
		generators: generators,
	}
}

// Expand returns tag and all of its variations. An empty tag yields an
// empty set.
func (p *Pipeline) Expand(tag string) domain.TagSet {
	set := domain.NewTagSet(tag)
	if tag == "" {
		return set
	}

	for _, g := range p.generators {
		for _, v := range g.Generate(tag) {
			set.Add(v)
		}
	}

	return set
}

// Add appends a generator to the pipeline.
func (p *Pipeline) Add(generator driven.VariationGenerator) {
	p.generators = append(p.generators, generator)
}

// Len returns the number of generators in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.generators)
}

// Names returns the generator names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.generators))
	for i, g := range p.generators {
		names[i] = g.Name()
	}
	return names
}
