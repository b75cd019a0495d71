// Package spacing provides variation generators for multi-word tags.
package spacing

import (
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.VariationGenerator = (*Generator)(nil)

// Generator replaces every space in a tag with a fixed separator.
// Tags without a space produce no variation.
type Generator struct {
	name      string
	separator string
}

// NewCompact creates a generator that removes spaces ("big data" -> "bigdata").
func NewCompact() *Generator {
	return &Generator{name: domain.VariationCompact, separator: ""}
}

// NewHyphenate creates a generator that hyphenates spaces ("big data" -> "big-data").
func NewHyphenate() *Generator {
	return &Generator{name: domain.VariationHyphenate, separator: "-"}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return g.name
}

// Generate returns the tag with spaces replaced, or nil if the tag has none.
func (g *Generator) Generate(tag string) []string {
	if !strings.Contains(tag, " ") {
		return nil
	}
	return []string{strings.ReplaceAll(tag, " ", g.separator)}
}
