// Package plural provides the naive suffix-based plural toggle.
//
// The rule is deliberately not linguistic: a trailing "s" is removed,
// otherwise one is appended. "bus" becomes "bu" and "child" becomes
// "childs"; existing outputs depend on this exact behaviour.
package plural

import (
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.VariationGenerator = (*Generator)(nil)

// Generator toggles a trailing "s".
type Generator struct{}

// New creates a plural toggle generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the generator name.
func (g *Generator) Name() string {
	return domain.VariationPlural
}

// Generate returns the singular form of a tag ending in "s", or the plural
// form otherwise. A lone "s" has no non-empty singular and yields nil.
func (g *Generator) Generate(tag string) []string {
	if tag == "" {
		return nil
	}
	if strings.HasSuffix(tag, "s") {
		singular := strings.TrimSuffix(tag, "s")
		if singular == "" {
			return nil
		}
		return []string{singular}
	}
	return []string{tag + "s"}
}
