package driven

import "github.com/custodia-labs/tagsmith/internal/core/domain"

// VariationGenerator produces lexical variants of a normalised tag
// (e.g., spacing, hyphenation, pluralisation).
type VariationGenerator interface {
	// Name returns the generator name for logging and configuration.
	Name() string

	// Generate returns the variants of tag, excluding tag itself.
	// A generator may return nil when it does not apply.
	Generate(tag string) []string
}

// VariationPipeline chains VariationGenerators.
type VariationPipeline interface {
	// Expand returns tag together with every variant produced by the
	// generators. The result never contains the empty string.
	Expand(tag string) domain.TagSet
}
