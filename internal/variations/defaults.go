package variations

import (
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/variations/plural"
	"github.com/custodia-labs/tagsmith/internal/variations/spacing"
)

// RegisterDefaults registers all built-in generators with the registry.
// Call this during application initialisation to enable standard variations.
func RegisterDefaults(r *Registry) {
	r.Register(domain.VariationCompact, func() driven.VariationGenerator { return spacing.NewCompact() })
	r.Register(domain.VariationHyphenate, func() driven.VariationGenerator { return spacing.NewHyphenate() })
	r.Register(domain.VariationPlural, func() driven.VariationGenerator { return plural.New() })
}

// DefaultPipeline returns the pipeline for the default variation set:
// compact and hyphenated forms for multi-word tags, then the plural toggle.
func DefaultPipeline() *Pipeline {
	return NewPipeline(spacing.NewCompact(), spacing.NewHyphenate(), plural.New())
}
