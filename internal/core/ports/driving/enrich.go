package driving

import (
	"context"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// EnrichService adds derived SEO columns to a table and builds the
// keyword report for each selected column.
type EnrichService interface {
	// Enrich validates the options against the table and processes each
	// selected column in order. The input table is not modified.
	Enrich(ctx context.Context, table *domain.Table, opts domain.EnrichOptions) (*domain.EnrichResult, error)
}
