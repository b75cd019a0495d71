package driven

import (
	"io"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// ReportRenderer renders the keyword report of an enrichment run.
type ReportRenderer interface {
	// Render writes the report for result to w.
	Render(w io.Writer, result *domain.EnrichResult) error
}
