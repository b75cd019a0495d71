package driving

import (
	"context"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// TableService loads and stores table files, choosing the adapter by
// file extension.
type TableService interface {
	// Load reads the table at path. sheet selects a worksheet for workbook
	// formats and may be empty.
	Load(ctx context.Context, path, sheet string) (*domain.Table, error)

	// Save writes an enriched table to path and returns the path written.
	// When path has no extension the configured output format's extension
	// is appended. An empty path writes domain.DefaultOutputBaseName in the
	// current directory.
	Save(ctx context.Context, path string, result *domain.EnrichResult) (string, error)

	// SupportedInputs returns the readable file extensions.
	SupportedInputs() []string
}
