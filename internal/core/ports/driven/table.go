package driven

import (
	"context"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// ReadOptions controls how a table file is parsed.
type ReadOptions struct {
	// Sheet selects a worksheet by name for workbook formats.
	// Empty means the first sheet.
	Sheet string

	// MissingValues lists cell values read as missing.
	MissingValues []string
}

// TableReader loads tables from files of one or more formats.
type TableReader interface {
	// Extensions returns the file extensions (without dot) this reader handles.
	Extensions() []string

	// Read parses the file at path into a table.
	Read(ctx context.Context, path string, opts ReadOptions) (*domain.Table, error)
}

// TableWriter writes enriched tables to files of one format.
type TableWriter interface {
	// Format returns the output format this writer produces.
	Format() domain.OutputFormat

	// Write stores the enriched table and its run metadata at path.
	Write(ctx context.Context, path string, result *domain.EnrichResult) error
}
