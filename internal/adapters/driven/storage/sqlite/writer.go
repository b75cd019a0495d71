package sqlite

import (
	"context"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer exports enrichment runs to SQLite files. Writing to an existing
// database adds the run to it.
type Writer struct{}

// NewWriter creates an SQLite writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns domain.OutputFormatSQLite.
func (w *Writer) Format() domain.OutputFormat {
	return domain.OutputFormatSQLite
}

// Write stores result in the database at path.
func (w *Writer) Write(ctx context.Context, path string, result *domain.EnrichResult) error {
	store, err := NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveRun(ctx, result)
}
