// Package csvfile reads and writes tables as CSV files with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Reader and Writer implement the interfaces.
var (
	_ driven.TableReader = (*Reader)(nil)
	_ driven.TableWriter = (*Writer)(nil)
)

// Reader loads CSV files. Rows may be ragged; short rows are padded
// with missing fields and long rows are truncated to the header.
type Reader struct{}

// NewReader creates a CSV reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extensions returns the handled file extensions.
func (r *Reader) Extensions() []string {
	return []string{"csv"}
}

// Read parses the CSV file at path.
func (r *Reader) Read(ctx context.Context, path string, opts driven.ReadOptions) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	table, err := r.Parse(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse reads CSV data from in. opts.Sheet is ignored.
func (r *Reader) Parse(ctx context.Context, in io.Reader, opts driven.ReadOptions) (*domain.Table, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	return tables.Build(ctx, records, tables.NewMissingMatcher(opts.MissingValues))
}

// Writer stores enriched tables as CSV. Missing fields are written empty.
type Writer struct{}

// NewWriter creates a CSV writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns domain.OutputFormatCSV.
func (w *Writer) Format() domain.OutputFormat {
	return domain.OutputFormatCSV
}

// Write stores result.Table at path, replacing any existing file.
func (w *Writer) Write(ctx context.Context, path string, result *domain.EnrichResult) error {
	if result == nil || result.Table == nil {
		return fmt.Errorf("%w: nothing to write", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(result.Table.Records()); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
