// Package xlsxfile reads and writes tables as Excel workbooks using excelize.
package xlsxfile

import (
	"context"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Reader and Writer implement the interfaces.
var (
	_ driven.TableReader = (*Reader)(nil)
	_ driven.TableWriter = (*Writer)(nil)
)

// Sheet names used by the writer.
const (
	DataSheet     = "Data"
	KeywordsSheet = "Keywords"
)

// Reader loads one worksheet of an XLSX workbook.
type Reader struct{}

// NewReader creates an XLSX reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extensions returns the handled file extensions.
func (r *Reader) Extensions() []string {
	return []string{"xlsx", "xlsm"}
}

// Read parses the selected worksheet (the first one when opts.Sheet is empty).
// The first row is the header.
func (r *Reader) Read(ctx context.Context, path string, opts driven.ReadOptions) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet := opts.Sheet
	switch {
	case sheet == "" && len(sheets) > 0:
		sheet = sheets[0]
	case sheet == "":
		return domain.NewTable(), nil
	case !slices.Contains(sheets, sheet):
		return nil, fmt.Errorf("%w: sheet %q (available: %v)", domain.ErrNotFound, sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return tables.Build(ctx, rows, tables.NewMissingMatcher(opts.MissingValues))
}

// Writer stores enriched tables as a workbook with a Data sheet holding the
// table and a Keywords sheet listing each column's ranked tags.
type Writer struct{}

// NewWriter creates an XLSX writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns domain.OutputFormatXLSX.
func (w *Writer) Format() domain.OutputFormat {
	return domain.OutputFormatXLSX
}

// Write stores result at path, replacing any existing file.
func (w *Writer) Write(ctx context.Context, path string, result *domain.EnrichResult) error {
	if result == nil || result.Table == nil {
		return fmt.Errorf("%w: nothing to write", domain.ErrInvalidInput)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		return fmt.Errorf("name data sheet: %w", err)
	}
	if err := writeData(ctx, f, result.Table); err != nil {
		return err
	}

	if _, err := f.NewSheet(KeywordsSheet); err != nil {
		return fmt.Errorf("create keywords sheet: %w", err)
	}
	if err := writeKeywords(f, result.Columns); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func writeData(ctx context.Context, f *excelize.File, table *domain.Table) error {
	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := setRow(f, DataSheet, 1, header); err != nil {
		return err
	}

	for i, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		cells := make([]any, len(row))
		for j, field := range row {
			if field.Present {
				cells[j] = field.Text
			}
		}
		if err := setRow(f, DataSheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeKeywords(f *excelize.File, columns []domain.ColumnKeywords) error {
	if err := setRow(f, KeywordsSheet, 1, []any{"column", "rank", "tag", "bucket"}); err != nil {
		return err
	}
	line := 2
	for _, ck := range columns {
		for i, tag := range ck.Tags {
			if err := setRow(f, KeywordsSheet, line, []any{ck.Column, i + 1, tag, ck.BucketOf(i)}); err != nil {
				return err
			}
			line++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
