// Package jsonfile writes enriched tables as JSON documents.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// document is the JSON layout of an enrichment run.
type document struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Columns   []columnKeywords `json:"columns"`
	Rows      []row            `json:"rows"`
}

type columnKeywords struct {
	Column   string   `json:"column"`
	Tags     []string `json:"tags"`
	Primary  []string `json:"primary"`
	LongTail []string `json:"long_tail"`
}

// row is one table row encoded as an object whose keys keep column order.
// Missing fields encode as null.
type row struct {
	columns []string
	fields  []domain.RawField
}

// MarshalJSON implements json.Marshaler.
func (r row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if i >= len(r.fields) || !r.fields[i].Present {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(r.fields[i].Text)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Writer stores the enriched table and keyword report as one JSON document.
type Writer struct{}

// NewWriter creates a JSON writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns domain.OutputFormatJSON.
func (w *Writer) Format() domain.OutputFormat {
	return domain.OutputFormatJSON
}

// Write stores result at path, replacing any existing file.
func (w *Writer) Write(ctx context.Context, path string, result *domain.EnrichResult) error {
	if result == nil || result.Table == nil {
		return fmt.Errorf("%w: nothing to write", domain.ErrInvalidInput)
	}

	doc := document{
		ID:        result.ID,
		CreatedAt: result.CreatedAt,
		Columns:   make([]columnKeywords, 0, len(result.Columns)),
		Rows:      make([]row, 0, result.Table.Len()),
	}
	for _, ck := range result.Columns {
		doc.Columns = append(doc.Columns, columnKeywords{
			Column:   ck.Column,
			Tags:     nonNil(ck.Tags),
			Primary:  nonNil(ck.Primary),
			LongTail: nonNil(ck.LongTail),
		})
	}
	for _, fields := range result.Table.Rows {
		doc.Rows = append(doc.Rows, row{columns: result.Table.Columns, fields: fields})
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil { //nolint:gosec // output is user data, not secret
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
