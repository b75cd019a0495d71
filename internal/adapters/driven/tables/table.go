package tables

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 1024

// MissingMatcher reports whether a raw cell value marks a missing field.
type MissingMatcher struct {
	markers map[string]struct{}
}

// NewMissingMatcher creates a matcher for the given markers.
// A nil list uses domain.DefaultMissingValues.
func NewMissingMatcher(markers []string) MissingMatcher {
	if markers == nil {
		markers = domain.DefaultMissingValues()
	}
	m := MissingMatcher{markers: make(map[string]struct{}, len(markers))}
	for _, v := range markers {
		m.markers[v] = struct{}{}
	}
	return m
}

// IsMissing reports whether value is one of the markers.
func (m MissingMatcher) IsMissing(value string) bool {
	_, ok := m.markers[value]
	return ok
}

// Field converts a raw cell value into a field.
func (m MissingMatcher) Field(value string) domain.RawField {
	if m.IsMissing(value) {
		return domain.Missing()
	}
	return domain.Text(value)
}

// Header normalises a header row: a leading byte order mark is dropped,
// blank names become "Unnamed: {i}" and repeated names get ".1", ".2", ...
// suffixes so every column can be addressed by name.
func Header(record []string) []string {
	cols := make([]string, len(record))
	used := make(map[string]bool, len(record))
	suffix := make(map[string]int)
	for i, name := range record {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			base := name
			for used[name] {
				suffix[base]++
				name = fmt.Sprintf("%s.%d", base, suffix[base])
			}
		}
		used[name] = true
		cols[i] = name
	}
	return cols
}

// Build turns string records, header first, into a table.
// Rows are padded or truncated to the header width.
func Build(ctx context.Context, records [][]string, missing MissingMatcher) (*domain.Table, error) {
	if len(records) == 0 {
		return domain.NewTable(), nil
	}

	table := domain.NewTable(Header(records[0])...)
	for i, rec := range records[1:] {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		fields := make([]domain.RawField, len(rec))
		for j, v := range rec {
			fields[j] = missing.Field(v)
		}
		table.AppendRow(fields...)
	}
	return table, nil
}
