package domain

import (
	"fmt"
	"math"
	"strings"
)

// RawField is the value of one table cell. A field that is not Present is
// missing (null) and is skipped by column processing.
type RawField struct {
	Text    string
	Present bool
}

// Missing returns a missing field.
func Missing() RawField {
	return RawField{}
}

// Text returns a present field holding s.
func Text(s string) RawField {
	return RawField{Text: s, Present: true}
}

// FieldOf coerces an arbitrary value into a field using its textual form.
// nil and NaN are treated as missing.
func FieldOf(v any) RawField {
	switch x := v.(type) {
	case nil:
		return Missing()
	case RawField:
		return x
	case string:
		return Text(x)
	case float64:
		if math.IsNaN(x) {
			return Missing()
		}
	case float32:
		if math.IsNaN(float64(x)) {
			return Missing()
		}
	case fmt.Stringer:
		return Text(x.String())
	}
	return Text(fmt.Sprint(v))
}

// Table is an in-memory table: a header of column names and rows of fields.
// Rows are always as wide as the header.
type Table struct {
	Columns []string
	Rows    [][]RawField
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// AppendRow adds a row, padding short rows with missing fields and
// dropping fields beyond the header width.
func (t *Table) AppendRow(fields ...RawField) {
	row := make([]RawField, len(t.Columns))
	copy(row, fields)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the first column with the given name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the fields of the named column in row order.
func (t *Table) Column(name string) ([]RawField, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]RawField, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out, true
}

// SetColumn replaces the named column, or appends it when it does not exist.
// values shorter than the table are padded with missing fields.
func (t *Table) SetColumn(name string, values []RawField) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		idx = len(t.Columns) - 1
	}
	for i := range t.Rows {
		for len(t.Rows[i]) <= idx {
			t.Rows[i] = append(t.Rows[i], Missing())
		}
		var v RawField
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i][idx] = v
	}
}

// Head returns a copy of the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := NewTable(t.Columns...)
	for _, row := range t.Rows[:n] {
		head.AppendRow(row...)
	}
	return head
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return t.Head(-1)
}

// Records renders the table as string records, header first.
// Missing fields render as the empty string.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	header := make([]string, len(t.Columns))
	copy(header, t.Columns)
	out = append(out, header)
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i := range rec {
			if i < len(row) && row[i].Present {
				rec[i] = row[i].Text
			}
		}
		out = append(out, rec)
	}
	return out
}

// DerivedColumnBase converts a source column name into the prefix used for
// derived columns: spaces become underscores and the result is lowercased.
func DerivedColumnBase(column string) string {
	return strings.ToLower(strings.ReplaceAll(column, " ", "_"))
}

// SEOTagsColumn returns the name of the derived SEO tags column.
func SEOTagsColumn(column string) string {
	return DerivedColumnBase(column) + "_seo_tags"
}

// MetaDescriptionColumn returns the name of the derived meta description column.
func MetaDescriptionColumn(column string) string {
	return DerivedColumnBase(column) + "_meta_description"
}
