// Package report renders keyword reports of enrichment runs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure renderers implement the interface.
var (
	_ driven.ReportRenderer = (*TextRenderer)(nil)
	_ driven.ReportRenderer = (*JSONRenderer)(nil)
)

// Title is the heading of the text report.
const Title = "# SEO-Optimized Tags Report"

// TextRenderer writes the Markdown-style text report:
//
//	# SEO-Optimized Tags Report
//
//	## Tags from {column}
//	### Primary Keywords
//	{primary, comma separated}
//
//	### Long-tail Keywords
//	{long tail, comma separated}
//
//	### All Keywords
//	{every tag, one per line}
type TextRenderer struct{}

// NewTextRenderer creates a text report renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes the report for result to w.
func (r *TextRenderer) Render(w io.Writer, result *domain.EnrichResult) error {
	if result == nil {
		return fmt.Errorf("%w: no result to render", domain.ErrInvalidInput)
	}

	var b strings.Builder
	b.WriteString(Title + "\n\n")
	for _, ck := range result.Columns {
		fmt.Fprintf(&b, "## Tags from %s\n", ck.Column)
		b.WriteString("### Primary Keywords\n")
		b.WriteString(strings.Join(ck.Primary, ", ") + "\n\n")
		b.WriteString("### Long-tail Keywords\n")
		b.WriteString(strings.Join(ck.LongTail, ", ") + "\n\n")
		b.WriteString("### All Keywords\n")
		b.WriteString(strings.Join(ck.Tags, "\n") + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSONRenderer writes the keyword report as an indented JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON report renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type jsonColumn struct {
	Column   string   `json:"column"`
	Count    int      `json:"count"`
	Primary  []string `json:"primary"`
	LongTail []string `json:"long_tail"`
	Tags     []string `json:"tags"`
}

type jsonReport struct {
	ID      string       `json:"id"`
	Rows    int          `json:"rows"`
	Columns []jsonColumn `json:"columns"`
}

// Render writes the report for result to w.
func (r *JSONRenderer) Render(w io.Writer, result *domain.EnrichResult) error {
	if result == nil {
		return fmt.Errorf("%w: no result to render", domain.ErrInvalidInput)
	}

	out := jsonReport{ID: result.ID, Columns: make([]jsonColumn, 0, len(result.Columns))}
	if result.Table != nil {
		out.Rows = result.Table.Len()
	}
	for _, ck := range result.Columns {
		out.Columns = append(out.Columns, jsonColumn{
			Column:   ck.Column,
			Count:    len(ck.Tags),
			Primary:  orEmpty(ck.Primary),
			LongTail: orEmpty(ck.LongTail),
			Tags:     orEmpty(ck.Tags),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
