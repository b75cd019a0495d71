package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// ExtractTagsInput is the input schema for the extract_tags tool.
type ExtractTagsInput struct {
	Text      string `json:"text" jsonschema:"the delimited tag text, e.g. 'Cats, Dogs'"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"tag delimiter (default from settings, usually a comma)"`
}

// ExtractTagsOutput is the output schema for the extract_tags tool.
type ExtractTagsOutput struct {
	Tags            []string `json:"tags"`
	Count           int      `json:"count"`
	Display         string   `json:"display"`
	MetaDescription string   `json:"meta_description"`
}

// ProcessColumnInput is the input schema for the process_column tool.
type ProcessColumnInput struct {
	CSV       string `json:"csv" jsonschema:"CSV data with a header row"`
	Column    string `json:"column" jsonschema:"name of the column to process"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"tag delimiter (default from settings, usually a comma)"`
}

// ProcessColumnOutput is the output schema for the process_column tool.
type ProcessColumnOutput struct {
	Column           string   `json:"column"`
	Tags             []string `json:"tags"`
	Count            int      `json:"count"`
	Primary          []string `json:"primary"`
	LongTail         []string `json:"long_tail"`
	MetaDescriptions []string `json:"meta_descriptions"`
}

// TagsInput is the input schema for the format_tags and meta_description tools.
type TagsInput struct {
	Tags []string `json:"tags" jsonschema:"the tags to format"`
}

// FormatTagsOutput is the output schema for the format_tags tool.
type FormatTagsOutput struct {
	Display string `json:"display"`
}

// MetaDescriptionOutput is the output schema for the meta_description tool.
type MetaDescriptionOutput struct {
	MetaDescription string `json:"meta_description"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_tags",
		Description: "Normalise a delimited tag string and expand it with spacing and plural variations",
	}, s.handleExtractTags)

	if s.ports.CSV != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "process_column",
			Description: "Extract the SEO keywords of one column of inline CSV data",
		}, s.handleProcessColumn)
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_tags",
		Description: "Render tags as 'a, b, c | N relevant keywords'",
	}, s.handleFormatTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "meta_description",
		Description: "Build a 'Featuring a, b, c and N more topics' meta description from tags",
	}, s.handleMetaDescription)
}

// delimiter returns the requested delimiter or the configured default.
func (s *Server) delimiter(requested string) string {
	if requested != "" {
		return domain.UnescapeDelimiter(requested)
	}
	return s.ports.settings().Extract.Delimiter
}

// handleExtractTags handles the extract_tags tool invocation.
func (s *Server) handleExtractTags(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractTagsInput,
) (*mcp.CallToolResult, ExtractTagsOutput, error) {
	tags := s.ports.Tags.ExtractTags(domain.Text(input.Text), s.delimiter(input.Delimiter))

	return nil, ExtractTagsOutput{
		Tags:            tags.Sorted(),
		Count:           tags.Len(),
		Display:         s.ports.Tags.FormatTagsForDisplay(tags),
		MetaDescription: s.ports.Tags.CreateMetaDescription(tags),
	}, nil
}

// handleProcessColumn handles the process_column tool invocation.
func (s *Server) handleProcessColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessColumnInput,
) (*mcp.CallToolResult, ProcessColumnOutput, error) {
	settings := s.ports.settings()

	table, err := s.ports.CSV.Parse(ctx, strings.NewReader(input.CSV), driven.ReadOptions{
		MissingValues: settings.Extract.MissingValues,
	})
	if err != nil {
		return nil, ProcessColumnOutput{}, fmt.Errorf("parsing csv: %w", err)
	}
	if !table.HasColumn(input.Column) {
		return nil, ProcessColumnOutput{}, fmt.Errorf("%w: %q (available: %s)",
			domain.ErrColumnNotFound, input.Column, strings.Join(table.Columns, ", "))
	}

	result := s.ports.Tags.ProcessColumn(table, input.Column, s.delimiter(input.Delimiter))
	primary, longTail := domain.SplitKeywords(result.Tags, settings.Report.PrimaryCount, settings.Report.LongTailCount)

	return nil, ProcessColumnOutput{
		Column:           input.Column,
		Tags:             result.Tags,
		Count:            len(result.Tags),
		Primary:          primary,
		LongTail:         longTail,
		MetaDescriptions: result.MetaDescriptions,
	}, nil
}

// handleFormatTags handles the format_tags tool invocation.
func (s *Server) handleFormatTags(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TagsInput,
) (*mcp.CallToolResult, FormatTagsOutput, error) {
	display := s.ports.Tags.FormatTagsForDisplay(domain.NewTagSet(input.Tags...))
	return nil, FormatTagsOutput{Display: display}, nil
}

// handleMetaDescription handles the meta_description tool invocation.
func (s *Server) handleMetaDescription(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TagsInput,
) (*mcp.CallToolResult, MetaDescriptionOutput, error) {
	meta := s.ports.Tags.CreateMetaDescription(domain.NewTagSet(input.Tags...))
	return nil, MetaDescriptionOutput{MetaDescription: meta}, nil
}
