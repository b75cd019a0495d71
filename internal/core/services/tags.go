package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
)

// Ensure TagService implements the interface.
var _ driving.TagService = (*TagService)(nil)

// metaDescriptionTopics is how many sorted tags a meta description names.
const metaDescriptionTopics = 3

// TagService cleans, extracts, expands and formats tags.
type TagService struct {
	normaliser driven.Normaliser
	variations driven.VariationPipeline
}

// NewTagService creates a new tag service.
func NewTagService(normaliser driven.Normaliser, variations driven.VariationPipeline) *TagService {
	return &TagService{
		normaliser: normaliser,
		variations: variations,
	}
}

// Normalise cleans a single raw tag.
func (s *TagService) Normalise(raw string) string {
	return s.normaliser.Normalise(raw)
}

// Expand returns a normalised tag together with its variations.
func (s *TagService) Expand(tag string) domain.TagSet {
	return s.variations.Expand(tag)
}

// ExtractTags splits a field on delimiter, normalises each piece, and
// unions the variations of every distinct tag.
//
// The delimiter is matched literally. An empty delimiter does not split:
// the whole field is treated as a single tag.
func (s *TagService) ExtractTags(field domain.RawField, delimiter string) domain.TagSet {
	tags := domain.NewTagSet()
	if !field.Present {
		return tags
	}

	base := domain.NewTagSet()
	for _, piece := range splitField(field.Text, delimiter) {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		base.Add(s.normaliser.Normalise(piece))
	}

	for tag := range base {
		tags.Union(s.variations.Expand(tag))
	}
	tags.Remove("")

	return tags
}

// ProcessColumn extracts tags from every non-missing cell of column, in row
// order. Tags is the sorted union over all rows; MetaDescriptions holds one
// entry per non-missing row, computed from that row's own tags.
func (s *TagService) ProcessColumn(table *domain.Table, column, delimiter string) domain.ColumnResult {
	result := domain.ColumnResult{
		Tags:             []string{},
		MetaDescriptions: []string{},
	}
	if table == nil {
		return result
	}

	fields, ok := table.Column(column)
	if !ok {
		return result
	}

	all := domain.NewTagSet()
	for _, field := range fields {
		if !field.Present {
			continue
		}
		rowTags := s.ExtractTags(field, delimiter)
		all.Union(rowTags)
		result.MetaDescriptions = append(result.MetaDescriptions, s.CreateMetaDescription(rowTags))
	}
	result.Tags = all.Sorted()

	return result
}

// FormatTagsForDisplay renders tags sorted and comma-separated, followed by
// the keyword count. An empty set renders as "".
func (s *TagService) FormatTagsForDisplay(tags domain.TagSet) string {
	if tags.Len() == 0 {
		return ""
	}
	return strings.Join(tags.Sorted(), ", ") + fmt.Sprintf(" | %d relevant keywords", tags.Len())
}

// CreateMetaDescription names the first three sorted tags and counts the
// rest. An empty set renders as "".
func (s *TagService) CreateMetaDescription(tags domain.TagSet) string {
	sorted := tags.Sorted()
	if len(sorted) == 0 {
		return ""
	}

	shown := min(metaDescriptionTopics, len(sorted))
	description := "Featuring " + strings.Join(sorted[:shown], ", ")
	if len(sorted) > metaDescriptionTopics {
		description += fmt.Sprintf(" and %d more topics", len(sorted)-metaDescriptionTopics)
	}
	return description
}

func splitField(text, delimiter string) []string {
	if delimiter == "" {
		return []string{text}
	}
	return strings.Split(text, delimiter)
}
