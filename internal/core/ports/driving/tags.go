package driving

import "github.com/custodia-labs/tagsmith/internal/core/domain"

// TagService is the tag extraction core. All methods are pure: they never
// fail and never mutate their inputs.
type TagService interface {
	// Normalise cleans a single raw tag.
	Normalise(raw string) string

	// Expand returns a normalised tag together with its variations.
	Expand(tag string) domain.TagSet

	// ExtractTags splits a field on delimiter and returns the normalised,
	// expanded tag set. Missing fields yield an empty set.
	ExtractTags(field domain.RawField, delimiter string) domain.TagSet

	// ProcessColumn extracts tags from every non-missing cell of a column.
	// An unknown column yields an empty result.
	ProcessColumn(table *domain.Table, column, delimiter string) domain.ColumnResult

	// FormatTagsForDisplay renders tags as "a, b | N relevant keywords".
	FormatTagsForDisplay(tags domain.TagSet) string

	// CreateMetaDescription renders tags as "Featuring a, b, c and N more topics".
	CreateMetaDescription(tags domain.TagSet) string
}
