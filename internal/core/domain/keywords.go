package domain

import "time"

// Default keyword bucket sizes used by reports.
const (
	DefaultPrimaryKeywords  = 10
	DefaultLongTailKeywords = 20
)

// ColumnResult is the output of processing one column: the sorted union of
// all row tag sets and one meta description per non-missing row.
type ColumnResult struct {
	Tags             []string
	MetaDescriptions []string
}

// ColumnKeywords holds the keyword report for one processed column.
// Primary and LongTail are positional buckets over the sorted Tags.
type ColumnKeywords struct {
	Column   string
	Tags     []string
	Primary  []string
	LongTail []string
}

// EnrichOptions selects the columns and delimiter for an enrichment run.
type EnrichOptions struct {
	Columns   []string
	Delimiter string
}

// EnrichResult is the output of an enrichment run.
type EnrichResult struct {
	// ID uniquely identifies the run.
	ID string

	// Table is a copy of the input with derived columns added.
	Table *Table

	// Columns holds the keyword report per selected column, in selection order.
	Columns []ColumnKeywords

	// CreatedAt is when the run completed.
	CreatedAt time.Time
}

// SplitKeywords splits sorted tags into the first primary items and the
// following longTail items. Tags beyond both buckets are not included.
func SplitKeywords(tags []string, primary, longTail int) (primaryKeywords, longTailKeywords []string) {
	if primary < 0 {
		primary = 0
	}
	if longTail < 0 {
		longTail = 0
	}
	primaryEnd := min(primary, len(tags))
	longTailEnd := min(primaryEnd+longTail, len(tags))
	return tags[:primaryEnd], tags[primaryEnd:longTailEnd]
}

// Keyword bucket names.
const (
	BucketPrimary  = "primary"
	BucketLongTail = "long_tail"
	BucketOther    = "other"
)

// BucketOf returns the bucket of the tag at index i of Tags.
func (c ColumnKeywords) BucketOf(i int) string {
	switch {
	case i < len(c.Primary):
		return BucketPrimary
	case i < len(c.Primary)+len(c.LongTail):
		return BucketLongTail
	default:
		return BucketOther
	}
}
