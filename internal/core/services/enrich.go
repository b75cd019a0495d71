package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
	"github.com/custodia-labs/tagsmith/internal/logger"
)

// Ensure EnrichService implements the interface.
var _ driving.EnrichService = (*EnrichService)(nil)

// EnrichService adds derived SEO columns to tables and builds keyword reports.
type EnrichService struct {
	tags     driving.TagService
	report   domain.ReportSettings
	progress driven.ProgressReporter
}

// NewEnrichService creates a new enrichment service.
// progress may be nil, in which case no progress is reported.
func NewEnrichService(
	tags driving.TagService,
	report domain.ReportSettings,
	progress driven.ProgressReporter,
) *EnrichService {
	if progress == nil {
		progress = noopProgress{}
	}
	return &EnrichService{
		tags:     tags,
		report:   report,
		progress: progress,
	}
}

// Enrich validates opts against table, then processes each selected column
// in order. For every column it writes "{base}_seo_tags" and
// "{base}_meta_description" into a copy of the table; rows with a missing
// value get empty derived values.
func (s *EnrichService) Enrich(
	ctx context.Context,
	table *domain.Table,
	opts domain.EnrichOptions,
) (*domain.EnrichResult, error) {
	if err := validateEnrich(table, opts); err != nil {
		return nil, err
	}

	logger.Section("Tag Extraction")
	logger.Debug("Rows: %d, columns: %v, delimiter: %q", table.Len(), opts.Columns, opts.Delimiter)

	out := table.Clone()
	keywords := make([]domain.ColumnKeywords, 0, len(opts.Columns))

	s.progress.Start(len(opts.Columns), "Extracting SEO tags")
	defer s.progress.Finish()

	for _, column := range opts.Columns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := s.tags.ProcessColumn(table, column, opts.Delimiter)
		seoTags, metas := s.derivedColumns(table, column, opts.Delimiter)
		out.SetColumn(domain.SEOTagsColumn(column), seoTags)
		out.SetColumn(domain.MetaDescriptionColumn(column), metas)

		primary, longTail := domain.SplitKeywords(result.Tags, s.report.PrimaryCount, s.report.LongTailCount)
		keywords = append(keywords, domain.ColumnKeywords{
			Column:   column,
			Tags:     result.Tags,
			Primary:  primary,
			LongTail: longTail,
		})

		logger.Debug("Column %q: %d unique keywords from %d rows",
			column, len(result.Tags), len(result.MetaDescriptions))
		s.progress.Increment(column)
	}

	return &domain.EnrichResult{
		ID:        uuid.NewString(),
		Table:     out,
		Columns:   keywords,
		CreatedAt: time.Now(),
	}, nil
}

// derivedColumns computes the per-row display string and meta description.
func (s *EnrichService) derivedColumns(table *domain.Table, column, delimiter string) (seoTags, metas []domain.RawField) {
	fields, _ := table.Column(column)
	seoTags = make([]domain.RawField, len(fields))
	metas = make([]domain.RawField, len(fields))

	for i, field := range fields {
		if !field.Present {
			seoTags[i] = domain.Text("")
			metas[i] = domain.Text("")
			continue
		}
		rowTags := s.tags.ExtractTags(field, delimiter)
		seoTags[i] = domain.Text(s.tags.FormatTagsForDisplay(rowTags))
		metas[i] = domain.Text(s.tags.CreateMetaDescription(rowTags))
	}

	return seoTags, metas
}

func validateEnrich(table *domain.Table, opts domain.EnrichOptions) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", domain.ErrInvalidInput)
	}
	if opts.Delimiter == "" {
		return fmt.Errorf("%w: delimiter must not be empty", domain.ErrInvalidDelimiter)
	}
	if len(opts.Columns) == 0 {
		return domain.ErrNoColumnsSelected
	}
	for _, column := range opts.Columns {
		if !table.HasColumn(column) {
			return fmt.Errorf("%w: %q", domain.ErrColumnNotFound, column)
		}
	}
	return nil
}

// noopProgress discards progress updates.
type noopProgress struct{}

func (noopProgress) Start(int, string) {}
func (noopProgress) Increment(string)  {}
func (noopProgress) Finish()           {}
