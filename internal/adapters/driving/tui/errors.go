package tui

import "errors"

// ErrMissingEnrichService is returned when the enrichment service is not provided.
var ErrMissingEnrichService = errors.New("tui: enrich service is required")

// ErrMissingTable is returned when no input table is given.
var ErrMissingTable = errors.New("tui: input table is required")

// ErrSaveUnavailable is returned when saving without a table service.
var ErrSaveUnavailable = errors.New("tui: saving is not configured")
