package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound indicates a selected column is not part of the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidDelimiter indicates the tag delimiter cannot be used for splitting.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrNoColumnsSelected indicates an enrichment run was started without columns.
	ErrNoColumnsSelected = errors.New("no columns selected")

	// ErrUnsupportedFormat indicates an unknown table file format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownVariation indicates a variation generator name is not registered.
	ErrUnknownVariation = errors.New("unknown variation")

	// ErrInvalidSetting indicates a settings key or value is not recognised.
	ErrInvalidSetting = errors.New("invalid setting")
)
