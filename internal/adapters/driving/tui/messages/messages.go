// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewColumns is the column picker.
	ViewColumns ViewType = iota
	// ViewResults shows the keywords of the last run.
	ViewResults
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewColumns:
		return "columns"
	case ViewResults:
		return "results"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// EnrichRequested asks the app to run extraction on the selected columns.
type EnrichRequested struct {
	Columns   []string
	Delimiter string
}

// EnrichCompleted carries the outcome of an extraction run.
type EnrichCompleted struct {
	Result *domain.EnrichResult
	Err    error
}

// SaveRequested asks the app to write the enriched table.
type SaveRequested struct{}

// ResultSaved signals the enriched table was written.
type ResultSaved struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
