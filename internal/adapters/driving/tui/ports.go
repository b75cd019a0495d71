// Package tui provides an interactive terminal user interface for tagsmith.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Enrich runs extraction over the selected columns.
	Enrich driving.EnrichService

	// Table writes enriched tables. Optional; without it saving is disabled.
	Table driving.TableService

	// Settings supplies the default delimiter. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Enrich == nil {
		return ErrMissingEnrichService
	}
	return nil
}

// delimiter returns the configured delimiter, or the default one.
func (p *Ports) delimiter() string {
	if p.Settings != nil {
		if s, err := p.Settings.Get(); err == nil && s.Extract.Delimiter != "" {
			return s.Extract.Delimiter
		}
	}
	return domain.DefaultDelimiter
}

// Input is the table the TUI works on.
type Input struct {
	// Path is the file the table was read from.
	Path string

	// Output is where "save" writes. Empty means the table service default.
	Output string

	// Table holds the loaded rows.
	Table *domain.Table
}
