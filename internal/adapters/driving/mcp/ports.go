package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
)

// TableParser parses inline table data.
type TableParser interface {
	Parse(ctx context.Context, in io.Reader, opts driven.ReadOptions) (*domain.Table, error)
}

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tags runs the tag pipeline.
	Tags driving.TagService

	// CSV parses the data passed to process_column. Optional; without it
	// the tool is not registered.
	CSV TableParser

	// Settings supplies the default delimiter and report sizes. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tags == nil {
		return ErrMissingTagService
	}
	return nil
}

// settings returns the configured settings, falling back to defaults.
func (p *Ports) settings() domain.AppSettings {
	if p.Settings != nil {
		if s, err := p.Settings.Get(); err == nil && s != nil {
			return *s
		}
	}
	return domain.DefaultAppSettings()
}
