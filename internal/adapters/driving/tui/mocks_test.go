package tui

import (
	"context"
	"errors"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// MockEnrichService records requests and returns a fixed result.
type MockEnrichService struct {
	result *domain.EnrichResult
	err    error
	opts   domain.EnrichOptions
	calls  int
}

func (m *MockEnrichService) Enrich(_ context.Context, table *domain.Table, opts domain.EnrichOptions) (*domain.EnrichResult, error) {
	m.calls++
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.EnrichResult{ID: "run-1", Table: table}, nil
}

// MockTableService records saves.
type MockTableService struct {
	saved   *domain.EnrichResult
	path    string
	saveErr error
}

func (m *MockTableService) Load(context.Context, string, string) (*domain.Table, error) {
	return nil, errors.New("not implemented")
}

func (m *MockTableService) Save(_ context.Context, path string, result *domain.EnrichResult) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved = result
	m.path = path
	return path + ".csv", nil
}

func (m *MockTableService) SupportedInputs() []string {
	return []string{"csv"}
}
