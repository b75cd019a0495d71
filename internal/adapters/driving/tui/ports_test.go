package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tagsmith/internal/core/services"
)

func TestPorts_Validate(t *testing.T) {
	t.Run("missing enrich service", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingEnrichService)
	})

	t.Run("enrich only", func(t *testing.T) {
		ports := &Ports{Enrich: &MockEnrichService{}}
		assert.NoError(t, ports.Validate())
	})
}

func TestPorts_delimiter(t *testing.T) {
	t.Run("default without settings", func(t *testing.T) {
		ports := &Ports{Enrich: &MockEnrichService{}}
		assert.Equal(t, ",", ports.delimiter())
	})

	t.Run("configured", func(t *testing.T) {
		settings := services.NewSettingsService(memory.NewConfigStore(), nil)
		require.NoError(t, settings.Set(services.KeyDelimiter, "tab"))

		ports := &Ports{Enrich: &MockEnrichService{}, Settings: settings}
		assert.Equal(t, "\t", ports.delimiter())
	})
}
