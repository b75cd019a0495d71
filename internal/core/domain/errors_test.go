package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrColumnNotFound", ErrColumnNotFound},
		{"ErrInvalidDelimiter", ErrInvalidDelimiter},
		{"ErrNoColumnsSelected", ErrNoColumnsSelected},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrUnknownVariation", ErrUnknownVariation},
		{"ErrInvalidSetting", ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrColumnNotFound(t *testing.T) {
	assert.Equal(t, "column not found", ErrColumnNotFound.Error())
	assert.False(t, errors.Is(ErrColumnNotFound, ErrNotFound))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("column %q: %w", "Tags", ErrColumnNotFound)

	assert.True(t, errors.Is(wrapped, ErrColumnNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidDelimiter))
	assert.Contains(t, wrapped.Error(), "Tags")
}
