package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewColumns, "columns"},
		{ViewResults, "results"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Distinct(t *testing.T) {
	assert.NotEqual(t, ViewColumns, ViewResults)
	assert.NotEqual(t, ViewResults, ViewHelp)
	assert.Equal(t, ViewType(0), ViewColumns)
}

func TestEnrichCompleted_Fields(t *testing.T) {
	result := &domain.EnrichResult{ID: "run-1"}
	msg := EnrichCompleted{Result: result}
	assert.Equal(t, "run-1", msg.Result.ID)
	assert.NoError(t, msg.Err)

	failed := EnrichCompleted{Err: errors.New("boom")}
	assert.Nil(t, failed.Result)
	assert.EqualError(t, failed.Err, "boom")
}

func TestEnrichRequested_Fields(t *testing.T) {
	msg := EnrichRequested{Columns: []string{"Topics"}, Delimiter: ";"}
	assert.Equal(t, []string{"Topics"}, msg.Columns)
	assert.Equal(t, ";", msg.Delimiter)
}
