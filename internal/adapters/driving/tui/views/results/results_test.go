package results

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

func testResult() *domain.EnrichResult {
	return &domain.EnrichResult{
		ID: "run-1",
		Columns: []domain.ColumnKeywords{
			{
				Column:   "Topics",
				Tags:     []string{"cat", "cats", "dog", "dogs"},
				Primary:  []string{"cat", "cats"},
				LongTail: []string{"dog", "dogs"},
			},
			{
				Column:  "Tags",
				Tags:    []string{"go"},
				Primary: []string{"go"},
			},
		},
	}
}

func TestNewView_Empty(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Nil(t, v.Init())
	assert.Nil(t, v.Result())
	assert.Contains(t, v.View(), "No results")

	_, ok := v.ActiveColumn()
	assert.False(t, ok)
}

func TestView_Render(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(100, 40)
	v.SetResult(testResult())

	view := v.View()

	assert.Contains(t, view, "Topics")
	assert.Contains(t, view, "Tags")
	assert.Contains(t, view, "Primary Keywords (2)")
	assert.Contains(t, view, "cat, cats")
	assert.Contains(t, view, "Long-tail Keywords (2)")
	assert.Contains(t, view, "All Keywords (4)")
	assert.Contains(t, view, "dogs")
}

func TestView_SwitchColumns(t *testing.T) {
	v := NewView(nil)
	v.SetResult(testResult())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	col, ok := v.ActiveColumn()
	require.True(t, ok)
	assert.Equal(t, "Tags", col.Column)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	col, _ = v.ActiveColumn()
	assert.Equal(t, "Topics", col.Column)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	col, _ = v.ActiveColumn()
	assert.Equal(t, "Tags", col.Column)
	assert.Contains(t, v.View(), "(none)")
}

func TestView_EmptyBuckets(t *testing.T) {
	v := NewView(nil)
	v.SetResult(&domain.EnrichResult{
		Columns: []domain.ColumnKeywords{{Column: "Empty"}},
	})

	view := v.View()
	assert.Equal(t, 3, strings.Count(view, "(none)"))
	longTail := view[strings.Index(view, "Long-tail Keywords (0)"):strings.Index(view, "All Keywords (0)")]
	assert.Contains(t, longTail, "(none)")
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 10)
	v.SetResult(testResult())

	assert.Contains(t, v.View(), "1 more")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.NotContains(t, v.View(), "   1  cat")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Contains(t, v.View(), "   1  cat")
}

func TestView_Commands(t *testing.T) {
	v := NewView(nil)
	v.SetResult(testResult())

	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected tea.Msg
	}{
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, messages.ViewChanged{View: messages.ViewColumns}},
		{"save", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, messages.SaveRequested{}},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, messages.Quit{}},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, messages.ViewChanged{View: messages.ViewHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := v.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd())
		})
	}
}
