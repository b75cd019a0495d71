package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Name: "Title", Filled: 3},
		{Name: "Topics", Filled: 2},
		{Name: "Tags", Filled: 1},
	}
}

func TestNewColumnList(t *testing.T) {
	l := NewColumnList(nil, testItems())

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0, l.SelectedIndex())
	assert.Empty(t, l.Checked())
	assert.Nil(t, l.Init())
}

func TestColumnList_Navigation(t *testing.T) {
	l := NewColumnList(nil, testItems())

	l.MoveUp()
	assert.Equal(t, 0, l.SelectedIndex())

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.SelectedIndex())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, l.SelectedIndex())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, l.SelectedIndex())
}

func TestColumnList_ToggleKeepsTableOrder(t *testing.T) {
	l := NewColumnList(nil, testItems())

	l.MoveDown()
	l.MoveDown()
	l.Toggle()
	l.MoveUp()
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, []string{"Topics", "Tags"}, l.Checked())

	l.Toggle()
	assert.Equal(t, []string{"Tags"}, l.Checked())
}

func TestColumnList_Check(t *testing.T) {
	l := NewColumnList(nil, testItems())

	l.Check("Topics")
	l.Check("Missing")

	assert.Equal(t, []string{"Topics"}, l.Checked())
}

func TestColumnList_View(t *testing.T) {
	l := NewColumnList(nil, testItems())
	l.Check("Title")

	view := l.View()

	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[ ]")
	assert.Contains(t, view, "(2 values)")
}

func TestColumnList_ViewScrolls(t *testing.T) {
	l := NewColumnList(nil, testItems())
	l.SetHeight(1)
	l.MoveDown()
	l.MoveDown()

	view := l.View()

	assert.Contains(t, view, "Tags")
	assert.NotContains(t, view, "Title")
}

func TestColumnList_Empty(t *testing.T) {
	l := NewColumnList(nil, nil)

	l.Toggle()

	assert.Contains(t, l.View(), "No columns")
	assert.Empty(t, l.Checked())
}
