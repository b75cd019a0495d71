// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/styles"
)

// Item is one column offered for selection.
type Item struct {
	Name string

	// Filled is the number of non-missing cells.
	Filled int
}

// ColumnList displays table columns as a navigable checklist.
type ColumnList struct {
	items    []Item
	checked  map[int]bool
	selected int
	styles   *styles.Styles
	height   int
}

// NewColumnList creates a new column list component.
func NewColumnList(s *styles.Styles, items []Item) *ColumnList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ColumnList{
		items:   items,
		checked: make(map[int]bool),
		styles:  s,
		height:  20,
	}
}

// Init initialises the list.
func (c *ColumnList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *ColumnList) Update(msg tea.Msg) (*ColumnList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		case " ", "x":
			c.Toggle()
		}
	}
	return c, nil
}

// View renders the list.
func (c *ColumnList) View() string {
	if len(c.items) == 0 {
		return c.styles.Muted.Render("No columns")
	}

	visible := max(c.height, 1)
	start := 0
	if c.selected >= visible {
		start = c.selected - visible + 1
	}
	end := min(start+visible, len(c.items))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, c.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (c *ColumnList) renderItem(i int) string {
	cursor := "  "
	if i == c.selected {
		cursor = c.styles.Cursor.Render("> ")
	}

	box := "[ ]"
	name := c.styles.Normal.Render(c.items[i].Name)
	if c.checked[i] {
		box = c.styles.Checked.Render("[x]")
		name = c.styles.Checked.Render(c.items[i].Name)
	}

	count := c.styles.Muted.Render(fmt.Sprintf(" (%d values)", c.items[i].Filled))
	return cursor + box + " " + name + count
}

// MoveUp moves the cursor up.
func (c *ColumnList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves the cursor down.
func (c *ColumnList) MoveDown() {
	if c.selected < len(c.items)-1 {
		c.selected++
	}
}

// Toggle flips the checked state of the column under the cursor.
func (c *ColumnList) Toggle() {
	if len(c.items) == 0 {
		return
	}
	c.checked[c.selected] = !c.checked[c.selected]
}

// Check marks the named column as checked. Unknown names are ignored.
func (c *ColumnList) Check(name string) {
	for i, item := range c.items {
		if item.Name == name {
			c.checked[i] = true
		}
	}
}

// Checked returns the checked column names in table order.
func (c *ColumnList) Checked() []string {
	names := make([]string, 0, len(c.checked))
	for i, item := range c.items {
		if c.checked[i] {
			names = append(names, item.Name)
		}
	}
	return names
}

// SelectedIndex returns the cursor position.
func (c *ColumnList) SelectedIndex() int {
	return c.selected
}

// Len returns the number of columns.
func (c *ColumnList) Len() int {
	return len(c.items)
}

// SetHeight sets how many rows are visible.
func (c *ColumnList) SetHeight(height int) {
	c.height = height
}
