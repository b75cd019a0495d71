// Package results provides the keyword results view for the TUI.
package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// View shows primary and long-tail keywords per column of a run.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	result *domain.EnrichResult
	active int
	offset int
	width  int
	height int
}

// NewView creates an empty results view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult shows result, starting at its first column.
func (v *View) SetResult(result *domain.EnrichResult) {
	v.result = result
	v.active = 0
	v.offset = 0
}

// Result returns the displayed run.
func (v *View) Result() *domain.EnrichResult {
	return v.result
}

// ActiveColumn returns the keywords of the column being shown.
func (v *View) ActiveColumn() (domain.ColumnKeywords, bool) {
	if v.result == nil || len(v.result.Columns) == 0 {
		return domain.ColumnKeywords{}, false
	}
	return v.result.Columns[v.active], true
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	k := keyMsg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewColumns} }
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(k, v.keymap.Save):
		return v, func() tea.Msg { return messages.SaveRequested{} }
	case keymap.Matches(k, v.keymap.NextColumn):
		v.switchColumn(1)
	case keymap.Matches(k, v.keymap.PrevColumn):
		v.switchColumn(-1)
	case keymap.Matches(k, v.keymap.Down):
		if col, ok := v.ActiveColumn(); ok && v.offset < len(col.Tags)-1 {
			v.offset++
		}
	case keymap.Matches(k, v.keymap.Up):
		if v.offset > 0 {
			v.offset--
		}
	}
	return v, nil
}

func (v *View) switchColumn(delta int) {
	if v.result == nil || len(v.result.Columns) == 0 {
		return
	}
	n := len(v.result.Columns)
	v.active = (v.active + delta + n) % n
	v.offset = 0
}

// View renders the results.
func (v *View) View() string {
	col, ok := v.ActiveColumn()
	if !ok {
		return v.styles.Muted.Render("No results")
	}

	var b strings.Builder
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().Width(max(v.width-2, 20))

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Primary Keywords (%d)", len(col.Primary))))
	b.WriteString("\n")
	b.WriteString(v.renderBucket(wrap, v.styles.Primary, col.Primary))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Long-tail Keywords (%d)", len(col.LongTail))))
	b.WriteString("\n")
	b.WriteString(v.renderBucket(wrap, v.styles.LongTail, col.LongTail))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("All Keywords (%d)", len(col.Tags))))
	b.WriteString("\n")
	b.WriteString(v.renderAll(col))

	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(v.result.Columns))
	for i, c := range v.result.Columns {
		if i == v.active {
			tabs = append(tabs, v.styles.TabActive.Render(c.Column))
		} else {
			tabs = append(tabs, v.styles.TabInactive.Render(c.Column))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderBucket(wrap, style lipgloss.Style, tags []string) string {
	if len(tags) == 0 {
		return v.styles.Muted.Render("(none)")
	}
	return wrap.Render(style.Render(strings.Join(tags, ", ")))
}

// renderAll lists every tag from the scroll offset, as many as fit.
func (v *View) renderAll(col domain.ColumnKeywords) string {
	if len(col.Tags) == 0 {
		return v.styles.Muted.Render("(none)")
	}

	// tabs, two keyword sections and the status bar
	visible := max(v.height-14, 3)
	end := min(v.offset+visible, len(col.Tags))

	lines := make([]string, 0, end-v.offset+1)
	for i := v.offset; i < end; i++ {
		lines = append(lines, fmt.Sprintf("%4d  %s", i+1, col.Tags[i]))
	}
	if end < len(col.Tags) {
		lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("      … %d more", len(col.Tags)-end)))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
