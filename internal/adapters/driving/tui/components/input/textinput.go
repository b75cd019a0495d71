// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// DelimiterInput wraps a bubbles textinput for editing the tag delimiter.
// Tab and newline are shown and typed in their escaped form.
type DelimiterInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewDelimiterInput creates a new delimiter input holding delimiter.
func NewDelimiterInput(s *styles.Styles, delimiter string) *DelimiterInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = `e.g. , ; | \t`
	ti.CharLimit = 16
	ti.Width = 12

	d := &DelimiterInput{
		textinput: ti,
		styles:    s,
	}
	d.SetValue(delimiter)
	return d
}

// Init initialises the input.
func (d *DelimiterInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DelimiterInput) Update(msg tea.Msg) (*DelimiterInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the input.
func (d *DelimiterInput) View() string {
	label := d.styles.Subtitle.Render("Delimiter: ")
	if !d.Focused() {
		return label + d.styles.Normal.Render(d.Raw())
	}
	input := d.styles.InputField.Render(d.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the delimiter with escapes resolved.
func (d *DelimiterInput) Value() string {
	return domain.UnescapeDelimiter(d.textinput.Value())
}

// Raw returns the text as typed.
func (d *DelimiterInput) Raw() string {
	return d.textinput.Value()
}

// SetValue sets the delimiter, escaping tab and newline for display.
func (d *DelimiterInput) SetValue(delimiter string) {
	switch delimiter {
	case "\t":
		delimiter = `\t`
	case "\n":
		delimiter = `\n`
	}
	d.textinput.SetValue(delimiter)
}

// Focus sets focus on the input.
func (d *DelimiterInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DelimiterInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DelimiterInput) Focused() bool {
	return d.textinput.Focused()
}
