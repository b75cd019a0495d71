// Package columns provides the column picker view for the TUI.
package columns

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// View lets the user pick columns and edit the delimiter.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.ColumnList
	delimiter *input.DelimiterInput

	// previous holds the delimiter text while it is being edited.
	previous string

	source string
	rows   int
	width  int
	height int
}

// NewView creates a column picker for table.
func NewView(s *styles.Styles, table *domain.Table, source, delimiter string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var items []list.Item
	rows := 0
	if table != nil {
		rows = table.Len()
		items = make([]list.Item, 0, len(table.Columns))
		for _, name := range table.Columns {
			items = append(items, list.Item{Name: name, Filled: filled(table, name)})
		}
	}

	return &View{
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		list:      list.NewColumnList(s, items),
		delimiter: input.NewDelimiterInput(s, delimiter),
		source:    source,
		rows:      rows,
		width:     80,
		height:    24,
	}
}

func filled(table *domain.Table, column string) int {
	fields, _ := table.Column(column)
	n := 0
	for _, f := range fields {
		if f.Present {
			n++
		}
	}
	return n
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.delimiter.Focused() {
			var cmd tea.Cmd
			v.delimiter, cmd = v.delimiter.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.delimiter.Focused() {
		return v.updateDelimiter(keyMsg)
	}

	switch {
	case keymap.Matches(keyMsg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyMsg.String(), v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(keyMsg.String(), v.keymap.Delimiter):
		v.previous = v.delimiter.Raw()
		return v, v.delimiter.Focus()
	case keymap.Matches(keyMsg.String(), v.keymap.Run):
		return v, v.run()
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(keyMsg)
	return v, cmd
}

func (v *View) updateDelimiter(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only confirm and cancel are special
	switch msg.Type {
	case tea.KeyEnter:
		v.delimiter.Blur()
		return v, nil
	case tea.KeyEsc:
		v.delimiter.SetValue(v.previous)
		v.delimiter.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.delimiter, cmd = v.delimiter.Update(msg)
	return v, cmd
}

// run validates the selection and requests extraction.
func (v *View) run() tea.Cmd {
	columns := v.list.Checked()
	delimiter := v.delimiter.Value()

	return func() tea.Msg {
		if len(columns) == 0 {
			return messages.ErrorOccurred{Err: domain.ErrNoColumnsSelected}
		}
		if delimiter == "" {
			return messages.ErrorOccurred{Err: fmt.Errorf("%w: must not be empty", domain.ErrInvalidDelimiter)}
		}
		return messages.EnrichRequested{Columns: columns, Delimiter: delimiter}
	}
}

// View renders the column picker.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("tagsmith"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s · %d rows", filepath.Base(v.source), v.rows)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render("Select columns to extract tags from"))
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.delimiter.View())
	b.WriteString("\n")

	if v.delimiter.Focused() {
		b.WriteString(v.styles.Help.Render(`enter confirm · esc cancel · \t for tab`))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	// title, subtitle, delimiter and status bar lines
	v.list.SetHeight(max(height-9, 3))
}

// Selected returns the checked columns in table order.
func (v *View) Selected() []string {
	return v.list.Checked()
}

// Select checks the named columns.
func (v *View) Select(names ...string) {
	for _, name := range names {
		v.list.Check(name)
	}
}

// Delimiter returns the current delimiter.
func (v *View) Delimiter() string {
	return v.delimiter.Value()
}

// Editing reports whether the delimiter input has focus.
func (v *View) Editing() bool {
	return v.delimiter.Focused()
}
