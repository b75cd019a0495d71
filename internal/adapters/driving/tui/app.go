package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/views/columns"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// input is the table being worked on.
	input Input

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	columnsView *columns.View
	resultsView *results.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// returnView is where help goes back to.
	returnView messages.ViewType

	// running is set while an extraction is in flight.
	running bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application over input.
func NewApp(ports *Ports, input Input) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if input.Table == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingTable)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := status.NewBar(s, km)
	bar.SetMessage(fmt.Sprintf("%d columns, %d rows", len(input.Table.Columns), input.Table.Len()))

	return &App{
		ports:       ports,
		input:       input,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		columnsView: columns.NewView(s, input.Table, input.Path, ports.delimiter()),
		resultsView: results.NewView(s),
		statusBar:   bar,
		currentView: messages.ViewColumns,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Select pre-selects columns in the picker.
func (a *App) Select(names ...string) *App {
	a.columnsView.Select(names...)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("tagsmith")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewColumns:
			if a.running {
				return a, nil
			}
			a.columnsView, cmd = a.columnsView.Update(msg)
		case messages.ViewResults:
			a.resultsView, cmd = a.resultsView.Update(msg)
		case messages.ViewHelp:
			k := msg.String()
			if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
				a.showView(a.returnView)
			} else if keymap.Matches(k, a.keymap.Quit) {
				return a, tea.Quit
			}
		}
		return a, cmd

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp {
			a.returnView = a.currentView
		}
		a.showView(msg.View)
		return a, nil

	case messages.EnrichRequested:
		a.running = true
		a.err = nil
		a.statusBar.SetState(status.StateRunning)
		return a, a.enrich(msg)

	case messages.EnrichCompleted:
		a.running = false
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.resultsView.SetResult(msg.Result)
		a.showView(messages.ViewResults)
		return a, nil

	case messages.SaveRequested:
		return a, a.save()

	case messages.ResultSaved:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage(msg.Path)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view
	if a.currentView == messages.ViewColumns {
		a.columnsView, cmd = a.columnsView.Update(msg)
	}
	return a, cmd
}

// showView switches views and resets the status bar for it.
func (a *App) showView(view messages.ViewType) {
	a.currentView = view
	a.statusBar.SetMessage("")

	switch view {
	case messages.ViewColumns:
		a.statusBar.SetState(status.StateReady)
	case messages.ViewResults:
		a.statusBar.SetState(status.StateResults)
		a.statusBar.SetKeywordCount(keywordCount(a.resultsView.Result()))
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// enrich runs extraction off the update loop.
func (a *App) enrich(req messages.EnrichRequested) tea.Cmd {
	ctx, svc, table := a.ctx, a.ports.Enrich, a.input.Table
	return func() tea.Msg {
		result, err := svc.Enrich(ctx, table, domain.EnrichOptions{
			Columns:   req.Columns,
			Delimiter: req.Delimiter,
		})
		return messages.EnrichCompleted{Result: result, Err: err}
	}
}

// save writes the last result through the table service.
func (a *App) save() tea.Cmd {
	result := a.resultsView.Result()
	if a.ports.Table == nil || result == nil {
		return func() tea.Msg { return messages.ResultSaved{Err: ErrSaveUnavailable} }
	}

	ctx, svc, path := a.ctx, a.ports.Table, a.input.Output
	return func() tea.Msg {
		written, err := svc.Save(ctx, path, result)
		return messages.ResultSaved{Path: written, Err: err}
	}
}

func keywordCount(result *domain.EnrichResult) int {
	if result == nil {
		return 0
	}
	n := 0
	for _, c := range result.Columns {
		n += len(c.Tags)
	}
	return n
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewResults:
		body = a.resultsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.columnsView.View()
	}

	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the last extraction result, if any.
func (a *App) Result() *domain.EnrichResult {
	return a.resultsView.Result()
}

// StatusBar returns the status bar (for testing).
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Running reports whether an extraction is in flight.
func (a *App) Running() bool {
	return a.running
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.columnsView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
}
