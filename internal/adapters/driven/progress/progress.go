// Package progress reports enrichment progress on the terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure reporters implement the interface.
var (
	_ driven.ProgressReporter = (*Bar)(nil)
	_ driven.ProgressReporter = Noop{}
)

// New returns a progress bar writing to w when w is a terminal,
// and a no-op reporter otherwise.
func New(w io.Writer) driven.ProgressReporter {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewBar(w)
	}
	return Noop{}
}

// Bar draws a progress bar with one step per processed column.
type Bar struct {
	mu  sync.Mutex
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a progress bar writing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{out: w}
}

// Start initialises the bar with total steps.
func (p *Bar) Start(total int, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.out
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Increment advances the bar by one step and updates its description.
func (p *Bar) Increment(description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	if description != "" {
		p.bar.Describe(description)
	}
	_ = p.bar.Add(1)
}

// Finish completes the bar.
func (p *Bar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}

// Noop discards progress updates.
type Noop struct{}

// Start does nothing.
func (Noop) Start(int, string) {}

// Increment does nothing.
func (Noop) Increment(string) {}

// Finish does nothing.
func (Noop) Finish() {}
