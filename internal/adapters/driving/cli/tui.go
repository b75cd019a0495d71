package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("tui: stdout is not a terminal")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui <input>",
	Short: "Pick columns and browse keywords interactively",
	Long: `Launch the interactive terminal UI on a CSV or XLSX file.

Select columns, adjust the delimiter, run extraction and browse the
primary and long-tail keywords of each column. Press s to save the
enriched table.

Controls:
  ↑/k, ↓/j  - Navigate columns
  space     - Toggle column
  d         - Edit delimiter
  enter     - Extract
  tab       - Next column in results
  s         - Save enriched table
  esc       - Back
  ?         - Help
  q         - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringArrayP("column", "c", nil, "pre-select a column (repeatable)")
	tuiCmd.Flags().StringP("output", "o", "", "where s saves (default next to the input)")
	tuiCmd.Flags().String("sheet", "", "worksheet name for workbook inputs")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.Table == nil {
		return errNotConfigured
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	app, err := newTUIApp(cmd, s, args[0])
	if err != nil {
		return err
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp loads input and builds the app with any pre-selected columns.
func newTUIApp(cmd *cobra.Command, s *Services, input string) (*tui.App, error) {
	columns, err := cmd.Flags().GetStringArray("column")
	if err != nil {
		return nil, err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	sheet, err := cmd.Flags().GetString("sheet")
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = filepath.Join(filepath.Dir(input), domain.DefaultOutputBaseName)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	table, err := s.Table.Load(ctx, input, sheet)
	if err != nil {
		return nil, err
	}

	enrich := s.QuietEnrich
	if enrich == nil {
		enrich = s.Enrich
	}

	app, err := tui.NewApp(&tui.Ports{
		Enrich:   enrich,
		Table:    s.Table,
		Settings: s.Settings,
	}, tui.Input{Path: input, Output: output, Table: table})
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.Select(columns...), nil
}
