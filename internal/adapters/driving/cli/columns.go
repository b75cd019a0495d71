package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// previewCellWidth truncates long cells in the preview table.
const previewCellWidth = 40

var columnsCmd = &cobra.Command{
	Use:   "columns <input>",
	Short: "List the columns of a table file",
	Long: `List the columns of a CSV or XLSX file with the number of non-empty
values in each, optionally followed by a preview of the first rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	columnsCmd.Flags().String("sheet", "", "worksheet to read from XLSX input")
	columnsCmd.Flags().IntP("preview", "n", 0, "show the first n rows")
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.Table == nil {
		return errNotConfigured
	}

	sheet, _ := cmd.Flags().GetString("sheet")
	preview, _ := cmd.Flags().GetInt("preview")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	t, err := s.Table.Load(ctx, args[0], sheet)
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d rows, %d columns\n\n", t.Len(), len(t.Columns))
	for _, name := range t.Columns {
		fields, _ := t.Column(name)
		fmt.Fprintf(w, "  %-30s %d values\n", name, presentCount(fields))
	}

	if preview > 0 && len(t.Columns) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderPreview(t.Head(preview)))
	}
	return nil
}

func presentCount(fields []domain.RawField) int {
	n := 0
	for _, f := range fields {
		if f.Present {
			n++
		}
	}
	return n
}

// renderPreview draws the table with a rounded border.
func renderPreview(t *domain.Table) string {
	rows := make([][]string, 0, t.Len())
	for _, rec := range t.Records()[1:] {
		for i, cell := range rec {
			rec[i] = truncate(cell, previewCellWidth)
		}
		rows = append(rows, rec)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(t.Columns...).
		Rows(rows...).
		Render()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
