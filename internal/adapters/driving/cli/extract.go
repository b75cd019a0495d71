package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Extract SEO tags from table columns",
	Long: `Extract SEO tags from one or more columns of a CSV or XLSX file.

Every selected column gains two derived columns:
  {column}_seo_tags          - "tag, tag | N relevant keywords"
  {column}_meta_description  - "Featuring a, b, c and N more topics"

The enriched table is written to --output (default: seo_enhanced_dataset
next to the input, in the configured output format). The keyword report is
printed to stdout and saved as seo_tags_report.txt next to the output; use
--report to choose another file or --no-report to skip it.

Examples:
  tagsmith extract posts.csv -c Topics
  tagsmith extract posts.xlsx -c "Blog Topics" -c Category -d ";" -o out.json
  tagsmith extract posts.csv -c Topics --report seo_tags_report.txt --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringArrayP("column", "c", nil, "column to process (repeatable)")
	extractCmd.Flags().StringP("delimiter", "d", "", "tag delimiter (default from settings, \",\")")
	extractCmd.Flags().StringP("output", "o", "", "output file; extension selects csv, json, xlsx or db")
	extractCmd.Flags().String("report", "", "report file (default seo_tags_report.txt next to the output)")
	extractCmd.Flags().Bool("no-report", false, "do not write the report file")
	extractCmd.Flags().String("sheet", "", "worksheet to read from XLSX input")
	extractCmd.Flags().Bool("json", false, "print the report as JSON")
	extractCmd.Flags().Bool("watch", false, "re-run whenever the input file changes")
	rootCmd.AddCommand(extractCmd)
}

// extractRequest is the parsed form of the extract flags.
type extractRequest struct {
	Input      string
	Sheet      string
	Output     string
	ReportPath string
	JSON       bool
	Options    domain.EnrichOptions
}

func runExtract(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	settings, err := currentSettings(s)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	req, err := parseExtractFlags(cmd, args[0], settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := extractOnce(ctx, s, req, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	return watchAndExtract(ctx, s, req, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func parseExtractFlags(cmd *cobra.Command, input string, settings *domain.AppSettings) (extractRequest, error) {
	flags := cmd.Flags()
	columns, _ := flags.GetStringArray("column")
	output, _ := flags.GetString("output")
	reportPath, _ := flags.GetString("report")
	sheet, _ := flags.GetString("sheet")
	asJSON, _ := flags.GetBool("json")
	noReport, _ := flags.GetBool("no-report")

	delimiter := settings.Extract.Delimiter
	if flags.Changed("delimiter") {
		raw, _ := flags.GetString("delimiter")
		delimiter = domain.UnescapeDelimiter(raw)
		if delimiter == "" {
			return extractRequest{}, fmt.Errorf("%w: --delimiter must not be empty", domain.ErrInvalidDelimiter)
		}
	}

	if len(columns) == 0 {
		return extractRequest{}, fmt.Errorf("%w: pass --column (run \"tagsmith columns %s\" to list them)",
			domain.ErrNoColumnsSelected, input)
	}

	if output == "" {
		output = filepath.Join(filepath.Dir(input), domain.DefaultOutputBaseName)
	}

	switch {
	case noReport:
		reportPath = ""
	case reportPath == "":
		reportPath = filepath.Join(filepath.Dir(output), domain.DefaultReportFileName)
	}

	return extractRequest{
		Input:      input,
		Sheet:      sheet,
		Output:     output,
		ReportPath: reportPath,
		JSON:       asJSON,
		Options: domain.EnrichOptions{
			Columns:   columns,
			Delimiter: delimiter,
		},
	}, nil
}

// extractOnce loads, enriches and saves the input, then renders the report.
func extractOnce(ctx context.Context, s *Services, req extractRequest, stdout, stderr io.Writer) error {
	if s.Table == nil || s.Enrich == nil {
		return errNotConfigured
	}

	table, err := s.Table.Load(ctx, req.Input, req.Sheet)
	if err != nil {
		return fmt.Errorf("load %s: %w", req.Input, err)
	}

	result, err := s.Enrich.Enrich(ctx, table, req.Options)
	if err != nil {
		return err
	}

	written, err := s.Table.Save(ctx, req.Output, result)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Wrote %d rows to %s\n", result.Table.Len(), written)

	if req.ReportPath != "" {
		if err := writeReportFile(s, req.ReportPath, result); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Wrote report to %s\n", req.ReportPath)
	}

	renderer := s.TextReport
	if req.JSON {
		renderer = s.JSONReport
	}
	if renderer == nil {
		return nil
	}
	return renderer.Render(stdout, result)
}

func writeReportFile(s *Services, path string, result *domain.EnrichResult) error {
	if s.TextReport == nil {
		return fmt.Errorf("write report: %w", errNotConfigured)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := s.TextReport.Render(f, result); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

// watchAndExtract re-runs extraction on every change to the input until
// ctx is done. Failed runs are reported and watching continues.
func watchAndExtract(ctx context.Context, s *Services, req extractRequest, stdout, stderr io.Writer) error {
	if s.Watcher == nil {
		return fmt.Errorf("watch: %w", errNotConfigured)
	}

	changes, err := s.Watcher.Watch(ctx, req.Input)
	if err != nil {
		return fmt.Errorf("watch %s: %w", req.Input, err)
	}
	fmt.Fprintf(stderr, "Watching %s for changes (Ctrl+C to stop)\n", req.Input)

	for range changes {
		logger.Info("Input changed, re-running extraction")
		if err := extractOnce(ctx, s, req, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	return nil
}
