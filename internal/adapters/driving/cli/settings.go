package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the delimiter, variations, missing-value markers,
report sizes and output format.

Settings are stored in ~/.tagsmith/config.toml (see --config-dir).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  extract.delimiter       tag delimiter (\t or "tab" for tab)
  extract.variations      comma-separated: compact, hyphenate, plural, or "none"
  extract.missing_values  comma-separated cell values read as missing
  report.primary          number of primary keywords
  report.long_tail        number of long-tail keywords
  output.format           csv, json, xlsx or sqlite`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore defaults",
	Long:  `Restore one setting, or all settings when no key is given, to its default.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsReset,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runSettingsPath,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	// Values such as -3 are arguments, not shorthand flags.
	settingsSetCmd.Flags().SetInterspersed(false)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, fmt.Errorf("settings: %w", errNotConfigured)
	}
	return s.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	printSettings(cmd.OutOrStdout(), settings)
	return nil
}

func printSettings(w io.Writer, settings *domain.AppSettings) {
	fmt.Fprintln(w, "Current Settings")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Extract]")
	fmt.Fprintf(w, "  Delimiter: %s\n", strconv.Quote(settings.Extract.Delimiter))
	variations := strings.Join(settings.Extract.Variations, ", ")
	if variations == "" {
		variations = "(none)"
	}
	fmt.Fprintf(w, "  Variations: %s\n", variations)
	quoted := make([]string, len(settings.Extract.MissingValues))
	for i, v := range settings.Extract.MissingValues {
		quoted[i] = strconv.Quote(v)
	}
	fmt.Fprintf(w, "  Missing values: %s\n", strings.Join(quoted, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Report]")
	fmt.Fprintf(w, "  Primary keywords: %d\n", settings.Report.PrimaryCount)
	fmt.Fprintf(w, "  Long-tail keywords: %d\n", settings.Report.LongTailCount)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Output]")
	fmt.Fprintf(w, "  Format: %s\n", settings.Output.Format.Description())
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	if err := svc.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	keys := args
	if len(keys) == 0 {
		keys = svc.Keys()
	}
	for _, key := range keys {
		if err := svc.Reset(key); err != nil {
			return err
		}
	}

	if len(args) == 0 {
		cmd.Println("All settings restored to defaults")
	} else {
		cmd.Printf("Reset %s\n", args[0])
	}
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	cmd.Println(s.ConfigPath)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	return settingsWizard(cmd, svc, bufio.NewReader(cmd.InOrStdin()))
}

func settingsWizard(cmd *cobra.Command, svc driving.SettingsService, reader *bufio.Reader) error {
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("tagsmith setup")
	cmd.Println("==============")
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	cmd.Printf("Tag delimiter [%s]: ", strconv.Quote(settings.Extract.Delimiter))
	if input := readLine(reader); input != "" {
		settings.Extract.Delimiter = domain.UnescapeDelimiter(input)
	}

	cmd.Printf("Variations, comma-separated or \"none\" [%s]: ", strings.Join(settings.Extract.Variations, ","))
	if input := readLine(reader); input != "" {
		settings.Extract.Variations = parseVariations(input)
	}

	cmd.Printf("Primary keywords [%d]: ", settings.Report.PrimaryCount)
	settings.Report.PrimaryCount = parseCount(readLine(reader), settings.Report.PrimaryCount)

	cmd.Printf("Long-tail keywords [%d]: ", settings.Report.LongTailCount)
	settings.Report.LongTailCount = parseCount(readLine(reader), settings.Report.LongTailCount)

	formats := []domain.OutputFormat{
		domain.OutputFormatCSV, domain.OutputFormatJSON, domain.OutputFormatXLSX, domain.OutputFormatSQLite,
	}
	cmd.Println("Output format:")
	current := 1
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f.Description())
		if f == settings.Output.Format {
			current = i + 1
		}
	}
	cmd.Printf("Enter choice [%d]: ", current)
	settings.Output.Format = formats[parseChoice(readLine(reader), len(formats), current)-1]

	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

// parseChoice parses a 1-based menu choice, returning defaultVal when the
// input is empty or out of range.
func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > maxVal {
		return defaultVal
	}
	return choice
}

// parseCount parses a non-negative count, returning defaultVal on bad input.
func parseCount(input string, defaultVal int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func parseVariations(input string) []string {
	if strings.EqualFold(strings.TrimSpace(input), "none") {
		return []string{}
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
