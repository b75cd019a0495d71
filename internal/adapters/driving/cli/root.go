// Package cli implements the tagsmith command line interface using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
	"github.com/custodia-labs/tagsmith/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the ports the commands drive.
type Services struct {
	Tags       driving.TagService
	Enrich     driving.EnrichService
	Table      driving.TableService
	Settings   driving.SettingsService
	TextReport driven.ReportRenderer
	JSONReport driven.ReportRenderer
	Watcher    driven.FileWatcher

	// QuietEnrich reports no progress; the TUI owns the terminal.
	QuietEnrich driving.EnrichService

	// CSV parses inline CSV for the MCP server.
	CSV mcp.TableParser

	// ConfigPath is shown by "settings path".
	ConfigPath string
}

// ServiceFactory builds the services once flags are parsed.
type ServiceFactory func(configDir string) (*Services, error)

var (
	services       *Services
	serviceFactory ServiceFactory

	verbose   bool
	configDir string
)

// errNotConfigured is returned when a command runs before services are set.
var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "tagsmith",
	Short: "Extract SEO tags from spreadsheet columns",
	Long: `tagsmith turns delimited tag fields in CSV and XLSX files into
normalised SEO keywords, meta descriptions and keyword reports.

Each tag is lowercased, stripped of punctuation and expanded with spacing
and plural variations. Selected columns gain "{column}_seo_tags" and
"{column}_meta_description" companions.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.tagsmith)")
}

// SetServices sets the services used by all commands.
func SetServices(s *Services) {
	services = s
}

// SetServiceFactory sets the factory used to build services lazily.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, so commands stop when it
// is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup enables verbose logging and builds services on first use.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if services != nil || serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	services = s
	return nil
}

// requireServices returns the configured services or errNotConfigured.
func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}

// currentSettings returns the stored settings, or the defaults when no
// settings service is configured.
func currentSettings(s *Services) (*domain.AppSettings, error) {
	if s.Settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return s.Settings.Get()
}
