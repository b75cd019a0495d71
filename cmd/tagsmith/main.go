// Command tagsmith extracts SEO tags from delimited columns of CSV and XLSX
// files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/progress"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/report"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables/csvfile"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables/jsonfile"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables/xlsxfile"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/watch"
	"github.com/custodia-labs/tagsmith/internal/adapters/driving/cli"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/services"
	"github.com/custodia-labs/tagsmith/internal/logger"
	"github.com/custodia-labs/tagsmith/internal/normalisers/seo"
	"github.com/custodia-labs/tagsmith/internal/variations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetServiceFactory(buildServices)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the adapters around the core for configDir.
// An empty configDir uses ~/.tagsmith.
func buildServices(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	registry := variations.NewRegistry()
	variations.RegisterDefaults(registry)

	settingsService := services.NewSettingsService(configStore, registry.Names())
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	pipeline, err := registry.BuildPipeline(settings.Extract.Variations)
	if err != nil {
		return nil, err
	}
	logger.Debug("Variations: %v", pipeline.Names())

	tagService := services.NewTagService(seo.New(), pipeline)
	csvReader := csvfile.NewReader()

	tableService := services.NewTableService(
		[]driven.TableReader{csvReader, xlsxfile.NewReader()},
		[]driven.TableWriter{
			csvfile.NewWriter(),
			jsonfile.NewWriter(),
			xlsxfile.NewWriter(),
			sqlite.NewWriter(),
		},
		*settings,
	)

	return &cli.Services{
		Tags:        tagService,
		Enrich:      services.NewEnrichService(tagService, settings.Report, progress.New(os.Stderr)),
		QuietEnrich: services.NewEnrichService(tagService, settings.Report, nil),
		Table:       tableService,
		Settings:    settingsService,
		TextReport:  report.NewTextRenderer(),
		JSONReport:  report.NewJSONRenderer(),
		Watcher:     watch.New(0),
		CSV:         csvReader,
		ConfigPath:  configStore.Path(),
	}, nil
}
