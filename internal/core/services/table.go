package services

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
	"github.com/custodia-labs/tagsmith/internal/logger"
)

// Ensure TableService implements the interface.
var _ driving.TableService = (*TableService)(nil)

// TableService picks table readers and writers by file extension.
type TableService struct {
	readers       map[string]driven.TableReader
	writers       map[domain.OutputFormat]driven.TableWriter
	missingValues []string
	defaultFormat domain.OutputFormat
}

// NewTableService creates a table service over the given adapters.
// Later adapters override earlier ones for the same extension or format.
func NewTableService(
	readers []driven.TableReader,
	writers []driven.TableWriter,
	settings domain.AppSettings,
) *TableService {
	s := &TableService{
		readers:       make(map[string]driven.TableReader),
		writers:       make(map[domain.OutputFormat]driven.TableWriter),
		missingValues: settings.Extract.MissingValues,
		defaultFormat: settings.Output.Format,
	}
	for _, r := range readers {
		for _, ext := range r.Extensions() {
			s.readers[strings.ToLower(ext)] = r
		}
	}
	for _, w := range writers {
		s.writers[w.Format()] = w
	}
	if !s.defaultFormat.IsValid() {
		s.defaultFormat = domain.OutputFormatCSV
	}
	return s
}

// Load reads the table at path with the reader registered for its extension.
func (s *TableService) Load(ctx context.Context, path, sheet string) (*domain.Table, error) {
	ext := extension(path)
	reader, ok := s.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: cannot read %q files (supported: %s)",
			domain.ErrUnsupportedFormat, ext, strings.Join(s.SupportedInputs(), ", "))
	}

	logger.Debug("Loading %s (sheet %q)", path, sheet)
	table, err := reader.Read(ctx, path, driven.ReadOptions{
		Sheet:         sheet,
		MissingValues: s.missingValues,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d rows, %d columns", table.Len(), len(table.Columns))
	return table, nil
}

// Save writes result with the writer for path's extension.
func (s *TableService) Save(ctx context.Context, path string, result *domain.EnrichResult) (string, error) {
	if path == "" {
		path = domain.DefaultOutputBaseName
	}

	format := s.defaultFormat
	if ext := extension(path); ext == "" {
		path += "." + format.Extension()
	} else {
		parsed, ok := domain.ParseOutputFormat(ext)
		if !ok {
			return "", fmt.Errorf("%w: cannot write %q files", domain.ErrUnsupportedFormat, ext)
		}
		format = parsed
	}

	writer, ok := s.writers[format]
	if !ok {
		return "", fmt.Errorf("%w: no writer for %s", domain.ErrUnsupportedFormat, format)
	}

	logger.Debug("Writing %s as %s", path, format)
	if err := writer.Write(ctx, path, result); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// SupportedInputs returns the readable file extensions, sorted.
func (s *TableService) SupportedInputs() []string {
	exts := make([]string, 0, len(s.readers))
	for ext := range s.readers {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// extension returns the lowercased extension of path without the dot.
func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
