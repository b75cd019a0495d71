package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDelimiter     = "extract.delimiter"
	KeyVariations    = "extract.variations"
	KeyMissingValues = "extract.missing_values"
	KeyPrimary       = "report.primary"
	KeyLongTail      = "report.long_tail"
	KeyOutputFormat  = "output.format"
)

// variationsNone is accepted by Set to disable every variation generator.
const variationsNone = "none"

// SettingsService manages application settings.
// Stored values that fail validation are ignored in favour of defaults.
type SettingsService struct {
	configStore driven.ConfigStore
	variations  []string
}

// NewSettingsService creates a new settings service.
// knownVariations lists the variation generator names Set accepts; nil means
// the built-in set.
func NewSettingsService(configStore driven.ConfigStore, knownVariations []string) *SettingsService {
	if knownVariations == nil {
		knownVariations = domain.DefaultVariations()
	}
	return &SettingsService{
		configStore: configStore,
		variations:  knownVariations,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Extract: domain.ExtractSettings{
			Delimiter:     s.getDelimiter(defaults.Extract.Delimiter),
			Variations:    s.getVariations(defaults.Extract.Variations),
			MissingValues: s.getStringSlice(KeyMissingValues, defaults.Extract.MissingValues),
		},
		Report: domain.ReportSettings{
			PrimaryCount:  s.getCount(KeyPrimary, defaults.Report.PrimaryCount),
			LongTailCount: s.getCount(KeyLongTail, defaults.Report.LongTailCount),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := s.validate(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyDelimiter, settings.Extract.Delimiter},
		{KeyVariations, settings.Extract.Variations},
		{KeyMissingValues, settings.Extract.MissingValues},
		{KeyPrimary, settings.Report.PrimaryCount},
		{KeyLongTail, settings.Report.LongTailCount},
		{KeyOutputFormat, settings.Output.Format.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and persists it.
//
// Lists are comma-separated. The delimiter accepts the escapes \t and \n.
// extract.variations accepts "none" to disable variations.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := s.parse(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored value so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !slices.Contains(s.Keys(), key) {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{KeyDelimiter, KeyVariations, KeyMissingValues, KeyPrimary, KeyLongTail, KeyOutputFormat}
	slices.Sort(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// parse converts the textual form of a setting into its stored value.
func (s *SettingsService) parse(key, value string) (any, error) {
	switch key {
	case KeyDelimiter:
		delim := domain.UnescapeDelimiter(value)
		if delim == "" {
			return nil, fmt.Errorf("%w: must not be empty", domain.ErrInvalidDelimiter)
		}
		return delim, nil

	case KeyVariations:
		if strings.EqualFold(strings.TrimSpace(value), variationsNone) {
			return []string{}, nil
		}
		names := splitList(value)
		for _, name := range names {
			if !slices.Contains(s.variations, name) {
				return nil, fmt.Errorf("%w: %q (known: %s)",
					domain.ErrUnknownVariation, name, strings.Join(s.variations, ", "))
			}
		}
		return names, nil

	case KeyMissingValues:
		return splitList(value), nil

	case KeyPrimary, KeyLongTail:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer, got %q",
				domain.ErrInvalidSetting, key, value)
		}
		return n, nil

	case KeyOutputFormat:
		format, ok := domain.ParseOutputFormat(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, value)
		}
		return format.String(), nil

	default:
		return nil, fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
}

func (s *SettingsService) validate(settings *domain.AppSettings) error {
	if settings.Extract.Delimiter == "" {
		return fmt.Errorf("%w: must not be empty", domain.ErrInvalidDelimiter)
	}
	for _, name := range settings.Extract.Variations {
		if !slices.Contains(s.variations, name) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownVariation, name)
		}
	}
	if settings.Report.PrimaryCount < 0 || settings.Report.LongTailCount < 0 {
		return fmt.Errorf("%w: keyword counts must not be negative", domain.ErrInvalidSetting)
	}
	if !settings.Output.Format.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, settings.Output.Format)
	}
	return nil
}

func (s *SettingsService) getDelimiter(defaultVal string) string {
	if val := s.configStore.GetString(KeyDelimiter); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getVariations(defaultVal []string) []string {
	raw, exists := s.configStore.Get(KeyVariations)
	if !exists {
		return defaultVal
	}
	names := s.configStore.GetStringSlice(KeyVariations)
	if len(names) == 0 {
		// An empty stored list disables every generator.
		switch raw.(type) {
		case []string, []any:
			return []string{}
		}
		return defaultVal
	}
	for _, name := range names {
		if !slices.Contains(s.variations, name) {
			return defaultVal
		}
	}
	return names
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	if val := s.configStore.GetStringSlice(key); val != nil {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getCount(key string, defaultVal int) int {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64, float64:
	default:
		return defaultVal
	}
	if n := s.configStore.GetInt(key); n >= 0 {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format, ok := domain.ParseOutputFormat(s.configStore.GetString(KeyOutputFormat))
	if !ok {
		return defaultVal
	}
	return format
}

// splitList splits a comma-separated list, trimming each item.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
