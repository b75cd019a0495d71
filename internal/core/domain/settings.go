package domain

import "strings"

const unknownDescription = "Unknown"

// DefaultDelimiter separates tags within a field unless configured otherwise.
const DefaultDelimiter = ","

// Variation generator names.
const (
	// VariationCompact removes internal spaces ("machine learning" -> "machinelearning").
	VariationCompact = "compact"

	// VariationHyphenate replaces internal spaces with hyphens.
	VariationHyphenate = "hyphenate"

	// VariationPlural toggles a trailing "s".
	VariationPlural = "plural"
)

// DefaultVariations returns the variation generators applied by default, in order.
func DefaultVariations() []string {
	return []string{VariationCompact, VariationHyphenate, VariationPlural}
}

// DefaultMissingValues returns the cell values read as missing. The list
// mirrors the markers spreadsheet tooling conventionally treats as null.
func DefaultMissingValues() []string {
	return []string{
		"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
		"n/a", "nan", "null",
	}
}

// OutputFormat identifies the file format of an enriched table.
type OutputFormat string

// Available output formats.
const (
	OutputFormatCSV    OutputFormat = "csv"
	OutputFormatJSON   OutputFormat = "json"
	OutputFormatXLSX   OutputFormat = "xlsx"
	OutputFormatSQLite OutputFormat = "sqlite"
)

// ParseOutputFormat maps a format name or file extension to a format.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch s {
	case "csv":
		return OutputFormatCSV, true
	case "json":
		return OutputFormatJSON, true
	case "xlsx":
		return OutputFormatXLSX, true
	case "sqlite", "sqlite3", "db":
		return OutputFormatSQLite, true
	default:
		return "", false
	}
}

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatCSV, OutputFormatJSON, OutputFormatXLSX, OutputFormatSQLite:
		return true
	default:
		return false
	}
}

// Extension returns the file extension used for the format, without a dot.
func (f OutputFormat) Extension() string {
	if f == OutputFormatSQLite {
		return "db"
	}
	return string(f)
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatCSV:
		return "CSV (comma-separated values)"
	case OutputFormatJSON:
		return "JSON (array of row objects)"
	case OutputFormatXLSX:
		return "XLSX (Excel workbook)"
	case OutputFormatSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// ExtractSettings controls how tags are extracted from fields.
type ExtractSettings struct {
	// Delimiter separates tags within a field.
	Delimiter string

	// Variations lists the variation generators to apply, in order.
	Variations []string

	// MissingValues lists the cell values read as missing.
	MissingValues []string
}

// ReportSettings controls keyword report layout.
type ReportSettings struct {
	// PrimaryCount is the size of the primary keyword bucket.
	PrimaryCount int

	// LongTailCount is the size of the long-tail keyword bucket.
	LongTailCount int
}

// OutputSettings controls how enriched tables are written.
type OutputSettings struct {
	// Format is used when the output path has no recognised extension.
	Format OutputFormat
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Extract ExtractSettings
	Report  ReportSettings
	Output  OutputSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Extract: ExtractSettings{
			Delimiter:     DefaultDelimiter,
			Variations:    DefaultVariations(),
			MissingValues: DefaultMissingValues(),
		},
		Report: ReportSettings{
			PrimaryCount:  DefaultPrimaryKeywords,
			LongTailCount: DefaultLongTailKeywords,
		},
		Output: OutputSettings{
			Format: OutputFormatCSV,
		},
	}
}

// Default output file names.
const (
	DefaultOutputBaseName = "seo_enhanced_dataset"
	DefaultReportFileName = "seo_tags_report.txt"
)

// UnescapeDelimiter turns the shell-friendly spellings \t, "tab" and \n into
// the characters they name. Other values are returned unchanged.
func UnescapeDelimiter(value string) string {
	switch value {
	case `\t`, "tab":
		return "\t"
	case `\n`:
		return "\n"
	default:
		return value
	}
}
