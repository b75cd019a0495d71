// Package sqlite exports enrichment runs to SQLite database files.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A database holds three tables:
//
//   - runs: one row per enrichment run
//   - keywords: the ranked tags of every processed column, per run
//   - rows: the enriched table of the most recent run
//
// # Schema
//
// runs and keywords are managed through versioned migrations stored in the
// migrations/ directory. rows mirrors the table being written and is
// recreated on every write.
package sqlite
