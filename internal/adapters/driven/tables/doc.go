// Package tables holds helpers shared by the table file adapters.
//
// Adapters:
//   - csvfile: CSV reader and writer
//   - xlsxfile: XLSX reader and writer (excelize)
//   - jsonfile: JSON writer
//
// The SQLite writer lives in storage/sqlite.
package tables
