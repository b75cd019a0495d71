// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Normaliser: Cleans one raw tag string
//   - VariationGenerator: Produces lexical variants of a tag
//   - VariationPipeline: Expands a tag into its variation set
//   - TableReader: Loads a table from a file
//   - TableWriter: Writes an enriched table to a file
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProgressReporter: Reports per-column progress. Nil means silent.
//   - ReportRenderer: Renders the keyword report. Nil means no report.
//   - FileWatcher: Signals input file changes for watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser or variation package
package driven
