// Package domain defines the core business entities for tagsmith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TagSet: A set of normalised tags
//   - RawField: One cell value, possibly missing
//   - Table: An in-memory table of raw fields
//   - EnrichResult: The output of an enrichment run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
