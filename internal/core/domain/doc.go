// Package domain defines the core business entities for Cinematch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CatalogEntry: A movie title with its combined descriptor text
//   - Catalog: The ordered, position-addressed movie collection
//   - Recommendation: A resolved title with its ranked neighbours
//   - Poster: Display metadata for a single title
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
