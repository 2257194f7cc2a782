// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogSource: Reads the movie catalog (CSV, Parquet, local store)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CatalogStore: Local copy of an imported catalog. Without it, "catalog import" is unavailable.
//   - PosterLookup: Poster/metadata service. Without it, every title shows the placeholder image.
//   - PosterCache: Remembers successful lookups between runs.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
