// Package driving declares the services the CLI and TUI call: recommending
// titles, loading and importing catalogs, poster lookup and settings.
//
// internal/core/services implements them.
package driving
