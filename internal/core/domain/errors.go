package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// For title queries this is an expected outcome, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrEmptyQuery indicates a blank or whitespace-only title query.
	// It wraps ErrNotFound so callers treating both alike can use errors.Is.
	ErrEmptyQuery = fmt.Errorf("empty query: %w", ErrNotFound)

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown catalog format or provider.
	ErrUnsupportedType = errors.New("unsupported type")

	// Catalog Errors.

	// ErrLoad indicates the catalog source is unreadable or malformed.
	// The process cannot recommend anything without a catalog.
	ErrLoad = errors.New("catalog load failed")

	// ErrMissingColumn indicates a required catalog column is absent.
	ErrMissingColumn = fmt.Errorf("missing required column: %w", ErrLoad)

	// ErrMissingTitle indicates a catalog row without a title.
	ErrMissingTitle = fmt.Errorf("row has no title: %w", ErrLoad)

	// Poster Lookup Errors.

	// ErrLookupFailed indicates the poster/metadata service failed.
	// It is always recovered from by substituting a placeholder.
	ErrLookupFailed = errors.New("poster lookup failed")

	// ErrLookupUnavailable indicates no poster provider is configured.
	ErrLookupUnavailable = errors.New("poster lookup unavailable")
)
