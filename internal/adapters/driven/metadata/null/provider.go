// Package null provides a poster lookup that never finds anything.
package null

import (
	"context"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.PosterLookup = (*Provider)(nil)

// Provider is used when poster lookups are disabled or unconfigured.
// Every title falls back to the placeholder image.
type Provider struct {
	reason string
}

// NewProvider creates a lookup that always fails with
// domain.ErrLookupUnavailable. reason is included in the error.
func NewProvider(reason string) *Provider {
	return &Provider{reason: reason}
}

// Name identifies the provider in logs.
func (p *Provider) Name() string {
	return "none"
}

// LookupPoster returns domain.ErrLookupUnavailable.
func (p *Provider) LookupPoster(_ context.Context, _ string) (*domain.PosterInfo, error) {
	if p.reason == "" {
		return nil, domain.ErrLookupUnavailable
	}
	return nil, &unavailableError{reason: p.reason}
}

type unavailableError struct {
	reason string
}

func (e *unavailableError) Error() string {
	return domain.ErrLookupUnavailable.Error() + ": " + e.reason
}

func (e *unavailableError) Unwrap() error {
	return domain.ErrLookupUnavailable
}
