// Package tui provides an interactive terminal user interface for cinematch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Recommend ranks neighbours of a typed title.
	Recommend driving.RecommendService

	// Posters decorates results with poster links. Optional.
	Posters driving.PosterService

	// Settings backs the settings view. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a Ports aggregate. posters and settings may be nil.
func NewPorts(
	recommend driving.RecommendService,
	posters driving.PosterService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Recommend: recommend,
		Posters:   posters,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	return nil
}
