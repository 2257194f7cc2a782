package mcp

import (
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Recommend resolves titles and ranks neighbours.
	Recommend driving.RecommendService

	// Posters adds poster links to results. Optional.
	Posters driving.PosterService
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Recommend == nil {
		return ErrMissingRecommendService
	}
	return nil
}
