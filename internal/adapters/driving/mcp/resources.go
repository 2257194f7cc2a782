package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "cinematch://"

// catalogInfo is the body of the catalog resource.
type catalogInfo struct {
	Movies           int `json:"movies"`
	EmptyDescriptors int `json:"empty_descriptors"`
	VocabularySize   int `json:"vocabulary_size"`
}

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Size of the indexed movie catalog",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Recommend.Stats()
	data, err := json.Marshal(catalogInfo{
		Movies:           stats.Entries,
		EmptyDescriptors: stats.EmptyDescriptors,
		VocabularySize:   stats.VocabularySize,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding catalog info: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
