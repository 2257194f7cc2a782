// Package mcp serves cinematch recommendations to MCP (Model Context
// Protocol) clients such as AI assistants, over stdio.
package mcp

import "errors"

// ErrMissingRecommendService is returned when the recommend service is not provided.
var ErrMissingRecommendService = errors.New("mcp: recommend service is required")
