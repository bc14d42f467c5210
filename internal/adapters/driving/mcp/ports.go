package mcp

import (
	"github.com/custodia-labs/quill-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Posts manages the posts directory and site deploys.
	Posts driving.PostService

	// Web retrieves and searches web content.
	Web driving.WebService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Posts == nil {
		return ErrMissingPostService
	}
	if p.Web == nil {
		return ErrMissingWebService
	}
	return nil
}
