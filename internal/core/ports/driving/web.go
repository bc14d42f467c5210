package driving

import (
	"context"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// WebService retrieves web content for the agent.
type WebService interface {
	// Fetch retrieves a URL and converts the response for text
	// consumption: HTML becomes markdown, JSON is pretty-printed,
	// anything else passes through unmodified.
	Fetch(ctx context.Context, url string) (*domain.FetchedDocument, error)

	// Search queries the configured search provider and extracts up to
	// max structured results.
	Search(ctx context.Context, query string, max int) ([]domain.SearchResult, error)
}
