package driving

import (
	"context"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// PostService manages the posts directory.
type PostService interface {
	// List returns metadata for every post, sorted by filename.
	List(ctx context.Context) ([]domain.PostInfo, error)

	// Read parses a post into its metadata block and body.
	Read(ctx context.Context, filename string) (*domain.ParsedDocument, error)

	// Write serialises metadata and body into a post file, replacing it
	// atomically.
	Write(ctx context.Context, filename string, meta domain.PostMetadata, body string) error

	// Deploy runs the configured site build/deploy command and returns
	// its output.
	Deploy(ctx context.Context) (string, error)
}
