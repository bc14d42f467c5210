package driven

import "context"

// PostStore persists post files in the configured posts directory.
type PostStore interface {
	// List returns the post filenames, sorted by name.
	List(ctx context.Context) ([]string, error)

	// Read returns the full text of a post.
	// Returns domain.ErrNotFound if the post does not exist.
	Read(ctx context.Context, filename string) (string, error)

	// Write replaces the post content atomically: readers never observe
	// a partially written file.
	Write(ctx context.Context, filename, content string) error

	// Path returns the absolute path of a post file.
	Path(filename string) string
}
