// Package posts implements driven.PostStore on a local directory of
// markdown files.
package posts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.PostStore = (*Store)(nil)

// Store persists posts as .md files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a post store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: posts directory not configured", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating posts directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// List returns the post filenames, sorted by name.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading posts directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Read returns the full text of a post.
func (s *Store) Read(_ context.Context, filename string) (string, error) {
	path, err := s.path(filename)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotFound, filename)
		}
		return "", err
	}
	return string(data), nil
}

// Write replaces the post atomically: the content is written to a
// uniquely named temp file in the same directory and renamed over the
// target, so readers never observe a partial file.
func (s *Store) Write(_ context.Context, filename, content string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	tmp := path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", filename, err)
	}
	return nil
}

// Path returns the absolute path of a post file.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// path validates the filename and resolves it within the store
// directory. Path separators and traversal are rejected.
func (s *Store) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("%w: bad post filename %q", domain.ErrInvalidInput, filename)
	}
	return filepath.Join(s.dir, filename), nil
}
