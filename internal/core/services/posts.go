package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quill-cli/internal/frontmatter"
	"github.com/custodia-labs/quill-cli/internal/logger"
)

// Ensure PostService implements the interface.
var _ driving.PostService = (*PostService)(nil)

// PostService manages posts stored as markdown files with a leading
// metadata block.
type PostService struct {
	store    driven.PostStore
	runner   driven.Runner
	settings domain.Settings
}

// NewPostService creates a new post service.
func NewPostService(store driven.PostStore, runner driven.Runner, settings domain.Settings) *PostService {
	return &PostService{
		store:    store,
		runner:   runner,
		settings: settings,
	}
}

// List returns metadata for every post, sorted by filename.
func (s *PostService) List(ctx context.Context) ([]domain.PostInfo, error) {
	filenames, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	infos := make([]domain.PostInfo, 0, len(filenames))
	for _, filename := range filenames {
		text, err := s.store.Read(ctx, filename)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}

		meta := frontmatter.Decode(text).Metadata
		infos = append(infos, domain.PostInfo{
			Filename:   filename,
			Title:      meta.Title,
			Date:       meta.Date,
			Tags:       meta.Tags,
			Categories: meta.Categories,
		})
	}

	logger.Debug("listed %d posts", len(infos))
	return infos, nil
}

// Read parses a post into its metadata block and body.
func (s *PostService) Read(ctx context.Context, filename string) (*domain.ParsedDocument, error) {
	if filename == "" {
		return nil, domain.ErrInvalidInput
	}

	text, err := s.store.Read(ctx, filename)
	if err != nil {
		return nil, err
	}

	doc := frontmatter.Decode(text)
	return &doc, nil
}

// Write serialises metadata and body into canonical form and replaces
// the post atomically.
func (s *PostService) Write(ctx context.Context, filename string, meta domain.PostMetadata, body string) error {
	if filename == "" {
		return domain.ErrInvalidInput
	}

	content := frontmatter.Encode(meta) + body
	if err := s.store.Write(ctx, filename, content); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	logger.Debug("wrote post %s (%d bytes)", filename, len(content))
	return nil
}

// Deploy runs the configured build/deploy command in the site
// directory. The command's combined output is returned either way so
// failures carry the build log.
func (s *PostService) Deploy(ctx context.Context) (string, error) {
	command := s.settings.DeployCommand
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("%w: no deploy command configured", domain.ErrInvalidInput)
	}

	logger.Info("deploying: %s", command)
	output, err := s.runner.Run(ctx, s.settings.SiteDir, command)
	if err != nil {
		return output, fmt.Errorf("%w: %v", domain.ErrDeployFailed, err)
	}

	return output, nil
}
