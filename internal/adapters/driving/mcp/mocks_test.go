package mcp

import (
	"context"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// mockPostService is a mock implementation of driving.PostService.
type mockPostService struct {
	posts        []domain.PostInfo
	doc          *domain.ParsedDocument
	deployOutput string
	err          error

	writtenFilename string
	writtenMeta     domain.PostMetadata
	writtenBody     string
}

func (m *mockPostService) List(_ context.Context) ([]domain.PostInfo, error) {
	return m.posts, m.err
}

func (m *mockPostService) Read(_ context.Context, _ string) (*domain.ParsedDocument, error) {
	return m.doc, m.err
}

func (m *mockPostService) Write(
	_ context.Context,
	filename string,
	meta domain.PostMetadata,
	body string,
) error {
	m.writtenFilename = filename
	m.writtenMeta = meta
	m.writtenBody = body
	return m.err
}

func (m *mockPostService) Deploy(_ context.Context) (string, error) {
	return m.deployOutput, m.err
}

// mockWebService is a mock implementation of driving.WebService.
type mockWebService struct {
	doc     *domain.FetchedDocument
	results []domain.SearchResult
	err     error

	fetchedURL  string
	searchQuery string
	searchMax   int
}

func (m *mockWebService) Fetch(_ context.Context, url string) (*domain.FetchedDocument, error) {
	m.fetchedURL = url
	return m.doc, m.err
}

func (m *mockWebService) Search(
	_ context.Context,
	query string,
	max int,
) ([]domain.SearchResult, error) {
	m.searchQuery = query
	m.searchMax = max
	return m.results, m.err
}
