package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

func newTestServer(t *testing.T, posts *mockPostService, web *mockWebService) *Server {
	t.Helper()
	if posts == nil {
		posts = &mockPostService{}
	}
	if web == nil {
		web = &mockWebService{}
	}
	server, err := NewServer(&Ports{Posts: posts, Web: web})
	require.NoError(t, err)
	return server
}

func TestServer_handlePostList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns posts", func(t *testing.T) {
		posts := &mockPostService{
			posts: []domain.PostInfo{
				{
					Filename:   "hello-world.md",
					Title:      "Hello World",
					Date:       "2026-08-30 10:00:00",
					Tags:       []string{"intro"},
					Categories: []string{},
				},
			},
		}
		server := newTestServer(t, posts, nil)

		_, output, err := server.handlePostList(ctx, nil, PostListInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Posts, 1)
		assert.Equal(t, "hello-world.md", output.Posts[0].Filename)
		assert.Equal(t, "Hello World", output.Posts[0].Title)
		assert.Equal(t, []string{"intro"}, output.Posts[0].Tags)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		posts := &mockPostService{err: errors.New("disk gone")}
		server := newTestServer(t, posts, nil)

		_, _, err := server.handlePostList(ctx, nil, PostListInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")
	})
}

func TestServer_handlePostRead(t *testing.T) {
	ctx := context.Background()

	t.Run("returns metadata and body", func(t *testing.T) {
		meta := domain.NewPostMetadata()
		meta.Title = "A Post"
		meta.Date = "2026-08-30"
		meta.Tags = []string{"go"}
		meta.Set("permalink", "/a-post/")

		posts := &mockPostService{
			doc: &domain.ParsedDocument{
				Metadata: meta,
				Body:     "The body.",
			},
		}
		server := newTestServer(t, posts, nil)

		_, output, err := server.handlePostRead(ctx, nil, PostReadInput{Filename: "a-post.md"})

		require.NoError(t, err)
		assert.Equal(t, "a-post.md", output.Filename)
		assert.Equal(t, "A Post", output.Title)
		assert.Equal(t, []string{"go"}, output.Tags)
		assert.Equal(t, "The body.", output.Body)
		require.Len(t, output.Extra, 1)
		assert.Equal(t, "permalink", output.Extra[0].Key)
		assert.Equal(t, "/a-post/", output.Extra[0].Value)
	})

	t.Run("returns error for missing post", func(t *testing.T) {
		posts := &mockPostService{err: domain.ErrNotFound}
		server := newTestServer(t, posts, nil)

		_, _, err := server.handlePostRead(ctx, nil, PostReadInput{Filename: "nope.md"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handlePostWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("passes metadata through to the service", func(t *testing.T) {
		posts := &mockPostService{}
		server := newTestServer(t, posts, nil)

		input := PostWriteInput{
			Filename:   "new.md",
			Title:      "New Post",
			Date:       "2026-08-31",
			Tags:       []string{"draft"},
			Categories: []string{"notes"},
			Extra:      []ExtraField{{Key: "layout", Value: "post"}},
			Body:       "Content.",
		}
		_, output, err := server.handlePostWrite(ctx, nil, input)

		require.NoError(t, err)
		assert.True(t, output.Written)
		assert.Equal(t, "new.md", posts.writtenFilename)
		assert.Equal(t, "New Post", posts.writtenMeta.Title)
		assert.Equal(t, []string{"draft"}, posts.writtenMeta.Tags)
		assert.Equal(t, []string{"notes"}, posts.writtenMeta.Categories)
		assert.Equal(t, "Content.", posts.writtenBody)

		layout, ok := posts.writtenMeta.Lookup("layout")
		require.True(t, ok)
		assert.Equal(t, "post", layout)
	})

	t.Run("omitted lists stay non-nil", func(t *testing.T) {
		posts := &mockPostService{}
		server := newTestServer(t, posts, nil)

		input := PostWriteInput{Filename: "bare.md", Title: "Bare"}
		_, _, err := server.handlePostWrite(ctx, nil, input)

		require.NoError(t, err)
		assert.NotNil(t, posts.writtenMeta.Tags)
		assert.NotNil(t, posts.writtenMeta.Categories)
	})

	t.Run("returns error on write failure", func(t *testing.T) {
		posts := &mockPostService{err: errors.New("read-only filesystem")}
		server := newTestServer(t, posts, nil)

		input := PostWriteInput{Filename: "new.md", Title: "New"}
		_, _, err := server.handlePostWrite(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only filesystem")
	})
}

func TestServer_handleSiteDeploy(t *testing.T) {
	ctx := context.Background()

	t.Run("returns command output", func(t *testing.T) {
		posts := &mockPostService{deployOutput: "INFO Deploy done\n"}
		server := newTestServer(t, posts, nil)

		_, output, err := server.handleSiteDeploy(ctx, nil, SiteDeployInput{})

		require.NoError(t, err)
		assert.Equal(t, "INFO Deploy done\n", output.Output)
	})

	t.Run("keeps output on failure", func(t *testing.T) {
		posts := &mockPostService{
			deployOutput: "FATAL something broke\n",
			err:          domain.ErrDeployFailed,
		}
		server := newTestServer(t, posts, nil)

		_, output, err := server.handleSiteDeploy(ctx, nil, SiteDeployInput{})

		assert.ErrorIs(t, err, domain.ErrDeployFailed)
		assert.Equal(t, "FATAL something broke\n", output.Output)
	})
}

func TestServer_handleWebFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns fetched document", func(t *testing.T) {
		web := &mockWebService{
			doc: &domain.FetchedDocument{
				Content:    "# Hi\n\nBody.",
				Title:      "Hi",
				StatusCode: 200,
				FinalURL:   "https://example.com/",
				Length:     42,
			},
		}
		server := newTestServer(t, nil, web)

		input := WebFetchInput{URL: "https://example.com/"}
		_, output, err := server.handleWebFetch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", web.fetchedURL)
		assert.Equal(t, "# Hi\n\nBody.", output.Content)
		assert.Equal(t, "Hi", output.Title)
		assert.Equal(t, 200, output.StatusCode)
		assert.Equal(t, 42, output.Length)
	})

	t.Run("returns error on fetch failure", func(t *testing.T) {
		web := &mockWebService{err: domain.ErrTooManyRedirects}
		server := newTestServer(t, nil, web)

		input := WebFetchInput{URL: "https://loop.example/"}
		_, _, err := server.handleWebFetch(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrTooManyRedirects)
	})
}

func TestServer_handleWebSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		web := &mockWebService{
			results: []domain.SearchResult{
				{
					Title:   "Go Blog",
					URL:     "https://go.dev/blog/",
					Snippet: "The Go programming language blog.",
				},
			},
		}
		server := newTestServer(t, nil, web)

		input := WebSearchInput{Query: "go blog", Limit: 5}
		_, output, err := server.handleWebSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "go blog", web.searchQuery)
		assert.Equal(t, 5, web.searchMax)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "Go Blog", output.Results[0].Title)
		assert.Equal(t, "https://go.dev/blog/", output.Results[0].URL)
	})

	t.Run("default limit is 10", func(t *testing.T) {
		web := &mockWebService{}
		server := newTestServer(t, nil, web)

		input := WebSearchInput{Query: "anything"}
		_, output, err := server.handleWebSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 10, web.searchMax)
		assert.Equal(t, 0, output.Count)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		web := &mockWebService{err: errors.New("provider unreachable")}
		server := newTestServer(t, nil, web)

		input := WebSearchInput{Query: "anything"}
		_, _, err := server.handleWebSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider unreachable")
	})
}

func TestFieldString(t *testing.T) {
	tests := []struct {
		name     string
		value    domain.FieldValue
		expected string
	}{
		{name: "string", value: "hello", expected: "hello"},
		{name: "string list", value: []string{"a", "b"}, expected: "a, b"},
		{name: "bool", value: true, expected: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fieldString(tt.value))
		})
	}
}
