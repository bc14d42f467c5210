package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// PostListInput is the input schema for the post_list tool.
type PostListInput struct{}

// PostListOutput is the output schema for the post_list tool.
type PostListOutput struct {
	Posts []PostInfoOutput `json:"posts"`
	Count int              `json:"count"`
}

// PostInfoOutput is one row of a post listing.
type PostInfoOutput struct {
	Filename   string   `json:"filename"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// PostReadInput is the input schema for the post_read tool.
type PostReadInput struct {
	Filename string `json:"filename" jsonschema:"the post filename within the posts directory, e.g. hello-world.md"`
}

// PostReadOutput is the output schema for the post_read tool.
type PostReadOutput struct {
	Filename   string       `json:"filename"`
	Title      string       `json:"title"`
	Date       string       `json:"date"`
	Tags       []string     `json:"tags"`
	Categories []string     `json:"categories"`
	Extra      []ExtraField `json:"extra,omitempty"`
	Body       string       `json:"body"`
}

// ExtraField is a metadata field beyond the fixed set, in block order.
type ExtraField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PostWriteInput is the input schema for the post_write tool.
type PostWriteInput struct {
	Filename   string       `json:"filename" jsonschema:"the post filename within the posts directory, e.g. hello-world.md"`
	Title      string       `json:"title" jsonschema:"the post title"`
	Date       string       `json:"date,omitempty" jsonschema:"the publication date, e.g. 2026-08-31 10:00:00"`
	Tags       []string     `json:"tags,omitempty" jsonschema:"tags for the post"`
	Categories []string     `json:"categories,omitempty" jsonschema:"categories for the post"`
	Extra      []ExtraField `json:"extra,omitempty" jsonschema:"additional metadata fields, written in the given order"`
	Body       string       `json:"body" jsonschema:"the markdown body of the post"`
}

// PostWriteOutput is the output schema for the post_write tool.
type PostWriteOutput struct {
	Filename string `json:"filename"`
	Written  bool   `json:"written"`
}

// SiteDeployInput is the input schema for the site_deploy tool.
type SiteDeployInput struct{}

// SiteDeployOutput is the output schema for the site_deploy tool.
type SiteDeployOutput struct {
	Output string `json:"output"`
}

// WebFetchInput is the input schema for the web_fetch tool.
type WebFetchInput struct {
	URL string `json:"url" jsonschema:"the http or https URL to fetch"`
}

// WebFetchOutput is the output schema for the web_fetch tool.
type WebFetchOutput struct {
	Content    string `json:"content"`
	Title      string `json:"title,omitempty"`
	StatusCode int    `json:"status_code"`
	FinalURL   string `json:"final_url"`
	Length     int    `json:"length"`
}

// WebSearchInput is the input schema for the web_search tool.
type WebSearchInput struct {
	Query string `json:"query" jsonschema:"the search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// WebSearchOutput is the output schema for the web_search tool.
type WebSearchOutput struct {
	Results []WebSearchResultOutput `json:"results"`
	Count   int                     `json:"count"`
}

// WebSearchResultOutput represents a single search result.
type WebSearchResultOutput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "post_list",
		Description: "List all posts with their metadata",
	}, s.handlePostList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "post_read",
		Description: "Read a post's metadata and markdown body",
	}, s.handlePostRead)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "post_write",
		Description: "Create or replace a post from metadata and a markdown body",
	}, s.handlePostWrite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "site_deploy",
		Description: "Run the configured site build and deploy command",
	}, s.handleSiteDeploy)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "web_fetch",
		Description: "Fetch a URL and return its content as markdown or text",
	}, s.handleWebFetch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "web_search",
		Description: "Search the web and return structured results",
	}, s.handleWebSearch)
}

// handlePostList handles the post_list tool invocation.
func (s *Server) handlePostList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ PostListInput,
) (*mcp.CallToolResult, PostListOutput, error) {
	posts, err := s.ports.Posts.List(ctx)
	if err != nil {
		return nil, PostListOutput{}, err
	}

	output := PostListOutput{
		Posts: make([]PostInfoOutput, len(posts)),
		Count: len(posts),
	}

	for i := range posts {
		output.Posts[i] = PostInfoOutput{
			Filename:   posts[i].Filename,
			Title:      posts[i].Title,
			Date:       posts[i].Date,
			Tags:       posts[i].Tags,
			Categories: posts[i].Categories,
		}
	}

	return nil, output, nil
}

// handlePostRead handles the post_read tool invocation.
func (s *Server) handlePostRead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostReadInput,
) (*mcp.CallToolResult, PostReadOutput, error) {
	doc, err := s.ports.Posts.Read(ctx, input.Filename)
	if err != nil {
		return nil, PostReadOutput{}, err
	}

	output := PostReadOutput{
		Filename:   input.Filename,
		Title:      doc.Metadata.Title,
		Date:       doc.Metadata.Date,
		Tags:       doc.Metadata.Tags,
		Categories: doc.Metadata.Categories,
		Extra:      extraFields(doc.Metadata.Extra),
		Body:       doc.Body,
	}

	return nil, output, nil
}

// handlePostWrite handles the post_write tool invocation.
func (s *Server) handlePostWrite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostWriteInput,
) (*mcp.CallToolResult, PostWriteOutput, error) {
	meta := domain.NewPostMetadata()
	meta.Title = input.Title
	meta.Date = input.Date
	if input.Tags != nil {
		meta.Tags = input.Tags
	}
	if input.Categories != nil {
		meta.Categories = input.Categories
	}
	for _, f := range input.Extra {
		meta.Set(f.Key, f.Value)
	}

	if err := s.ports.Posts.Write(ctx, input.Filename, meta, input.Body); err != nil {
		return nil, PostWriteOutput{}, err
	}

	return nil, PostWriteOutput{Filename: input.Filename, Written: true}, nil
}

// handleSiteDeploy handles the site_deploy tool invocation.
func (s *Server) handleSiteDeploy(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SiteDeployInput,
) (*mcp.CallToolResult, SiteDeployOutput, error) {
	out, err := s.ports.Posts.Deploy(ctx)
	if err != nil {
		return nil, SiteDeployOutput{Output: out}, err
	}
	return nil, SiteDeployOutput{Output: out}, nil
}

// handleWebFetch handles the web_fetch tool invocation.
func (s *Server) handleWebFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WebFetchInput,
) (*mcp.CallToolResult, WebFetchOutput, error) {
	doc, err := s.ports.Web.Fetch(ctx, input.URL)
	if err != nil {
		return nil, WebFetchOutput{}, err
	}

	output := WebFetchOutput{
		Content:    doc.Content,
		Title:      doc.Title,
		StatusCode: doc.StatusCode,
		FinalURL:   doc.FinalURL,
		Length:     doc.Length,
	}

	return nil, output, nil
}

// handleWebSearch handles the web_search tool invocation.
func (s *Server) handleWebSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WebSearchInput,
) (*mcp.CallToolResult, WebSearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.ports.Web.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, WebSearchOutput{}, err
	}

	output := WebSearchOutput{
		Results: make([]WebSearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = WebSearchResultOutput{
			Title:   results[i].Title,
			URL:     results[i].URL,
			Snippet: results[i].Snippet,
		}
	}

	return nil, output, nil
}

// extraFields converts ordered metadata fields into their tool output
// form, coercing each value to a string.
func extraFields(fields []domain.Field) []ExtraField {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ExtraField, len(fields))
	for i, f := range fields {
		out[i] = ExtraField{Key: f.Key, Value: fieldString(f.Value)}
	}
	return out
}

// fieldString renders a metadata value as a single string.
func fieldString(v domain.FieldValue) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
