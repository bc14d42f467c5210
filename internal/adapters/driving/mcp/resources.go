package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Quill resources.
	uriScheme = "quill://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing posts.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "posts",
		Name:        "posts",
		Description: "List of all posts with their metadata",
		MIMEType:    "application/json",
	}, s.handlePostsResource)

	// Template for post content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "posts/{filename}",
		Name:        "post-content",
		Description: "Raw content of a specific post",
		MIMEType:    "text/markdown",
	}, s.handlePostContentResource)
}

// handlePostsResource returns a list of all posts.
func (s *Server) handlePostsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	posts, err := s.ports.Posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	// Build simplified post list.
	type postInfo struct {
		Filename string   `json:"filename"`
		Title    string   `json:"title"`
		Date     string   `json:"date"`
		Tags     []string `json:"tags"`
	}

	infos := make([]postInfo, len(posts))
	for i := range posts {
		infos[i] = postInfo{
			Filename: posts[i].Filename,
			Title:    posts[i].Title,
			Date:     posts[i].Date,
			Tags:     posts[i].Tags,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling posts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePostContentResource returns the raw content of a specific post.
func (s *Server) handlePostContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract filename from URI: quill://posts/{filename}
	filename := extractPostFilename(req.Params.URI)
	if filename == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Posts.Read(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("reading post: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     doc.Raw,
		}},
	}, nil
}

// extractPostFilename extracts the filename from a URI like quill://posts/{filename}.
func extractPostFilename(uri string) string {
	const prefix = uriScheme + "posts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
