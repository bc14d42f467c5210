// Package mcp provides an MCP (Model Context Protocol) server adapter for Quill.
// It lets AI assistants manage blog posts and retrieve web content through
// a small set of typed tools.
package mcp

import "errors"

// ErrMissingPostService is returned when the post service is not provided.
var ErrMissingPostService = errors.New("mcp: post service is required")

// ErrMissingWebService is returned when the web service is not provided.
var ErrMissingWebService = errors.New("mcp: web service is required")
