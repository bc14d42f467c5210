// Package domain defines the core business entities for Quill.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PostMetadata: The ordered metadata block of a post
//   - ParsedDocument: A post split into metadata and body
//   - SearchResult: One entry extracted from a search results page
//   - FetchedDocument: The outcome of a URL fetch
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
