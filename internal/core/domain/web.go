package domain

// SearchResult is one extracted entry from a search results page.
type SearchResult struct {
	// Title is the link text of the result.
	Title string

	// URL is the result target.
	URL string

	// Snippet is the result summary. Empty when no snippet could be
	// paired with the link.
	Snippet string
}

// FetchedDocument is the outcome of a successful URL fetch.
type FetchedDocument struct {
	// Content is the response body after content-type dispatch:
	// markdown for HTML pages, pretty-printed for JSON, otherwise the
	// body unmodified.
	Content string

	// Title is the document title for HTML pages. Empty otherwise.
	Title string

	// StatusCode is the final HTTP status after redirects.
	StatusCode int

	// FinalURL is the URL that produced the response, after following
	// redirects.
	FinalURL string

	// Length is the byte length of the raw response body.
	Length int
}
