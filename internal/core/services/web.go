package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quill-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quill-cli/internal/htmlmd"
	"github.com/custodia-labs/quill-cli/internal/logger"
	"github.com/custodia-labs/quill-cli/internal/serp"
)

// Ensure WebService implements the interface.
var _ driving.WebService = (*WebService)(nil)

// userAgent identifies quill to the sites it fetches.
const userAgent = "quill/1.0 (+https://github.com/custodia-labs/quill-cli)"

// defaultSearchLimit applies when a caller passes a non-positive max.
const defaultSearchLimit = 10

// WebService retrieves web content through a Transport, applying the
// retrieval policy: bounded redirects, a response size cap, and a
// per-call timeout. The transport itself never follows redirects.
type WebService struct {
	transport driven.Transport
	settings  domain.Settings
}

// NewWebService creates a new web service.
func NewWebService(transport driven.Transport, settings domain.Settings) *WebService {
	return &WebService{
		transport: transport,
		settings:  settings,
	}
}

// Fetch retrieves a URL and converts the response by declared content
// type: HTML to markdown, JSON pretty-printed, anything else unmodified.
func (s *WebService) Fetch(ctx context.Context, rawURL string) (*domain.FetchedDocument, error) {
	resp, err := s.retrieve(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc := &domain.FetchedDocument{
		StatusCode: resp.statusCode,
		FinalURL:   resp.finalURL,
		Length:     len(resp.body),
	}

	switch {
	case isHTML(resp.contentType):
		doc.Content, doc.Title = htmlmd.Convert(string(resp.body))
	case isJSON(resp.contentType):
		doc.Content = prettyJSON(resp.body)
	default:
		doc.Content = string(resp.body)
	}

	return doc, nil
}

// Search queries the configured provider's HTML endpoint and extracts
// up to max structured results from the page.
func (s *WebService) Search(ctx context.Context, query string, max int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if max <= 0 {
		max = defaultSearchLimit
	}

	searchURL := s.settings.SearchBaseURL + "?q=" + url.QueryEscape(query)
	resp, err := s.retrieve(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	results := serp.Extract(string(resp.body), max)
	logger.Debug("search %q: %d results", query, len(results))
	if logger.IsVerbose() {
		for i := range results {
			logger.Debug("result %d: %s", i+1, results[i].URL)
		}
	}
	return results, nil
}

// response is the outcome of one policy-checked retrieval.
type response struct {
	body        []byte
	statusCode  int
	finalURL    string
	contentType string
}

// retrieve performs the fetch under the retrieval policy. The redirect
// cap is a loop bound, the timeout is released on every exit path, and
// the size cap is checked twice: against the declared content length
// before reading, and against the actual body afterwards for servers
// that omit or understate the header.
func (s *WebService) retrieve(ctx context.Context, rawURL string) (*response, error) {
	current, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if current.Scheme != "http" && current.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidInput, current.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, s.settings.FetchTimeout)
	defer cancel()

	var resp *http.Response
	for hops := 0; ; hops++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err = s.transport.Do(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", current, err)
		}

		location := resp.Header.Get("Location")
		if resp.StatusCode < 300 || resp.StatusCode >= 400 || location == "" {
			break
		}
		resp.Body.Close()

		if hops == s.settings.MaxRedirects {
			return nil, fmt.Errorf("%w: exceeded %d hops fetching %s",
				domain.ErrTooManyRedirects, s.settings.MaxRedirects, rawURL)
		}

		next, err := current.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("resolving redirect %q: %w", location, err)
		}
		logger.Debug("redirect %d: %s -> %s", hops+1, current, next)
		current = next
	}
	defer resp.Body.Close()

	maxBytes := s.settings.MaxBodyBytes
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: declared length %d exceeds %d byte cap",
			domain.ErrResponseTooLarge, resp.ContentLength, maxBytes)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", current, err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d byte cap",
			domain.ErrResponseTooLarge, maxBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return &response{
		body:        body,
		statusCode:  resp.StatusCode,
		finalURL:    current.String(),
		contentType: resp.Header.Get("Content-Type"),
	}, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// prettyJSON reindents a JSON body, falling back to the raw text when
// the body does not reparse.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
