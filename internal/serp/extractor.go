// Package serp extracts structured results from a search engine's
// HTML results page.
//
// The marker classes below are an interface contract with that page's
// markup, not with HTML in general: if the provider reshuffles its
// templates, extraction degrades to empty results rather than erroring.
package serp

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
	"github.com/custodia-labs/quill-cli/internal/entity"
)

// Marker class substrings identifying result anchors on the page.
const (
	linkMarker    = "result__a"
	snippetMarker = "result__snippet"
)

var (
	anchorTag = regexp.MustCompile(`(?is)<a\s[^>]*>.*?</a>`)
	openTag   = regexp.MustCompile(`(?is)^<a\s[^>]*>`)
	classAttr = regexp.MustCompile(`(?is)class=["']([^"']*)["']`)
	hrefAttr  = regexp.MustCompile(`(?is)href=["']([^"']*)["']`)
	innerTags = regexp.MustCompile(`<[^>]+>`)
)

// Extract scans a results page for links and snippets and pairs them
// positionally: the i-th link with the i-th snippet. The pairing
// assumes both element classes appear in matching per-result order; a
// shorter snippet sequence leaves the trailing snippets empty. At most
// max results are returned.
func Extract(html string, max int) []domain.SearchResult {
	if max <= 0 {
		return nil
	}

	var (
		links    []domain.SearchResult
		snippets []string
	)

	for _, anchor := range anchorTag.FindAllString(html, -1) {
		tag := openTag.FindString(anchor)
		class := attrValue(classAttr, tag)

		switch {
		case strings.Contains(class, snippetMarker):
			snippets = append(snippets, innerText(anchor, tag))
		case strings.Contains(class, linkMarker):
			url := attrValue(hrefAttr, tag)
			title := innerText(anchor, tag)
			if url == "" || title == "" {
				continue
			}
			links = append(links, domain.SearchResult{Title: title, URL: url})
		}
	}

	if len(links) > max {
		links = links[:max]
	}
	for i := range links {
		if i < len(snippets) {
			links[i].Snippet = snippets[i]
		}
	}

	return links
}

// attrValue returns the first captured attribute value in tag.
func attrValue(pattern *regexp.Regexp, tag string) string {
	matches := pattern.FindStringSubmatch(tag)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

// innerText strips markup from the anchor body and decodes entities.
func innerText(anchor, openingTag string) string {
	body := strings.TrimPrefix(anchor, openingTag)
	body = strings.TrimSuffix(body, "</a>")
	body = innerTags.ReplaceAllString(body, "")
	return strings.TrimSpace(entity.Decode(body))
}
