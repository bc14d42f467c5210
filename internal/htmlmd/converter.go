// Package htmlmd rewrites raw HTML into Markdown text.
//
// No DOM is built. Conversion is a fixed, ordered pipeline of regex
// rewrite passes over the text; later passes assume the markup state
// left by earlier ones. Overlapping or unbalanced tags degrade the
// output rather than failing: Convert is total over arbitrary input.
package htmlmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/entity"
)

// nonContentTags are elements whose entire subtree is removed before
// any rewriting.
var nonContentTags = []string{
	"script", "style", "nav", "footer", "header", "aside", "iframe", "noscript",
}

// Pre-compiled regular expressions for the rewrite passes.
var (
	dropTagPatterns = compileDropTags(nonContentTags)

	titleTag    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)

	h1Tag   = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	h2Tag   = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
	h3Tag   = regexp.MustCompile(`(?is)<h3[^>]*>(.*?)</h3>`)
	h456Tag = regexp.MustCompile(`(?is)<h[4-6][^>]*>(.*?)</h[4-6]>`)

	anchorTag = regexp.MustCompile(`(?is)<a\s[^>]*?href=(?:"([^"]*)"|'([^']*)')[^>]*>(.*?)</a>`)

	liOpenTag  = regexp.MustCompile(`(?i)<li[^>]*>`)
	liCloseTag = regexp.MustCompile(`(?i)</li>`)

	paragraphEnd = regexp.MustCompile(`(?i)</(?:p|div)>`)
	brTag        = regexp.MustCompile(`(?i)<br\s*/?>`)

	boldTag   = regexp.MustCompile(`(?is)<(?:b|strong)[^>]*>(.*?)</(?:b|strong)>`)
	italicTag = regexp.MustCompile(`(?is)<(?:i|em)[^>]*>(.*?)</(?:i|em)>`)
	codeTag   = regexp.MustCompile("(?is)<code[^>]*>(.*?)</code>")
	preTag    = regexp.MustCompile(`(?is)<pre[^>]*>(.*?)</pre>`)

	allTags = regexp.MustCompile(`<[^>]+>`)

	multiNewlines = regexp.MustCompile(`\n{3,}`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
)

// compileDropTags builds one removal pattern per tag. RE2 has no
// backreferences, so an alternation would let mismatched pairs swallow
// content between different tags.
func compileDropTags(tags []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		patterns[i] = regexp.MustCompile(fmt.Sprintf(`(?is)<%s(?:\s[^>]*)?>.*?</%s\s*>`, tag, tag))
	}
	return patterns
}

// Convert rewrites HTML into Markdown and extracts the document title.
// It never fails; pathological input yields degraded text, not an error.
func Convert(html string) (content, title string) {
	title = extractTitle(html)

	// Drop non-content subtrees and comments.
	for _, pattern := range dropTagPatterns {
		html = pattern.ReplaceAllString(html, "")
	}
	html = htmlComment.ReplaceAllString(html, "")

	// Headings. h4-h6 all map to the fourth level.
	html = h1Tag.ReplaceAllString(html, "\n\n# $1\n\n")
	html = h2Tag.ReplaceAllString(html, "\n\n## $1\n\n")
	html = h3Tag.ReplaceAllString(html, "\n\n### $1\n\n")
	html = h456Tag.ReplaceAllString(html, "\n\n#### $1\n\n")

	// Links. Remaining markup inside the anchor text is cleaned by the
	// later passes.
	html = anchorTag.ReplaceAllString(html, "[$3]($1$2)")

	// Lists, paragraphs, line breaks.
	html = liOpenTag.ReplaceAllString(html, "\n- ")
	html = liCloseTag.ReplaceAllString(html, "")
	html = paragraphEnd.ReplaceAllString(html, "\n\n")
	html = brTag.ReplaceAllString(html, "\n")

	// Inline emphasis and code.
	html = boldTag.ReplaceAllString(html, "**$1**")
	html = italicTag.ReplaceAllString(html, "_${1}_")
	html = codeTag.ReplaceAllString(html, "`$1`")
	html = preTag.ReplaceAllString(html, "\n```\n$1\n```\n")

	// Strip whatever tags remain, then decode entities.
	html = allTags.ReplaceAllString(html, "")
	html = entity.Decode(html)

	return normaliseWhitespace(html), title
}

// extractTitle returns the decoded text of the first <title> element.
func extractTitle(html string) string {
	matches := titleTag.FindStringSubmatch(html)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimSpace(entity.Decode(matches[1]))
}

// normaliseWhitespace collapses runs of blank lines to one, runs of
// horizontal whitespace to a single space, and trims every line.
func normaliseWhitespace(text string) string {
	text = multiNewlines.ReplaceAllString(text, "\n\n")
	text = multiSpaces.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	// Trimming lines can surface new blank-line runs.
	text = multiNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
