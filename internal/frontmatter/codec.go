// Package frontmatter reads and writes the ----delimited metadata
// block at the top of a post.
//
// The block grammar is a strict subset of the common front-matter
// convention: flat `key: value` scalars, booleans, and dash-item string
// lists with two- or four-space indentation. Nested mappings,
// multi-line scalars, and flow-style arrays are not representable, and
// a literal "---" inside a value is not escaped. Malformed lines are
// ignored rather than reported; a document without a block decodes to
// empty metadata with the whole input as body.
package frontmatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/quill-cli/internal/core/domain"
)

// Marker is the metadata block delimiter line.
const Marker = "---"

// Decode splits document text into its metadata block and body.
// It never fails: without a leading block the result carries empty
// metadata and the entire input as body.
func Decode(text string) domain.ParsedDocument {
	doc := domain.ParsedDocument{
		Metadata: domain.NewPostMetadata(),
		Body:     text,
		Raw:      text,
	}

	block, body, ok := splitBlock(text)
	if !ok {
		return doc
	}

	doc.Body = body
	doc.Metadata = buildMetadata(parseBlock(block))
	return doc
}

// Encode renders metadata as a canonical block: title, date, tags,
// categories, then the remaining fields in first-set order.
func Encode(meta domain.PostMetadata) string {
	var b strings.Builder
	b.WriteString(Marker + "\n")

	if meta.Title != "" {
		b.WriteString("title: " + meta.Title + "\n")
	}
	if meta.Date != "" {
		b.WriteString("date: " + meta.Date + "\n")
	}
	writeList(&b, "tags", meta.Tags)
	writeList(&b, "categories", meta.Categories)

	for _, field := range meta.Extra {
		switch field.Key {
		case "title", "date", "tags", "categories":
			continue
		}
		writeField(&b, field)
	}

	b.WriteString(Marker + "\n")
	return b.String()
}

// splitBlock detects a leading metadata block and returns its inner
// lines and the remaining body.
func splitBlock(text string) (block []string, body string, ok bool) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != Marker {
		return nil, "", false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == Marker {
			return lines[1:i], strings.Join(lines[i+1:], "\n"), true
		}
	}

	// Opening marker without a closing one: not a block.
	return nil, "", false
}

// parseBlock runs the line scan over the block body and returns the
// fields in order of first appearance.
func parseBlock(lines []string) []domain.Field {
	var (
		fields       []domain.Field
		currentKey   string
		currentArray []string
		collecting   bool
	)

	commit := func() {
		if collecting {
			fields = setField(fields, currentKey, currentArray)
			collecting = false
		}
	}

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")

		if item, isItem := listItem(line); isItem {
			if collecting {
				currentArray = append(currentArray, stripQuotes(item))
			}
			// List items outside a collecting run are ignored.
			continue
		}

		commit()

		key, value, isKV := keyValue(line)
		if !isKV {
			continue
		}

		currentKey = key
		switch {
		case value == "" || value == "[]":
			currentArray = []string{}
			collecting = true
		case value == "true" || value == "false":
			fields = setField(fields, key, value == "true")
		default:
			fields = setField(fields, key, stripQuotes(value))
		}
	}

	commit()
	return fields
}

// listItem reports whether the line is a dash list item with two- or
// four-space indentation, returning the item text.
func listItem(line string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(line, "    - "):
		rest = line[len("    - "):]
	case strings.HasPrefix(line, "  - "):
		rest = line[len("  - "):]
	case line == "    -" || line == "  -":
		rest = ""
	default:
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// keyValue matches a `key: value` line. Keys are word characters and
// hyphens only.
func keyValue(line string) (key, value string, ok bool) {
	colon := strings.Index(line, ":")
	if colon <= 0 {
		return "", "", false
	}

	key = line[:colon]
	for _, r := range key {
		wordChar := r == '_' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !wordChar {
			return "", "", false
		}
	}

	return key, strings.TrimSpace(line[colon+1:]), true
}

// stripQuotes removes one matching pair of surrounding quote
// characters.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// setField appends or replaces a field, keeping first-seen order.
func setField(fields []domain.Field, key string, value domain.FieldValue) []domain.Field {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, domain.Field{Key: key, Value: value})
}

// buildMetadata coerces the parsed fields into PostMetadata. Title and
// date become strings, tags and categories become string lists, and
// everything else is copied through in order.
func buildMetadata(fields []domain.Field) domain.PostMetadata {
	meta := domain.NewPostMetadata()

	for _, field := range fields {
		switch field.Key {
		case "title":
			meta.Title = toString(field.Value)
		case "date":
			meta.Date = toString(field.Value)
		case "tags":
			meta.Tags = toStringList(field.Value)
		case "categories":
			meta.Categories = toStringList(field.Value)
		default:
			meta.Set(field.Key, field.Value)
		}
	}

	return meta
}

func toString(v domain.FieldValue) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	default:
		return ""
	}
}

func toStringList(v domain.FieldValue) []string {
	if list, ok := v.([]string); ok {
		return list
	}
	return []string{}
}

// writeList renders a list field as a key line followed by one item
// line per element. Empty lists are omitted entirely.
func writeList(b *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(key + ":\n")
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
}

// writeField renders an extra field according to its value kind.
// Unlike tags and categories, an empty extra list still gets its key
// line so the field survives a round trip.
func writeField(b *strings.Builder, field domain.Field) {
	switch val := field.Value.(type) {
	case []string:
		b.WriteString(field.Key + ":\n")
		for _, item := range val {
			b.WriteString("  - " + item + "\n")
		}
	case bool:
		b.WriteString(field.Key + ": " + strconv.FormatBool(val) + "\n")
	case string:
		if val == "" {
			// A bare "key:" line reads back as a list; quote the
			// empty string so it survives a round trip.
			b.WriteString(field.Key + ": \"\"\n")
			return
		}
		b.WriteString(field.Key + ": " + val + "\n")
	case nil:
		// Absent values are omitted.
	default:
		b.WriteString(field.Key + ": " + fmt.Sprint(val) + "\n")
	}
}
