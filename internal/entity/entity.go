// Package entity decodes the fixed set of HTML character references
// that appear in the markup Quill consumes. It is deliberately not a
// full entity table: unknown named references pass through unchanged,
// and a handful of typographic characters are folded to ASCII so tool
// output stays prompt-safe.
package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// named maps the supported named references to their replacement text.
var named = map[string]string{
	"&amp;":    "&",
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   `"`,
	"&nbsp;":   " ",
	"&mdash;":  "--",
	"&ndash;":  "-",
	"&hellip;": "...",
	"&copy;":   "(c)",
	"&reg;":    "(R)",
}

// asciiFold maps typographic runes to the same ASCII replacements used
// by the named table, so &#169; and &copy; decode identically.
var asciiFold = map[rune]string{
	' ': " ",
	'©': "(c)",
	'®': "(R)",
	'–': "-",
	'—': "--",
	'…': "...",
}

var entityRef = regexp.MustCompile(`&(#[0-9]+|[a-zA-Z]+);`)

// Decode replaces the supported named references and decimal numeric
// references (&#NNN;) in text with their literal characters.
// Unrecognised named references are left unchanged.
// A single left-to-right pass: replacement text is never rescanned,
// so &#38;lt; decodes to &lt; rather than <.
func Decode(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}

	return entityRef.ReplaceAllStringFunc(text, func(ref string) string {
		if strings.HasPrefix(ref, "&#") {
			code, err := strconv.Atoi(ref[2 : len(ref)-1])
			if err != nil || code <= 0 || code > 0x10FFFF {
				return ref
			}
			r := rune(code)
			if folded, ok := asciiFold[r]; ok {
				return folded
			}
			return string(r)
		}
		if replacement, ok := named[ref]; ok {
			return replacement
		}
		return ref
	})
}
