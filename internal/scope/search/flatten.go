package search

import (
	"strings"

	"golang.org/x/net/html"
)

// rawTextElements hold text that the tokenizer does not parse for tags.
// Their contents are dropped so that flattening stays idempotent.
var rawTextElements = map[string]bool{
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
}

// Flatten strips markup from rich text and normalizes whitespace.
// Tags, comments and doctypes are removed (each replaced by a space),
// runs of whitespace collapse to one space, and the result is trimmed.
// Entities are left as written.
func Flatten(rich string) string {
	if !strings.ContainsAny(rich, "<") {
		return collapse(rich)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(rich))
	skip := ""

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapse(b.String())
		case html.TextToken:
			if skip == "" {
				b.Write(z.Raw())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if rawTextElements[string(name)] {
				skip = string(name)
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if skip == string(name) {
				skip = ""
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(' ')
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
