package search

import (
	"strings"
	"unicode"
)

// DefaultSnippetLength is the target snippet size in characters
const DefaultSnippetLength = 150

const ellipsis = "..."

// FindSnippet returns a readable excerpt of text around the first
// case-insensitive occurrence of term. The window is centered on the match
// and widened until both edges land on a space or a period, so the result
// is approximately snippetLength characters long. When term does not occur,
// the first snippetLength characters are returned, with an ellipsis only if
// text was cut.
func FindSnippet(text, term string, snippetLength int) string {
	if snippetLength <= 0 {
		snippetLength = DefaultSnippetLength
	}

	runes := []rune(text)
	idx := indexFold(runes, []rune(term))
	if idx < 0 {
		if len(runes) <= snippetLength {
			return text
		}
		return string(runes[:snippetLength]) + ellipsis
	}

	half := snippetLength / 2
	start := max(0, idx-half)
	end := min(len(runes), idx+len([]rune(term))+half)

	for start > 0 && !isBoundary(runes[start]) {
		start--
	}
	for end < len(runes) && !isBoundary(runes[end]) {
		end++
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(strings.TrimSpace(string(runes[start:end])))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

func isBoundary(r rune) bool {
	return r == ' ' || r == '.'
}

// indexFold returns the rune index of the first case-insensitive
// occurrence of needle in haystack, or -1.
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	lowerNeedle := lowerRunes(needle)
	lowerHay := lowerRunes(haystack)
	for i := 0; i+len(lowerNeedle) <= len(lowerHay); i++ {
		if equalRunes(lowerHay[i:i+len(lowerNeedle)], lowerNeedle) {
			return i
		}
	}
	return -1
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
