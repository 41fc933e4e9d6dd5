package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Highlighter wraps matched terms between Open and Close markers
type Highlighter struct {
	Open  string
	Close string
}

// MarkHighlighter produces HTML <mark> elements
var MarkHighlighter = Highlighter{Open: "<mark>", Close: "</mark>"}

// Highlight wraps every case-insensitive occurrence of each term with
// <mark> markers. See Highlighter.Highlight.
func Highlight(text string, terms []string) string {
	return MarkHighlighter.Highlight(text, terms)
}

// Highlight matches each term independently against text, so overlapping
// terms may produce nested or adjacent markers. Matches are always found in
// the original text, never inside markers. Terms shorter than two
// characters are skipped. Terms are matched literally.
func (h Highlighter) Highlight(text string, terms []string) string {
	// match boundaries in text, counted per byte offset
	opens := make(map[int]int)
	closes := make(map[int]int)

	for _, term := range terms {
		if utf8.RuneCountInString(term) < minTermLength {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
		for _, loc := range re.FindAllStringIndex(text, -1) {
			opens[loc[0]]++
			closes[loc[1]]++
		}
	}
	if len(opens) == 0 {
		return text
	}

	bounds := make([]int, 0, len(opens)+len(closes))
	for pos := range opens {
		bounds = append(bounds, pos)
	}
	for pos := range closes {
		if _, ok := opens[pos]; !ok {
			bounds = append(bounds, pos)
		}
	}
	sort.Ints(bounds)

	var b strings.Builder
	last := 0
	for _, pos := range bounds {
		b.WriteString(text[last:pos])
		b.WriteString(strings.Repeat(h.Close, closes[pos]))
		b.WriteString(strings.Repeat(h.Open, opens[pos]))
		last = pos
	}
	b.WriteString(text[last:])
	return b.String()
}
