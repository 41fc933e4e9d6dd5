// Package search provides full-text search over the documentation: text
// flattening, query tokenizing, matching and ranking, snippets and highlighting.
package search

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dsjohal14/aidocs/internal/scope/content"
)

// ErrEmptyQuery is returned for blank or whitespace-only queries
var ErrEmptyQuery = errors.New("empty query")

// minTermLength is the shortest term that takes part in matching
const minTermLength = 2

// Result is a single matched content unit
type Result struct {
	ID          string       `json:"id"`
	Kind        content.Kind `json:"type"`
	Title       string       `json:"title"`
	ParentTitle string       `json:"parent_title,omitempty"`
	Snippet     string       `json:"snippet"`
	MatchCount  int          `json:"match_count"`
}

// Tokenize lower-cases query and splits it on whitespace, discarding
// single-character terms
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}

// CountMatches counts non-overlapping case-insensitive occurrences of term in text
func CountMatches(text, term string) int {
	if term == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(term))
}

type indexedUnit struct {
	unit       content.Unit
	lowerTitle string
	flat       string
	lowerFlat  string
}

// Engine searches a document. Unit bodies are flattened once at construction.
type Engine struct {
	units         []indexedUnit
	snippetLength int
}

// Option configures an Engine
type Option func(*Engine)

// WithSnippetLength overrides DefaultSnippetLength
func WithSnippetLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.snippetLength = n
		}
	}
}

// NewEngine indexes every unit of doc
func NewEngine(doc *content.Document, opts ...Option) *Engine {
	e := &Engine{snippetLength: DefaultSnippetLength}
	for _, opt := range opts {
		opt(e)
	}

	for _, u := range doc.Units() {
		flat := Flatten(u.Body())
		e.units = append(e.units, indexedUnit{
			unit:       u,
			lowerTitle: strings.ToLower(u.Title()),
			flat:       flat,
			lowerFlat:  strings.ToLower(flat),
		})
	}
	return e
}

// Search returns every unit whose title or flattened body contains at
// least one query term, ordered by match count descending. Units with
// equal counts keep document discovery order. A blank query returns
// ErrEmptyQuery; a query made only of single characters matches nothing.
func (e *Engine) Search(query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	terms := Tokenize(query)
	results := make([]Result, 0)
	if len(terms) == 0 {
		return results, nil
	}

	for _, iu := range e.units {
		if !iu.matches(terms) {
			continue
		}

		best, count := bestTerm(iu.lowerFlat, terms)
		results = append(results, Result{
			ID:          iu.unit.ID(),
			Kind:        iu.unit.Kind(),
			Title:       iu.unit.Title(),
			ParentTitle: iu.unit.ParentTitle(),
			Snippet:     FindSnippet(iu.flat, best, e.snippetLength),
			MatchCount:  count,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchCount > results[j].MatchCount
	})
	return results, nil
}

func (iu indexedUnit) matches(terms []string) bool {
	for _, t := range terms {
		if strings.Contains(iu.lowerTitle, t) || strings.Contains(iu.lowerFlat, t) {
			return true
		}
	}
	return false
}

// bestTerm picks the term with the most body occurrences; ties go to the
// earliest term
func bestTerm(lowerBody string, terms []string) (string, int) {
	best, top := terms[0], 0
	for _, t := range terms {
		if n := strings.Count(lowerBody, t); n > top {
			best, top = t, n
		}
	}
	return best, top
}
