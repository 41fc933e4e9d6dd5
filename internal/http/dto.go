// Package httpapi provides HTTP handlers and data transfer objects for the documentation API.
package httpapi

import (
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status          string `json:"status"`
	SectionCount    int    `json:"section_count"`
	ProgressPercent int    `json:"progress_percent"`
}

// DocumentResponse is the full document in declaration order
type DocumentResponse struct {
	Fingerprint string             `json:"fingerprint"`
	Sections    []*content.Section `json:"sections"`
}

// SectionsResponse is the sidebar tree
type SectionsResponse struct {
	Groups  []nav.Group      `json:"groups"`
	Summary progress.Summary `json:"summary"`
}

// CompletionResponse lists ids starting with a prefix
type CompletionResponse struct {
	Prefix string   `json:"prefix"`
	IDs    []string `json:"ids"`
}

// SectionResponse is a navigation view with checklist state
type SectionResponse struct {
	View        nav.View                        `json:"view"`
	Checklist   []nav.ChecklistEntry            `json:"checklist"`
	Subsections map[string][]nav.ChecklistEntry `json:"subsection_checklists,omitempty"`
	Outline     []string                        `json:"outline,omitempty"`
}

// SearchRequest represents search request
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"` // Default: 10
}

// SearchResult is a search hit with highlighted markup
type SearchResult struct {
	ID                 string       `json:"id"`
	Type               content.Kind `json:"type"`
	Title              string       `json:"title"`
	ParentTitle        string       `json:"parent_title,omitempty"`
	Snippet            string       `json:"snippet"`
	HighlightedTitle   string       `json:"highlighted_title"`
	HighlightedSnippet string       `json:"highlighted_snippet"`
	MatchCount         int          `json:"match_count"`
}

// SearchResponse represents search results. Searching is false when the
// query was empty and the client should leave search mode.
type SearchResponse struct {
	Searching bool           `json:"searching"`
	Query     string         `json:"query"`
	Results   []SearchResult `json:"results"`
	Count     int            `json:"count"`
	Total     int            `json:"total"`
}

// ProgressResponse is the stored progress and its summary
type ProgressResponse struct {
	Summary progress.Summary `json:"summary"`
	Items   map[string]bool  `json:"items"`
}

// ToggleRequest names the checklist item to flip
type ToggleRequest struct {
	Key string `json:"key"`
}

// ToggleResponse reports the item's new state
type ToggleResponse struct {
	Key     string           `json:"key"`
	Done    bool             `json:"done"`
	Summary progress.Summary `json:"summary"`
}

// GuideResponse is one guided step with its checklist state
type GuideResponse struct {
	Step      guide.Step           `json:"step"`
	Total     int                  `json:"total"`
	Checklist []nav.ChecklistEntry `json:"checklist"`
	Prev      *int                 `json:"prev"`
	Next      *int                 `json:"next"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
