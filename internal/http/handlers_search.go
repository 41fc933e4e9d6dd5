package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

// HandleSearch runs a substring search over every section, subsection and example
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many searches", "RATE_LIMITED")
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid search request")
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	// Set default and max limits
	if req.Limit <= 0 {
		req.Limit = 10 // Default limit
	}
	if req.Limit > 100 {
		req.Limit = 100 // Max limit for performance
	}

	found, err := h.engine.Search(req.Query)
	if errors.Is(err, search.ErrEmptyQuery) {
		writeJSON(w, http.StatusOK, SearchResponse{
			Searching: false,
			Query:     req.Query,
			Results:   []SearchResult{},
		})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("query", req.Query).Msg("search failed")
		writeError(w, http.StatusInternalServerError, "search failed", "SEARCH_ERROR")
		return
	}

	total := len(found)
	if len(found) > req.Limit {
		found = found[:req.Limit]
	}

	terms := search.Tokenize(req.Query)
	results := make([]SearchResult, len(found))
	for i, f := range found {
		results[i] = SearchResult{
			ID:                 f.ID,
			Type:               f.Kind,
			Title:              f.Title,
			ParentTitle:        f.ParentTitle,
			Snippet:            f.Snippet,
			HighlightedTitle:   search.Highlight(f.Title, terms),
			HighlightedSnippet: search.Highlight(f.Snippet, terms),
			MatchCount:         f.MatchCount,
		}
	}

	obs.Searches.Inc()
	obs.SearchResults.Observe(float64(total))

	h.logger.Info().
		Str("query", req.Query).
		Int("results", len(results)).
		Int("total", total).
		Int("limit", req.Limit).
		Msg("search completed")

	writeJSON(w, http.StatusOK, SearchResponse{
		Searching: true,
		Query:     req.Query,
		Results:   results,
		Count:     len(results),
		Total:     total,
	})
}
