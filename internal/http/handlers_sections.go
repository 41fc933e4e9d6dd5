package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/render"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// HandleDocument returns the whole document. Clients revalidate with
// If-None-Match against the content fingerprint.
func (h *Handler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.etag)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, h.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeJSON(w, http.StatusOK, DocumentResponse{
		Fingerprint: strings.Trim(h.etag, `"`),
		Sections:    h.doc.Sections(),
	})
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// HandleSections returns the sidebar tree, or id completions when a
// prefix query parameter is present
func (h *Handler) HandleSections(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("prefix") {
		prefix := r.URL.Query().Get("prefix")
		ids := h.doc.Complete(prefix)
		if ids == nil {
			ids = []string{}
		}
		writeJSON(w, http.StatusOK, CompletionResponse{Prefix: prefix, IDs: ids})
		return
	}

	p := h.tracker.Snapshot()
	writeJSON(w, http.StatusOK, SectionsResponse{
		Groups:  nav.Tree(h.doc, p),
		Summary: progress.Stats(h.doc, p),
	})
}

// HandleSection navigates to a section, subsection or example id. Unknown
// ids answer with the fallback section and a notice rather than an error.
func (h *Handler) HandleSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view := h.nav.Navigate(id)
	if view.FellBack {
		obs.Fallbacks.Inc()
		h.logger.Info().Str("id", id).Str("fallback", view.ID).Msg("section not found")
	}

	p := h.tracker.Snapshot()
	resp := SectionResponse{
		View:      view,
		Checklist: nav.Checklist(view.Checklist, p),
	}
	for _, sub := range view.Subsections {
		if len(sub.Checklist) == 0 {
			continue
		}
		if resp.Subsections == nil {
			resp.Subsections = make(map[string][]nav.ChecklistEntry)
		}
		resp.Subsections[sub.ID] = nav.Checklist(sub.Checklist, p)
	}

	outline, err := render.Outline(view.Content)
	if err != nil {
		h.logger.Warn().Err(err).Str("id", view.ID).Msg("failed to build outline")
	}
	resp.Outline = outline

	writeJSON(w, http.StatusOK, resp)
}
