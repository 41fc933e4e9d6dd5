package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
)

// HandleGuideStep returns one guided step with its checklist state and
// neighbouring step indexes
func (h *Handler) HandleGuideStep(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "step must be an integer", "INVALID_STEP")
		return
	}

	step, err := guide.At(i)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error(), "UNKNOWN_STEP")
		return
	}

	resp := GuideResponse{
		Step:      step,
		Total:     guide.Len(),
		Checklist: nav.Checklist(guide.Items(h.doc, step), h.tracker.Snapshot()),
	}
	if i > 0 {
		prev := i - 1
		resp.Prev = &prev
	}
	if i < guide.Len()-1 {
		next := i + 1
		resp.Next = &next
	}

	writeJSON(w, http.StatusOK, resp)
}
