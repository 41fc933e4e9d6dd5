package httpapi

import (
	"net/http"

	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// HandleHealth returns API health status, section count and overall progress
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	summary := progress.Stats(h.doc, h.tracker.Snapshot())
	resp := HealthResponse{
		Status:          "healthy",
		SectionCount:    h.doc.Len(),
		ProgressPercent: summary.Percent,
	}

	h.logger.Debug().Int("section_count", resp.SectionCount).Msg("health check")

	writeJSON(w, http.StatusOK, resp)
}
