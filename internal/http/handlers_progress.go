package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// HandleProgress returns the stored progress and its summary
func (h *Handler) HandleProgress(w http.ResponseWriter, _ *http.Request) {
	p := h.tracker.Snapshot()
	writeJSON(w, http.StatusOK, ProgressResponse{
		Summary: progress.Stats(h.doc, p),
		Items:   p,
	})
}

// HandleToggle flips one checklist item and persists the result
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("invalid toggle request")
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required", "MISSING_KEY")
		return
	}
	if _, ok := h.doc.Item(req.Key); !ok {
		writeError(w, http.StatusNotFound, "unknown checklist item", "UNKNOWN_ITEM")
		return
	}

	done, err := h.tracker.Toggle(r.Context(), req.Key)
	if err != nil {
		h.logger.Error().Err(err).Str("key", req.Key).Msg("failed to save progress")
		writeError(w, http.StatusInternalServerError, "failed to save progress", "STORE_ERROR")
		return
	}

	obs.Toggles.WithLabelValues(strconv.FormatBool(done)).Inc()
	h.logger.Info().Str("key", req.Key).Bool("done", done).Msg("checklist item toggled")

	writeJSON(w, http.StatusOK, ToggleResponse{
		Key:     req.Key,
		Done:    done,
		Summary: progress.Stats(h.doc, h.tracker.Snapshot()),
	})
}

// HandleReset clears all progress. The request must carry confirm=true.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirm {
		writeError(w, http.StatusBadRequest, "reset requires confirm=true", "CONFIRMATION_REQUIRED")
		return
	}

	if err := h.tracker.Reset(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to reset progress")
		writeError(w, http.StatusInternalServerError, "failed to save progress", "STORE_ERROR")
		return
	}

	obs.Resets.Inc()
	h.logger.Info().Msg("progress reset")

	p := h.tracker.Snapshot()
	writeJSON(w, http.StatusOK, ProgressResponse{
		Summary: progress.Stats(h.doc, p),
		Items:   p,
	})
}
