package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

// Options tunes the handler
type Options struct {
	DefaultSection string
	SnippetLength  int
	SearchRPS      float64 // sustained searches per second; <= 0 disables limiting
	SearchBurst    int
}

// Handler contains HTTP handlers for the API
type Handler struct {
	doc     *content.Document
	engine  *search.Engine
	nav     *nav.Navigator
	tracker *progress.Tracker
	limiter *rate.Limiter
	etag    string
	logger  zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(doc *content.Document, tracker *progress.Tracker, opts Options, logger zerolog.Logger) *Handler {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.SearchRPS > 0 {
		burst := opts.SearchBurst
		if burst <= 0 {
			burst = int(opts.SearchRPS) + 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.SearchRPS), burst)
	}

	return &Handler{
		doc:     doc,
		engine:  search.NewEngine(doc, search.WithSnippetLength(opts.SnippetLength)),
		nav:     nav.NewNavigator(doc, opts.DefaultSection),
		tracker: tracker,
		limiter: limiter,
		etag:    fmt.Sprintf(`"%016x"`, doc.Fingerprint()),
		logger:  logger,
	}
}

// Helper functions used across all handlers

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
