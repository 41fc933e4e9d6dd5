package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

const modelNameKey = "model-specification-model-name"

func setupTestHandler(t *testing.T, store progress.Store, opts Options) (*Handler, *chi.Mux) {
	t.Helper()

	doc, err := content.Load()
	if err != nil {
		t.Fatalf("failed to load content: %v", err)
	}

	obs.InitLogger("error") // Quiet logs during tests
	logger := obs.Logger("test")

	tracker, err := progress.NewTracker(context.Background(), store, logger)
	if err != nil {
		t.Fatalf("failed to create tracker: %v", err)
	}
	t.Cleanup(func() { _ = tracker.Close() })

	handler := NewHandler(doc, tracker, opts, logger)
	return handler, NewRouter(handler)
}

func do(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestHandleHealth(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	w := do(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp HealthResponse
	decode(t, w, &resp)

	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %v", resp.Status)
	}
	if resp.SectionCount == 0 {
		t.Error("expected a non-zero section count")
	}
}

func TestHandleDocumentETag(t *testing.T) {
	h, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	w := do(t, router, http.MethodGet, "/api/document", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if etag != h.etag || etag == "" {
		t.Errorf("expected ETag %s, got %s", h.etag, etag)
	}

	var resp DocumentResponse
	decode(t, w, &resp)
	if len(resp.Sections) != h.doc.Len() {
		t.Errorf("expected %d sections, got %d", h.doc.Len(), len(resp.Sections))
	}
	if resp.Sections[0].ID != "introduction" {
		t.Errorf("expected declaration order to start with introduction, got %s", resp.Sections[0].ID)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"exact match", etag, http.StatusNotModified},
		{"weak match in list", `"other", W/` + etag, http.StatusNotModified},
		{"wildcard", "*", http.StatusNotModified},
		{"stale", `"0000"`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/document", nil)
			req.Header.Set("If-None-Match", tt.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestHandleSections(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	w := do(t, router, http.MethodGet, "/api/sections", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp SectionsResponse
	decode(t, w, &resp)

	if len(resp.Groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(resp.Groups))
	}
	if resp.Groups[0].Title != "Introduction" {
		t.Errorf("expected Introduction group first, got %s", resp.Groups[0].Title)
	}
	if resp.Summary.Total == 0 || resp.Summary.Completed != 0 {
		t.Errorf("unexpected summary %+v", resp.Summary)
	}
}

func TestHandleSectionsPrefix(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"core-principles", []string{"core-principles", "core-principles-audiences", "core-principles-values"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/sections?prefix="+tt.prefix, nil)

			var resp CompletionResponse
			decode(t, w, &resp)
			if strings.Join(resp.IDs, ",") != strings.Join(tt.want, ",") {
				t.Errorf("expected %v, got %v", tt.want, resp.IDs)
			}
			if resp.IDs == nil {
				t.Error("expected empty array, got null")
			}
		})
	}
}

func TestHandleSection(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	tests := []struct {
		name     string
		id       string
		wantID   string
		wantKind content.Kind
		fellBack bool
	}{
		{"section", "model-specification", "model-specification", content.KindSection, false},
		{"subsection", "core-principles-values", "core-principles-values", content.KindSubsection, false},
		{"example", "privacy-protection-example-0", "privacy-protection-example-0", content.KindExample, false},
		{"unknown subsection", "core-principles-nonexistent", "introduction", content.KindSection, true},
		{"unknown example", "privacy-protection-example-42", "introduction", content.KindSection, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/sections/"+tt.id, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp SectionResponse
			decode(t, w, &resp)

			if resp.View.ID != tt.wantID {
				t.Errorf("expected id %s, got %s", tt.wantID, resp.View.ID)
			}
			if resp.View.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, resp.View.Kind)
			}
			if resp.View.FellBack != tt.fellBack {
				t.Errorf("expected fell_back=%v, got %v", tt.fellBack, resp.View.FellBack)
			}
			if tt.fellBack && !strings.Contains(resp.View.Notice, tt.id) {
				t.Errorf("expected notice to mention %s, got %q", tt.id, resp.View.Notice)
			}
		})
	}
}

func TestHandleSectionOutlineAndChecklist(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: "core-principles-transparency"})

	w := do(t, router, http.MethodGet, "/api/sections/core-principles", nil)
	var resp SectionResponse
	decode(t, w, &resp)

	if len(resp.Outline) == 0 || resp.Outline[0] != "Purpose and Philosophy" {
		t.Errorf("unexpected outline %v", resp.Outline)
	}

	found := false
	for _, e := range resp.Checklist {
		if e.Key == "core-principles-transparency" {
			found = true
			if !e.Done {
				t.Error("expected toggled item to be done")
			}
		}
	}
	if !found {
		t.Error("toggled item missing from checklist")
	}
}

func TestHandleSearch(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	w := do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: "temperature", Limit: 10})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	decode(t, w, &resp)

	if !resp.Searching {
		t.Error("expected searching=true")
	}
	if resp.Count == 0 || len(resp.Results) != resp.Count {
		t.Fatalf("expected results, got count=%d len=%d", resp.Count, len(resp.Results))
	}

	for i, r := range resp.Results {
		if i > 0 && resp.Results[i-1].MatchCount < r.MatchCount {
			t.Errorf("results not sorted at %d", i)
		}
		if r.MatchCount > 0 && !strings.Contains(strings.ToLower(r.HighlightedSnippet), "<mark>temperature</mark>") {
			t.Errorf("result %s: expected highlighted snippet, got %q", r.ID, r.HighlightedSnippet)
		}
	}
}

func TestHandleSearchLimit(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	w := do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: "model", Limit: 2})

	var resp SearchResponse
	decode(t, w, &resp)

	if resp.Count != 2 {
		t.Errorf("expected 2 results, got %d", resp.Count)
	}
	if resp.Total <= resp.Count {
		t.Errorf("expected total > count, got total=%d count=%d", resp.Total, resp.Count)
	}
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	for _, q := range []string{"", "   "} {
		w := do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: q})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var resp SearchResponse
		decode(t, w, &resp)
		if resp.Searching {
			t.Errorf("query %q: expected searching=false", q)
		}
		if resp.Results == nil || len(resp.Results) != 0 {
			t.Errorf("query %q: expected empty results array", q)
		}
	}
}

func TestHandleSearchInvalidJSON(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("{"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleSearchRateLimited(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{SearchRPS: 0.001, SearchBurst: 1})

	first := do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: "model"})
	if first.Code != http.StatusOK {
		t.Fatalf("expected first search to pass, got %d", first.Code)
	}

	second := do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: "model"})
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", second.Code)
	}

	var resp ErrorResponse
	decode(t, second, &resp)
	if resp.Code != "RATE_LIMITED" {
		t.Errorf("expected code RATE_LIMITED, got %s", resp.Code)
	}
}

func TestHandleToggle(t *testing.T) {
	store := progress.NewMemoryStore()
	_, router := setupTestHandler(t, store, Options{})

	w := do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: modelNameKey})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ToggleResponse
	decode(t, w, &resp)
	if !resp.Done || resp.Summary.Completed != 1 {
		t.Errorf("unexpected toggle response %+v", resp)
	}

	stored, _ := store.Load(context.Background())
	if !stored.Done(modelNameKey) {
		t.Error("expected toggle to be persisted")
	}

	// toggling twice restores the original value
	w = do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: modelNameKey})
	decode(t, w, &resp)
	if resp.Done {
		t.Error("expected second toggle to clear the item")
	}
}

func TestHandleToggleErrors(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	tests := []struct {
		name   string
		body   interface{}
		status int
		code   string
	}{
		{"missing key", ToggleRequest{}, http.StatusBadRequest, "MISSING_KEY"},
		{"unknown key", ToggleRequest{Key: "nope-item"}, http.StatusNotFound, "UNKNOWN_ITEM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/progress/toggle", tt.body)
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			var resp ErrorResponse
			decode(t, w, &resp)
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
		})
	}
}

type brokenStore struct {
	*progress.MemoryStore
}

func (brokenStore) Save(context.Context, progress.Progress) error {
	return errors.New("read-only")
}

func TestHandleToggleStoreError(t *testing.T) {
	_, router := setupTestHandler(t, brokenStore{progress.NewMemoryStore()}, Options{})

	w := do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: modelNameKey})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	w = do(t, router, http.MethodGet, "/api/progress", nil)
	var resp ProgressResponse
	decode(t, w, &resp)
	if resp.Items[modelNameKey] {
		t.Error("failed save must not change progress")
	}
}

func TestHandleReset(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: modelNameKey})

	w := do(t, router, http.MethodDelete, "/api/progress", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without confirmation, got %d", w.Code)
	}
	var errResp ErrorResponse
	decode(t, w, &errResp)
	if errResp.Code != "CONFIRMATION_REQUIRED" {
		t.Errorf("expected code CONFIRMATION_REQUIRED, got %s", errResp.Code)
	}

	w = do(t, router, http.MethodGet, "/api/progress", nil)
	var before ProgressResponse
	decode(t, w, &before)
	if before.Summary.Completed != 1 {
		t.Fatalf("unconfirmed reset must not clear progress, got %+v", before.Summary)
	}

	w = do(t, router, http.MethodDelete, "/api/progress?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var after ProgressResponse
	decode(t, w, &after)
	if len(after.Items) != 0 || after.Summary.Completed != 0 {
		t.Errorf("expected empty progress after reset, got %+v", after)
	}
}

func TestHandleGuideStep(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	do(t, router, http.MethodPost, "/api/progress/toggle", ToggleRequest{Key: modelNameKey})

	w := do(t, router, http.MethodGet, "/api/guide/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp GuideResponse
	decode(t, w, &resp)

	if resp.Step.SectionID != "model-specification" {
		t.Errorf("expected model-specification, got %s", resp.Step.SectionID)
	}
	if resp.Total != 8 {
		t.Errorf("expected 8 steps, got %d", resp.Total)
	}
	if resp.Prev == nil || *resp.Prev != 0 || resp.Next == nil || *resp.Next != 2 {
		t.Errorf("unexpected prev/next %v/%v", resp.Prev, resp.Next)
	}
	if len(resp.Checklist) == 0 || !resp.Checklist[0].Done {
		t.Errorf("expected first checklist item to be done, got %+v", resp.Checklist)
	}

	w = do(t, router, http.MethodGet, "/api/guide/0", nil)
	decode(t, w, &resp)
	if resp.Prev != nil {
		t.Error("expected no previous step on the welcome page")
	}
}

func TestHandleGuideStepErrors(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	if w := do(t, router, http.MethodGet, "/api/guide/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/api/guide/8", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, router := setupTestHandler(t, progress.NewMemoryStore(), Options{})

	do(t, router, http.MethodPost, "/api/search", SearchRequest{Query: "model"})

	w := do(t, router, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "aidocs_searches_total") {
		t.Error("expected search counter in metrics output")
	}
}
