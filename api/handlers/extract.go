// ABOUTME: HTTP handler for the extraction endpoint
// ABOUTME: Validates requests, fetches snapshots when needed, serves cached records

package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"clipper-app-api/api/dto/requests"
	"clipper-app-api/api/dto/responses"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
)

const (
	maxRequestBody  = 20 * 1024 * 1024
	articleCacheKey = "article:"
)

// ExtractHandler serves POST /extract. When the request carries no HTML
// snapshot the handler fetches the live page first. Full-page results are
// additionally cached in the shared cache backend, serialized as JSON, so
// multiple API instances can reuse them.
type ExtractHandler struct {
	extraction interfaces.ExtractionService
	fetcher    interfaces.SnapshotFetcher
	inliner    interfaces.ImageInliner
	deps       interfaces.Dependencies
	cacheTTL   time.Duration
}

// NewExtractHandler creates an extraction handler. Fetcher and inliner are
// optional; without a fetcher, requests must carry HTML.
func NewExtractHandler(
	extraction interfaces.ExtractionService,
	fetcher interfaces.SnapshotFetcher,
	inliner interfaces.ImageInliner,
	deps interfaces.Dependencies,
	cacheTTL time.Duration,
) *ExtractHandler {
	return &ExtractHandler{
		extraction: extraction,
		fetcher:    fetcher,
		inliner:    inliner,
		deps:       deps,
		cacheTTL:   cacheTTL,
	}
}

// Extract handles POST /extract.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req requests.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL cannot be empty")
		return
	}
	if parsed, err := url.Parse(req.URL); err != nil || !parsed.IsAbs() {
		writeError(w, http.StatusBadRequest, "URL must be absolute")
		return
	}

	mode := interfaces.ModeFullPage
	if req.Mode == string(interfaces.ModeSelection) {
		mode = interfaces.ModeSelection
	} else if req.Mode != "" && req.Mode != string(interfaces.ModeFullPage) {
		writeError(w, http.StatusBadRequest, "mode must be 'full-page' or 'selection'")
		return
	}

	cacheable := mode == interfaces.ModeFullPage && !req.InlineTopImage
	if cacheable && !req.ForceRefresh {
		if record, ok := h.cachedRecord(r, req.URL); ok {
			writeJSON(w, http.StatusOK, responses.ExtractResponse{Article: record, Cached: true})
			return
		}
	}

	snapshot := domain.PageSnapshot{
		URL:       req.URL,
		HTML:      req.HTML,
		Selection: req.Selection,
	}
	if snapshot.HTML == "" {
		if h.fetcher == nil {
			writeError(w, http.StatusBadRequest, "HTML cannot be empty")
			return
		}
		fetched, err := h.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			h.logWarn("snapshot fetch failed", map[string]interface{}{
				"url":   req.URL,
				"error": err.Error(),
			})
			writeError(w, statusForError(err), "could not fetch page: "+err.Error())
			return
		}
		fetched.Selection = req.Selection
		snapshot = fetched
	}

	record := h.extraction.Extract(r.Context(), snapshot, interfaces.ExtractionOptions{
		Mode:         mode,
		ForceRefresh: req.ForceRefresh,
	})

	if req.InlineTopImage && h.inliner != nil {
		h.inliner.InlineTopImage(r.Context(), &record)
	}

	if cacheable {
		h.storeRecord(r, req.URL, record)
	}

	writeJSON(w, http.StatusOK, responses.ExtractResponse{Article: record})
}

// cachedRecord loads a serialized record from the shared cache backend.
func (h *ExtractHandler) cachedRecord(r *http.Request, pageURL string) (domain.ArticleRecord, bool) {
	if h.deps.Cache == nil {
		return domain.ArticleRecord{}, false
	}
	data, err := h.deps.Cache.Get(r.Context(), articleCacheKey+pageURL)
	if err != nil || data == nil {
		return domain.ArticleRecord{}, false
	}
	var record domain.ArticleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.ArticleRecord{}, false
	}
	return record, true
}

// storeRecord writes a serialized record to the shared cache backend.
// Failed extractions are not cached so retries get a fresh attempt.
func (h *ExtractHandler) storeRecord(r *http.Request, pageURL string, record domain.ArticleRecord) {
	if h.deps.Cache == nil || record.ContentHTML == "" {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := h.deps.Cache.Set(r.Context(), articleCacheKey+pageURL, data, h.cacheTTL); err != nil {
		h.logWarn("record cache write failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
	}
}

func (h *ExtractHandler) logWarn(msg string, fields map[string]interface{}) {
	if h.deps.Logger != nil {
		h.deps.Logger.Warn(msg, fields)
	}
}
