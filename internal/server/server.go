// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the paper browser over HTTP: a JSON API for the
// search and paging controls plus the embedded single-page interface.
package server

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/pdiddy/paperlist/internal/httputil"
	"github.com/pdiddy/paperlist/internal/ingest"
	"github.com/pdiddy/paperlist/internal/view"
	"github.com/pdiddy/paperlist/pkg/types"
)

//go:embed static/index.html
var indexHTML []byte

// Server holds the presentation state and the source it is loaded from.
type Server struct {
	view   *view.View
	source types.SourceConfig
	client *http.Client

	// loadMu serializes loads so concurrent reloads cannot interleave
	// their BeginLoad/FinishLoad pairs.
	loadMu sync.Mutex
}

// New builds a Server. No load happens yet; call LoadAsync or Reload.
func New(source types.SourceConfig, viewCfg types.ViewConfig) *Server {
	return &Server{
		view:   view.New(viewCfg.PageSize),
		source: source,
		client: httputil.NewClient(source.HTTPConfig),
	}
}

// LoadAsync starts the initial load in the background. Until it finishes
// the API reports the loading state.
func (s *Server) LoadAsync(ctx context.Context) {
	go s.load(ctx)
}

func (s *Server) load(ctx context.Context) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.view.BeginLoad()

	var warnings bytes.Buffer
	papers, err := ingest.Load(ctx, s.client, s.source, &warnings)
	if w := strings.TrimSpace(warnings.String()); w != "" {
		slog.Warn("Ingest reported problems", "detail", w)
	}
	if err != nil {
		slog.Error("Load failed", "url", s.source.URL, "err", err)
		s.view.FinishLoad(nil, err)
		return
	}
	slog.Info("Loaded papers", "count", len(papers))
	s.view.FinishLoad(papers, nil)
}

// Routes returns the HTTP mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/papers", s.handlePapers)
	mux.HandleFunc("/api/reload", s.handleReload)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

type papersResponse struct {
	State      string        `json:"state"`
	Error      string        `json:"error,omitempty"`
	Query      string        `json:"query"`
	Papers     []types.Paper `json:"papers"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	Filtered   int           `json:"filtered"`
}

// handlePapers serves the filtered, paginated view. A q parameter that
// differs from the current query resets the page to 1 no matter what the
// page parameter says; that rule lives in the view, not here.
func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		page = n
	}

	snap := s.view.Apply(r.URL.Query().Get("q"), page)
	s.writeJSON(w, snapshotResponse(snap))
}

// handleReload discards the loaded set and ingests the source again. The
// old and new data are never merged; a failed reload leaves an empty set.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.load(r.Context())
	s.writeJSON(w, snapshotResponse(s.view.Snapshot()))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		slog.Error("Unable to write index page", "err", err)
	}
}

func snapshotResponse(snap view.Snapshot) papersResponse {
	resp := papersResponse{
		State:      string(snap.State),
		Query:      snap.Query,
		Papers:     snap.Papers,
		Page:       snap.Page,
		TotalPages: snap.TotalPages,
		Total:      snap.Total,
		Filtered:   snap.Filtered,
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	if resp.Papers == nil {
		resp.Papers = []types.Paper{}
	}
	return resp
}

func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}
