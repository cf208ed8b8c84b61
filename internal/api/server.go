// Package api exposes the tracker over a JSON HTTP API. It is a thin layer:
// handlers fetch records from the store, hand them to the analyzer or the
// focus controller, and encode the result.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/store"
)

// Server wires the store, analyzer, and focus controller behind HTTP routes.
type Server struct {
	db         *store.DB
	controller *focus.Controller
	now        func() time.Time
}

// NewServer creates a Server. now supplies the reference time for analytics
// queries; pass time.Now outside of tests.
func NewServer(db *store.DB, controller *focus.Controller, now func() time.Time) *Server {
	return &Server{db: db, controller: controller, now: now}
}

// Handler returns the API route tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/visits", s.handleListVisits)
	mux.HandleFunc("POST /api/visits", s.handleCreateVisit)

	mux.HandleFunc("GET /api/focus-sessions", s.handleListFocusSessions)
	mux.HandleFunc("GET /api/focus-sessions/recent", s.handleRecentFocusSessions)
	mux.HandleFunc("POST /api/focus-sessions/start", s.handleStartFocusSession)
	mux.HandleFunc("POST /api/focus-sessions/stop", s.handleStopFocusSession)
	mux.HandleFunc("GET /api/focus-sessions/status", s.handleFocusStatus)

	mux.HandleFunc("GET /api/blocked-websites", s.handleListBlocked)
	mux.HandleFunc("POST /api/blocked-websites", s.handleAddBlocked)
	mux.HandleFunc("DELETE /api/blocked-websites/{domain}", s.handleRemoveBlocked)

	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("POST /api/settings", s.handleUpdateSettings)
	mux.HandleFunc("GET /api/tracking/status", s.handleTrackingStatus)
	mux.HandleFunc("POST /api/tracking/toggle", s.handleTrackingToggle)

	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/top-websites", s.handleTopWebsites)
	mux.HandleFunc("GET /api/projections", s.handleProjections)
	mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/trends", s.handleTrends)

	mux.HandleFunc("DELETE /api/data/clear", s.handleClearData)
	mux.HandleFunc("GET /api/data/export", s.handleExportData)

	return mux
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// writeJSON encodes v with a 200 status (or the given one).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits a JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
