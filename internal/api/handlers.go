package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

// period reads the period query parameter, defaulting to day.
func period(r *http.Request) analyzer.Period {
	if p, ok := analyzer.ParsePeriod(r.URL.Query().Get("period")); ok {
		return p
	}
	return analyzer.PeriodDay
}

// --- Visits ---

func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	if visits == nil {
		visits = []tracker.Visit{}
	}
	writeJSON(w, http.StatusOK, visits)
}

// createVisitRequest is the POST /api/visits payload.
type createVisitRequest struct {
	URL             string     `json:"url"`
	Title           string     `json:"title"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds int64      `json:"duration_seconds"`
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req createVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := s.db.GetSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	if !settings.TrackingEnabled {
		writeError(w, http.StatusConflict, "tracking is disabled")
		return
	}

	if req.DurationSeconds == 0 && req.EndTime != nil {
		req.DurationSeconds = int64(req.EndTime.Sub(req.StartTime).Seconds())
	}

	// Sub-second visits are tab-switch noise: accepted but not persisted.
	if req.DurationSeconds < tracker.MinVisitSeconds {
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "discarded"})
		return
	}

	domain := tracker.DomainFromURL(req.URL)
	visit := tracker.Visit{
		Domain:          domain,
		URL:             req.URL,
		Title:           req.Title,
		Category:        tracker.Categorize(domain),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationSeconds: req.DurationSeconds,
	}
	if err := s.db.InsertVisit(&visit); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create visit")
		return
	}
	writeJSON(w, http.StatusCreated, visit)
}

// --- Focus sessions ---

func (s *Server) handleListFocusSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListFocusSessions()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list focus sessions")
		return
	}
	if sessions == nil {
		sessions = []tracker.FocusSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleRecentFocusSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListFocusSessions()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list focus sessions")
		return
	}
	recent := analyzer.RecentFocusSessions(sessions, 5)
	if recent == nil {
		recent = []tracker.FocusSession{}
	}
	writeJSON(w, http.StatusOK, recent)
}

// startFocusRequest is the POST /api/focus-sessions/start payload.
type startFocusRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

func (s *Server) handleStartFocusSession(w http.ResponseWriter, r *http.Request) {
	var req startFocusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DurationMinutes == 0 {
		settings, err := s.db.GetSettings()
		if err == nil {
			req.DurationMinutes = settings.FocusDurationMinutes
		}
	}

	session, err := s.controller.Start(req.DurationMinutes)
	switch {
	case errors.Is(err, focus.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, focus.ErrAlreadyActive):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to start focus session")
		return
	}

	record := session
	if err := s.db.InsertFocusSession(&record); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist focus session")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleStopFocusSession(w http.ResponseWriter, r *http.Request) {
	session, stopped := s.controller.Stop()
	if !stopped {
		// Idle stop is a pollable status, not an error.
		writeJSON(w, http.StatusOK, map[string]any{"status": "not_active"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "stopped", "session": session})
}

func (s *Server) handleFocusStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"active": false}
	if session, ok := s.controller.Active(); ok {
		status["active"] = true
		status["session"] = session
		status["remaining_seconds"] = int(s.controller.Remaining().Seconds())
	}
	if domain := r.URL.Query().Get("domain"); domain != "" {
		status["blocked"] = s.controller.IsBlocked(domain)
	}
	writeJSON(w, http.StatusOK, status)
}

// --- Blocked websites ---

func (s *Server) handleListBlocked(w http.ResponseWriter, r *http.Request) {
	websites, err := s.db.ListBlockedWebsites()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list blocked websites")
		return
	}
	if websites == nil {
		websites = []tracker.BlockedWebsite{}
	}
	writeJSON(w, http.StatusOK, websites)
}

// addBlockedRequest is the POST /api/blocked-websites payload.
type addBlockedRequest struct {
	Domain string `json:"domain"`
}

func (s *Server) handleAddBlocked(w http.ResponseWriter, r *http.Request) {
	var req addBlockedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	website, err := s.db.InsertBlockedWebsite(req.Domain)
	if errors.Is(err, focus.ErrInvalidDomain) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, focus.ErrDuplicateDomain) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add blocked website")
		return
	}

	// Keep the in-memory blocklist in step with the stored one.
	_ = s.controller.Blocklist().Add(website.Domain)

	writeJSON(w, http.StatusCreated, website)
}

func (s *Server) handleRemoveBlocked(w http.ResponseWriter, r *http.Request) {
	domain := r.PathValue("domain")
	found, err := s.db.DeleteBlockedWebsite(domain)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove blocked website")
		return
	}
	s.controller.Blocklist().Remove(domain)
	writeJSON(w, http.StatusOK, map[string]bool{"found": found})
}

// --- Settings and tracking ---

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.GetSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch tracker.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged, err := s.db.UpdateSettings(patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

func (s *Server) handleTrackingStatus(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.GetSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": settings.TrackingEnabled})
}

// trackingToggleRequest is the POST /api/tracking/toggle payload.
type trackingToggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleTrackingToggle(w http.ResponseWriter, r *http.Request) {
	var req trackingToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged, err := s.db.UpdateSettings(tracker.SettingsPatch{TrackingEnabled: &req.Enabled})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": merged.TrackingEnabled})
}

// --- Analytics ---

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.Summarize(visits, period(r), s.now()))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.ChartSeries(visits, period(r), s.now()))
}

func (s *Server) handleTopWebsites(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	p := period(r)
	visits, err := s.db.ListVisitsSince(analyzer.PeriodStart(now, p))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	top := analyzer.TopDomains(visits, 5, now)
	if top == nil {
		top = []analyzer.DomainUsage{}
	}
	writeJSON(w, http.StatusOK, top)
}

func (s *Server) handleProjections(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.ProjectUsage(visits, 3, analyzer.PeriodMonth, s.now()))
}

// analyticsResponse is the combined GET /api/analytics view.
type analyticsResponse struct {
	Summary    analyzer.Summary                  `json:"summary"`
	Daily      []analyzer.DayBucket              `json:"daily"`
	Categories map[string]analyzer.CategoryShare `json:"categories"`
	Focus      analyzer.FocusStats               `json:"focus"`
	Insights   []string                          `json:"insights"`
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	sessions, err := s.db.ListFocusSessions()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list focus sessions")
		return
	}

	now := s.now()
	p := period(r)
	insights := analyzer.GenerateInsights(visits, sessions, now)
	if insights == nil {
		insights = []string{}
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		Summary:    analyzer.Summarize(visits, p, now),
		Daily:      analyzer.DailyUsage(visits, 7, now),
		Categories: analyzer.CategoryBreakdown(visits),
		Focus:      analyzer.AnalyzeFocusSessions(sessions),
		Insights:   insights,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	p := period(r)
	visits, err := s.db.ListVisitsSince(analyzer.PeriodStart(now, p))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.CategoryBreakdown(visits))
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	visits, err := s.db.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list visits")
		return
	}
	trends := analyzer.Trends(visits, 10, period(r), s.now())
	if trends == nil {
		trends = []analyzer.DomainTrend{}
	}
	writeJSON(w, http.StatusOK, trends)
}

// --- Data management ---

func (s *Server) handleClearData(w http.ResponseWriter, r *http.Request) {
	if err := s.db.ClearAll(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportData(w http.ResponseWriter, r *http.Request) {
	export, err := s.db.ExportAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export data")
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=webtime-export.json")
	writeJSON(w, http.StatusOK, export)
}
