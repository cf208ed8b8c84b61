package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/store"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

var apiNow = time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *store.DB) {
	t.Helper()
	db, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	controller := focus.NewController(focus.RealClock(), focus.NewBlocklist(), nil)
	return NewServer(db, controller, func() time.Time { return apiNow }), db
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func seedVisit(t *testing.T, db *store.DB, domain string, start time.Time, seconds int64) {
	t.Helper()
	end := start.Add(time.Duration(seconds) * time.Second)
	v := tracker.Visit{
		Domain:          domain,
		URL:             "https://" + domain + "/",
		Category:        tracker.Categorize(domain),
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: seconds,
	}
	require.NoError(t, db.InsertVisit(&v))
}

func TestCreateVisit(t *testing.T) {
	srv, db := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/visits", map[string]any{
		"url":              "https://www.youtube.com/watch?v=x",
		"start_time":       apiNow.Add(-10 * time.Minute),
		"duration_seconds": 600,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got tracker.Visit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "youtube.com", got.Domain)
	assert.Equal(t, tracker.CategoryEntertainment, got.Category)
	assert.NotZero(t, got.ID)

	visits, err := db.ListVisits()
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestCreateVisit_DiscardsSubSecond(t *testing.T) {
	srv, db := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/visits", map[string]any{
		"url":              "https://example.com/",
		"start_time":       apiNow,
		"duration_seconds": 0,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "discarded")

	visits, err := db.ListVisits()
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestCreateVisit_TrackingDisabled(t *testing.T) {
	srv, db := newTestServer(t)

	enabled := false
	_, err := db.UpdateSettings(tracker.SettingsPatch{TrackingEnabled: &enabled})
	require.NoError(t, err)

	rec := doJSON(t, srv, http.MethodPost, "/api/visits", map[string]any{
		"url":              "https://example.com/",
		"start_time":       apiNow,
		"duration_seconds": 60,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateVisit_DurationFromEndTime(t *testing.T) {
	srv, db := newTestServer(t)

	start := apiNow.Add(-2 * time.Minute)
	end := apiNow
	rec := doJSON(t, srv, http.MethodPost, "/api/visits", map[string]any{
		"url":        "https://github.com/",
		"start_time": start,
		"end_time":   end,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	visits, err := db.ListVisits()
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, int64(120), visits[0].DurationSeconds)
}

func TestFocusSessionEndpoints(t *testing.T) {
	srv, db := newTestServer(t)

	// Idle stop is a 200 with status, not an error.
	rec := doJSON(t, srv, http.MethodPost, "/api/focus-sessions/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_active")

	rec = doJSON(t, srv, http.MethodPost, "/api/focus-sessions/start", map[string]any{
		"duration_minutes": 25,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Second start conflicts.
	rec = doJSON(t, srv, http.MethodPost, "/api/focus-sessions/start", map[string]any{
		"duration_minutes": 25,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Status reports the active session.
	rec = doJSON(t, srv, http.MethodGet, "/api/focus-sessions/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status["active"])

	// The session is persisted as open.
	active, err := db.GetActiveFocusSession()
	require.NoError(t, err)
	require.NotNil(t, active)

	rec = doJSON(t, srv, http.MethodPost, "/api/focus-sessions/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stopped")
}

func TestFocusSessionStart_InvalidDuration(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/focus-sessions/start", map[string]any{
		"duration_minutes": 500,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlockedWebsiteEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/blocked-websites", map[string]any{
		"domain": "WWW.Example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"example.com"`)

	// Duplicate add conflicts.
	rec = doJSON(t, srv, http.MethodPost, "/api/blocked-websites", map[string]any{
		"domain": "example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// A domain that normalizes to nothing is a bad request, not a conflict.
	rec = doJSON(t, srv, http.MethodPost, "/api/blocked-websites", map[string]any{
		"domain": "https://",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The controller blocklist was synced.
	assert.Contains(t, srv.controller.Blocklist().Domains(), "example.com")

	rec = doJSON(t, srv, http.MethodDelete, "/api/blocked-websites/example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "true")
	assert.Empty(t, srv.controller.Blocklist().Domains())
}

func TestSettingsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings tracker.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, tracker.DefaultSettings(), settings)

	rec = doJSON(t, srv, http.MethodPost, "/api/settings", map[string]any{
		"focus_duration_minutes": 50,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 50, settings.FocusDurationMinutes)

	// Out-of-range patches are rejected.
	rec = doJSON(t, srv, http.MethodPost, "/api/settings", map[string]any{
		"focus_duration_minutes": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackingEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/tracking/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "true")

	rec = doJSON(t, srv, http.MethodPost, "/api/tracking/toggle", map[string]any{
		"enabled": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/tracking/status", nil)
	assert.Contains(t, rec.Body.String(), "false")
}

func TestSummaryEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "youtube.com", apiNow.Add(-time.Hour), 600)
	seedVisit(t, db, "github.com", apiNow.Add(-2*time.Hour), 300)

	rec := doJSON(t, srv, http.MethodGet, "/api/summary?period=day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary analyzer.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(900), summary.TotalSeconds)
	assert.Equal(t, "youtube.com", summary.MostVisited.Domain)
}

func TestTopWebsitesEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "youtube.com", apiNow.Add(-time.Hour), 600)
	seedVisit(t, db, "github.com", apiNow.Add(-2*time.Hour), 300)

	rec := doJSON(t, srv, http.MethodGet, "/api/top-websites?period=day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var top []analyzer.DomainUsage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top, 2)
	assert.Equal(t, "youtube.com", top[0].Domain)
	assert.Equal(t, 67, top[0].Percentage)
}

func TestChartEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "youtube.com", apiNow.Add(-time.Hour), 600)

	rec := doJSON(t, srv, http.MethodGet, "/api/chart?period=day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data analyzer.ChartData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data.Labels, 24)
	require.NotEmpty(t, data.Datasets)
}

func TestAnalyticsEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "youtube.com", apiNow.Add(-time.Hour), 600)

	rec := doJSON(t, srv, http.MethodGet, "/api/analytics?period=day", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"summary", "daily", "categories", "focus", "insights"} {
		assert.Contains(t, body, key)
	}
}

func TestTrendsEndpoint_EmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/trends", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestDataEndpoints(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "youtube.com", apiNow.Add(-time.Hour), 600)

	rec := doJSON(t, srv, http.MethodGet, "/api/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "webtime-export.json")

	var export store.Export
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &export))
	assert.Len(t, export.Visits, 1)

	rec = doJSON(t, srv, http.MethodDelete, "/api/data/clear", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	visits, err := db.ListVisits()
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestUnknownRouteIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPeriodDefaultsToDay(t *testing.T) {
	srv, db := newTestServer(t)
	seedVisit(t, db, "a.com", apiNow.AddDate(0, 0, -3), 600)

	// Without a period the summary covers today only.
	rec := doJSON(t, srv, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary analyzer.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, analyzer.PeriodDay, summary.Period)
	assert.Equal(t, int64(0), summary.TotalSeconds)
}
