package watcher

import (
	"testing"
	"time"

	"github.com/blackwell-systems/webtime/internal/store"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

func openTestStore(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertVisit(t *testing.T, db *store.DB, domain string, start time.Time, seconds int64) {
	t.Helper()
	end := start.Add(time.Duration(seconds) * time.Second)
	v := tracker.Visit{
		Domain:          domain,
		Category:        tracker.Categorize(domain),
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: seconds,
	}
	if err := db.InsertVisit(&v); err != nil {
		t.Fatalf("inserting visit: %v", err)
	}
}

func TestSnapshot_EmptyStore(t *testing.T) {
	db := openTestStore(t)
	w := New(db, 5*time.Minute, nil)

	state, err := w.Snapshot(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.VisitCount != 0 {
		t.Errorf("expected 0 visits, got %d", state.VisitCount)
	}
	if state.TotalSeconds != 0 {
		t.Errorf("expected 0 total seconds, got %d", state.TotalSeconds)
	}
}

func TestSnapshot_TodayOnly(t *testing.T) {
	db := openTestStore(t)
	now := time.Now()

	insertVisit(t, db, "youtube.com", now.Add(-time.Hour), 600)
	insertVisit(t, db, "github.com", now.Add(-30*time.Minute), 300)
	// Yesterday's visit must not count.
	insertVisit(t, db, "reddit.com", now.AddDate(0, 0, -1), 900)

	w := New(db, 5*time.Minute, nil)
	state, err := w.Snapshot(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.VisitCount != 2 {
		t.Errorf("expected 2 visits today, got %d", state.VisitCount)
	}
	if state.TotalSeconds != 900 {
		t.Errorf("expected 900 total seconds, got %d", state.TotalSeconds)
	}
	if got := state.DomainSeconds["youtube.com"]; got != 600 {
		t.Errorf("expected 600s on youtube.com, got %d", got)
	}
}

func TestCheck_DeduplicatesAlerts(t *testing.T) {
	db := openTestStore(t)
	now := time.Now()
	insertVisit(t, db, "youtube.com", now.Add(-3*time.Hour), 3*60*60)

	var fired []Alert
	w := New(db, time.Minute, func(a Alert) { fired = append(fired, a) })

	// First check sees the heavy domain with no previous state.
	if err := w.check(now); err != nil {
		t.Fatalf("first check: %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("expected 1 alert after first check, got %d", len(fired))
	}

	// Second check sees the same condition and must stay quiet.
	if err := w.check(now.Add(time.Minute)); err != nil {
		t.Fatalf("second check: %v", err)
	}
	if len(fired) != 1 {
		t.Errorf("expected alert to fire once, got %d", len(fired))
	}
}

func TestCheck_PrunesOldVisits(t *testing.T) {
	db := openTestStore(t)
	now := time.Now()

	settings, err := db.GetSettings()
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}

	old := now.AddDate(0, 0, -settings.AutoDeleteDays-10)
	insertVisit(t, db, "example.com", old, 60)
	insertVisit(t, db, "github.com", now.Add(-time.Hour), 60)

	w := New(db, time.Minute, func(Alert) {})
	if err := w.check(now); err != nil {
		t.Fatalf("check: %v", err)
	}

	visits, err := db.ListVisits()
	if err != nil {
		t.Fatalf("listing visits: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit after pruning, got %d", len(visits))
	}
	if visits[0].Domain != "github.com" {
		t.Errorf("expected the recent visit to survive, got %s", visits[0].Domain)
	}
}
