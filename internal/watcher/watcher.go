// Package watcher provides background monitoring of browsing activity,
// detecting budget overruns and usage spikes and emitting alerts.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/store"
)

// WatchState captures a point-in-time view of today's browsing.
type WatchState struct {
	Timestamp      time.Time
	TotalSeconds   int64
	DomainSeconds  map[string]int64
	CategoryShares map[string]int // category -> percent of today
	FocusCompleted int
	FocusTotal     int
	VisitCount     int
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Watcher samples the store at a regular interval, compares consecutive
// states, and emits alerts on notable changes. It also prunes visits past
// the auto-delete window on each tick.
type Watcher struct {
	db       *store.DB
	interval time.Duration
	previous *WatchState
	alertFn  func(Alert)
	seen     map[string]bool // dedup: suppress repeated identical alerts

	// DailyBudgetMinutes triggers a critical alert when today's total
	// crosses it. 0 disables the budget check.
	DailyBudgetMinutes int
}

// New creates a Watcher over the given store.
func New(db *store.DB, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		db:       db,
		interval: interval,
		alertFn:  alertFn,
		seen:     make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot(time.Now())
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.check(time.Now()); err != nil {
				w.alertFn(Alert{
					Level:   "warning",
					Title:   "Watcher check failed",
					Message: err.Error(),
					Time:    time.Now(),
				})
			}
		}
	}
}

// check takes a fresh snapshot, emits alerts for changes since the previous
// one, and runs maintenance. Alerts with a title already emitted today are
// suppressed.
func (w *Watcher) check(now time.Time) error {
	curr, err := w.Snapshot(now)
	if err != nil {
		return err
	}

	// A new day resets the dedup set along with the snapshot window.
	if w.previous != nil && curr.Timestamp.Day() != w.previous.Timestamp.Day() {
		w.seen = make(map[string]bool)
	}

	for _, a := range Compare(w.previous, curr, w.DailyBudgetMinutes) {
		if w.seen[a.Title] {
			continue
		}
		w.seen[a.Title] = true
		w.alertFn(a)
	}
	w.previous = curr

	return w.prune(now)
}

// Snapshot reads today's visits and the focus history into a WatchState.
func (w *Watcher) Snapshot(now time.Time) (*WatchState, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	visits, err := w.db.ListVisitsSince(midnight)
	if err != nil {
		return nil, fmt.Errorf("listing today's visits: %w", err)
	}
	sessions, err := w.db.ListFocusSessions()
	if err != nil {
		return nil, fmt.Errorf("listing focus sessions: %w", err)
	}

	state := &WatchState{
		Timestamp:      now,
		DomainSeconds:  make(map[string]int64),
		CategoryShares: make(map[string]int),
		VisitCount:     len(visits),
	}
	for _, v := range visits {
		state.TotalSeconds += v.DurationSeconds
		state.DomainSeconds[v.Domain] += v.DurationSeconds
	}
	for category, share := range analyzer.CategoryBreakdown(visits) {
		state.CategoryShares[category] = share.Percentage
	}
	stats := analyzer.AnalyzeFocusSessions(sessions)
	state.FocusTotal = stats.Total
	state.FocusCompleted = stats.Completed

	return state, nil
}

// prune deletes visits older than the auto-delete window.
func (w *Watcher) prune(now time.Time) error {
	settings, err := w.db.GetSettings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.AutoDeleteDays <= 0 {
		return nil
	}
	cutoff := now.AddDate(0, 0, -settings.AutoDeleteDays)
	if _, err := w.db.DeleteVisitsBefore(cutoff); err != nil {
		return fmt.Errorf("pruning visits: %w", err)
	}
	return nil
}
