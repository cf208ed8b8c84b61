package watcher

import (
	"testing"
	"time"
)

func makeState() *WatchState {
	return &WatchState{
		Timestamp:      time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		DomainSeconds:  make(map[string]int64),
		CategoryShares: make(map[string]int),
	}
}

func TestCompare_IdenticalStates(t *testing.T) {
	prev := makeState()
	curr := makeState()

	alerts := Compare(prev, curr, 0)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts for identical states, got %d", len(alerts))
		for _, a := range alerts {
			t.Logf("  [%s] %s: %s", a.Level, a.Title, a.Message)
		}
	}
}

func TestCompare_BudgetExceeded(t *testing.T) {
	prev := makeState()
	prev.TotalSeconds = 100 * 60

	curr := makeState()
	curr.TotalSeconds = 125 * 60

	alerts := Compare(prev, curr, 120)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Level != "critical" {
		t.Errorf("expected critical level, got %s", alerts[0].Level)
	}
	if alerts[0].Title != "Daily budget exceeded" {
		t.Errorf("unexpected title %q", alerts[0].Title)
	}
}

func TestCompare_BudgetAlreadyExceeded(t *testing.T) {
	// Once past the budget, repeated checks should not re-alert.
	prev := makeState()
	prev.TotalSeconds = 125 * 60

	curr := makeState()
	curr.TotalSeconds = 130 * 60

	alerts := Compare(prev, curr, 120)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts when budget was already exceeded, got %d", len(alerts))
	}
}

func TestCompare_BudgetDisabled(t *testing.T) {
	curr := makeState()
	curr.TotalSeconds = 10 * 60 * 60

	alerts := Compare(makeState(), curr, 0)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts with budget disabled, got %d", len(alerts))
	}
}

func TestCompare_HeavyDomain(t *testing.T) {
	prev := makeState()
	prev.DomainSeconds["youtube.com"] = 90 * 60

	curr := makeState()
	curr.DomainSeconds["youtube.com"] = 130 * 60

	alerts := Compare(prev, curr, 0)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Level != "warning" {
		t.Errorf("expected warning level, got %s", alerts[0].Level)
	}
}

func TestCompare_HeavyDomainAlreadyReported(t *testing.T) {
	prev := makeState()
	prev.DomainSeconds["youtube.com"] = 125 * 60

	curr := makeState()
	curr.DomainSeconds["youtube.com"] = 130 * 60

	alerts := Compare(prev, curr, 0)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts for a domain already past the threshold, got %d", len(alerts))
	}
}

func TestCompare_DistractionShare(t *testing.T) {
	prev := makeState()
	prev.TotalSeconds = 40 * 60
	prev.CategoryShares["Entertainment"] = 30
	prev.CategoryShares["Social Media"] = 20

	curr := makeState()
	curr.TotalSeconds = 60 * 60
	curr.CategoryShares["Entertainment"] = 40
	curr.CategoryShares["Social Media"] = 25

	alerts := Compare(prev, curr, 0)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Title != "Distraction-heavy day" {
		t.Errorf("unexpected title %q", alerts[0].Title)
	}
}

func TestCompare_DistractionShareQuietDay(t *testing.T) {
	// High share on a near-empty day is noise, not a warning.
	curr := makeState()
	curr.TotalSeconds = 5 * 60
	curr.CategoryShares["Entertainment"] = 100

	alerts := Compare(makeState(), curr, 0)
	if len(alerts) != 0 {
		t.Errorf("expected 0 alerts on a quiet day, got %d", len(alerts))
	}
}

func TestCompare_FocusCompleted(t *testing.T) {
	prev := makeState()
	prev.FocusCompleted = 2

	curr := makeState()
	curr.FocusCompleted = 3

	alerts := Compare(prev, curr, 0)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Level != "info" {
		t.Errorf("expected info level, got %s", alerts[0].Level)
	}
}

func TestCompare_NilPrevious(t *testing.T) {
	curr := makeState()
	curr.TotalSeconds = 125 * 60
	curr.FocusCompleted = 3

	alerts := Compare(nil, curr, 120)
	if len(alerts) != 1 {
		t.Fatalf("expected only the budget alert with nil previous state, got %d", len(alerts))
	}
	if alerts[0].Level != "critical" {
		t.Errorf("expected critical level, got %s", alerts[0].Level)
	}
}
