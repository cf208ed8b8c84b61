package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

func TestSummarize(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	visits := []tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 600),
		visit("github.com", testNow.Add(-2*time.Hour), 300),
		visit("youtube.com", yesterday, 600),
	}

	s := Summarize(visits, PeriodDay, testNow)

	if s.Period != PeriodDay {
		t.Errorf("Period = %s, want day", s.Period)
	}
	if s.TotalSeconds != 900 {
		t.Errorf("TotalSeconds = %d, want 900", s.TotalSeconds)
	}
	// 900 today vs 600 yesterday.
	if s.TotalTrend != 50 {
		t.Errorf("TotalTrend = %d, want 50", s.TotalTrend)
	}
	if s.MostVisited.Domain != "youtube.com" {
		t.Errorf("MostVisited = %s, want youtube.com", s.MostVisited.Domain)
	}
	if s.MostVisited.Seconds != 600 {
		t.Errorf("MostVisited.Seconds = %d, want 600", s.MostVisited.Seconds)
	}
	if s.Projected.Seconds != 900*365 {
		t.Errorf("Projected.Seconds = %d, want %d", s.Projected.Seconds, 900*365)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, PeriodWeek, testNow)
	if s.TotalSeconds != 0 {
		t.Errorf("TotalSeconds = %d, want 0", s.TotalSeconds)
	}
	if s.TotalTrend != 0 {
		t.Errorf("TotalTrend = %d, want 0", s.TotalTrend)
	}
	if s.MostVisited.Domain != "" {
		t.Errorf("MostVisited = %q, want empty", s.MostVisited.Domain)
	}
	if s.Projected.Seconds != 0 {
		t.Errorf("Projected.Seconds = %d, want 0", s.Projected.Seconds)
	}
}

func TestSummarize_NoPreviousPeriod(t *testing.T) {
	visits := []tracker.Visit{visit("a.com", testNow.Add(-time.Hour), 300)}
	s := Summarize(visits, PeriodDay, testNow)
	if s.TotalTrend != 100 {
		t.Errorf("TotalTrend = %d, want 100 when the previous period is empty", s.TotalTrend)
	}
}

func TestSummarize_WeekDailyAverage(t *testing.T) {
	// 1400s this week vs 700s last week: both daily averages scale by the
	// same divisor, so the projection trend matches the totals trend.
	visits := []tracker.Visit{
		visit("a.com", testNow.Add(-time.Hour), 1400),
		visit("a.com", testNow.AddDate(0, 0, -7), 700),
	}
	s := Summarize(visits, PeriodWeek, testNow)
	if s.Projected.Trend != 100 {
		t.Errorf("Projected.Trend = %d, want 100", s.Projected.Trend)
	}
}
