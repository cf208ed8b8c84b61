package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

func TestChartSeries_Day(t *testing.T) {
	visits := []tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 600), // 14:00 bucket
		visit("youtube.com", testNow.AddDate(0, 0, -1), 999),
	}

	data := ChartSeries(visits, PeriodDay, testNow)
	if len(data.Labels) != 24 {
		t.Fatalf("expected 24 hourly labels, got %d", len(data.Labels))
	}
	if data.Labels[0] != "0:00" || data.Labels[23] != "23:00" {
		t.Errorf("unexpected labels: %s .. %s", data.Labels[0], data.Labels[23])
	}

	ent := findDataset(t, data, tracker.CategoryEntertainment)
	if ent.Minutes[14] != 10 {
		t.Errorf("hour-14 minutes = %v, want 10", ent.Minutes[14])
	}
	// Yesterday's visit must not appear anywhere in today's buckets.
	var total float64
	for _, m := range ent.Minutes {
		total += m
	}
	if total != 10 {
		t.Errorf("total minutes = %v, want 10", total)
	}
}

func TestChartSeries_Week(t *testing.T) {
	visits := []tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 600),
		visit("reddit.com", testNow.AddDate(0, 0, -2), 300),
		visit("youtube.com", testNow.AddDate(0, 0, -10), 999), // outside the window
	}

	data := ChartSeries(visits, PeriodWeek, testNow)
	if len(data.Labels) != 7 {
		t.Fatalf("expected 7 labels, got %d", len(data.Labels))
	}
	// Trailing window ends today.
	if data.Labels[6] != testNow.Format("Mon") {
		t.Errorf("last label = %s, want %s", data.Labels[6], testNow.Format("Mon"))
	}

	ent := findDataset(t, data, tracker.CategoryEntertainment)
	if ent.Minutes[6] != 10 {
		t.Errorf("today's Entertainment minutes = %v, want 10", ent.Minutes[6])
	}
	social := findDataset(t, data, tracker.CategorySocialMedia)
	if social.Minutes[4] != 5 {
		t.Errorf("two-days-ago Social Media minutes = %v, want 5", social.Minutes[4])
	}
}

func TestChartSeries_Month(t *testing.T) {
	visits := []tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 600),
	}

	data := ChartSeries(visits, PeriodMonth, testNow)
	// June has 30 days.
	if len(data.Labels) != 30 {
		t.Fatalf("expected 30 labels, got %d", len(data.Labels))
	}
	ent := findDataset(t, data, tracker.CategoryEntertainment)
	if ent.Minutes[testNow.Day()-1] != 10 {
		t.Errorf("day-of-month minutes = %v, want 10", ent.Minutes[testNow.Day()-1])
	}
}

func TestChartSeries_OtherDataset(t *testing.T) {
	data := ChartSeries([]tracker.Visit{
		visit("github.com", testNow.Add(-time.Hour), 120),
	}, PeriodWeek, testNow)

	other := findDataset(t, data, "Other")
	if other.Minutes[6] != 2 {
		t.Errorf("Other minutes = %v, want 2", other.Minutes[6])
	}
}

func TestChartSeries_NoOtherWhenUnused(t *testing.T) {
	data := ChartSeries([]tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 120),
	}, PeriodWeek, testNow)

	for _, ds := range data.Datasets {
		if ds.Label == "Other" {
			t.Error("Other dataset present with nothing in it")
		}
	}
	// The three headline datasets are always there.
	if len(data.Datasets) != 3 {
		t.Errorf("expected 3 datasets, got %d", len(data.Datasets))
	}
}

func findDataset(t *testing.T, data ChartData, label string) ChartDataset {
	t.Helper()
	for _, ds := range data.Datasets {
		if ds.Label == label {
			return ds
		}
	}
	t.Fatalf("dataset %q not found", label)
	return ChartDataset{}
}
