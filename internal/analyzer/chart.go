package analyzer

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// chartCategories are the headline categories that get their own dataset;
// everything else folds into "Other".
var chartCategories = []string{
	tracker.CategoryEntertainment,
	tracker.CategorySocialMedia,
	tracker.CategoryProductivity,
}

// ChartDataset is one category's series across the chart buckets.
type ChartDataset struct {
	Label   string    `json:"label"`
	Minutes []float64 `json:"minutes"`
	Color   string    `json:"color"`
}

// ChartData is a bucketed per-category view of usage for charting.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartSeries buckets visit minutes by category for the period ending at
// now. Day charts use 24 hourly buckets of today, week charts the trailing
// seven days labeled by weekday, and month charts one bucket per day of the
// current month. Other periods fall back to the week layout.
func ChartSeries(visits []tracker.Visit, p Period, now time.Time) ChartData {
	var labels []string
	bucketOf := func(t time.Time) int { return -1 }

	switch p {
	case PeriodDay:
		today := startOfDay(now)
		for h := 0; h < 24; h++ {
			labels = append(labels, fmt.Sprintf("%d:00", h))
		}
		bucketOf = func(t time.Time) int {
			if t.Before(today) || !t.Before(today.AddDate(0, 0, 1)) {
				return -1
			}
			return t.Hour()
		}

	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		daysInMonth := first.AddDate(0, 1, -1).Day()
		for d := 1; d <= daysInMonth; d++ {
			labels = append(labels, fmt.Sprintf("%d", d))
		}
		bucketOf = func(t time.Time) int {
			if t.Year() != now.Year() || t.Month() != now.Month() {
				return -1
			}
			return t.Day() - 1
		}

	default: // week
		start := startOfDay(now).AddDate(0, 0, -6)
		for i := 0; i < 7; i++ {
			labels = append(labels, start.AddDate(0, 0, i).Format("Mon"))
		}
		bucketOf = func(t time.Time) int {
			if t.Before(start) {
				return -1
			}
			i := int(startOfDay(t).Sub(start).Hours() / 24)
			if i < 0 || i > 6 {
				return -1
			}
			return i
		}
	}

	// Fixed datasets first so chart ordering is stable; Other is appended
	// only when something lands in it.
	series := make(map[string][]float64, len(chartCategories)+1)
	for _, c := range chartCategories {
		series[c] = make([]float64, len(labels))
	}

	headline := make(map[string]bool, len(chartCategories))
	for _, c := range chartCategories {
		headline[c] = true
	}

	hasOther := false
	for _, v := range visits {
		i := bucketOf(v.StartTime)
		if i < 0 {
			continue
		}
		category := v.Category
		if category == "" {
			category = tracker.CategoryUncategorized
		}
		if !headline[category] {
			category = "Other"
			if !hasOther {
				series[category] = make([]float64, len(labels))
				hasOther = true
			}
		}
		series[category][i] += float64(v.DurationSeconds) / 60
	}

	data := ChartData{Labels: labels}
	for _, c := range chartCategories {
		data.Datasets = append(data.Datasets, ChartDataset{
			Label:   c,
			Minutes: series[c],
			Color:   CategoryColor(c),
		})
	}
	if hasOther {
		data.Datasets = append(data.Datasets, ChartDataset{
			Label:   "Other",
			Minutes: series["Other"],
			Color:   "gray",
		})
	}
	return data
}
