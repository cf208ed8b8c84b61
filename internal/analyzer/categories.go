package analyzer

import "github.com/blackwell-systems/webtime/internal/tracker"

// CategoryShare is the time and share of one category in a breakdown.
type CategoryShare struct {
	Seconds    int64 `json:"seconds"`
	Percentage int   `json:"percentage"`
}

// CategoryBreakdown groups visit time by category and computes each
// category's integer share of the total. Visits without a category fall
// under Uncategorized.
func CategoryBreakdown(visits []tracker.Visit) map[string]CategoryShare {
	breakdown := make(map[string]CategoryShare)
	if len(visits) == 0 {
		return breakdown
	}

	totals := make(map[string]int64)
	var grand int64
	for _, v := range visits {
		category := v.Category
		if category == "" {
			category = tracker.CategoryUncategorized
		}
		totals[category] += v.DurationSeconds
		grand += v.DurationSeconds
	}

	for category, seconds := range totals {
		breakdown[category] = CategoryShare{
			Seconds:    seconds,
			Percentage: Percentage(seconds, grand),
		}
	}
	return breakdown
}
