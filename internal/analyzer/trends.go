package analyzer

import (
	"sort"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// DomainTrend compares one domain's usage in the current period against the
// previous period of equal length.
type DomainTrend struct {
	Domain          string `json:"domain"`
	CurrentSeconds  int64  `json:"current_seconds"`
	PreviousSeconds int64  `json:"previous_seconds"`
	Trend           int    `json:"trend"`
	Category        string `json:"category"`
}

// Trends computes period-over-period changes for every domain seen in
// either window, sorted by current usage descending and truncated to limit.
func Trends(visits []tracker.Visit, limit int, p Period, now time.Time) []DomainTrend {
	if len(visits) == 0 || limit <= 0 {
		return nil
	}

	periodStart := PeriodStart(now, p)
	prevFrom, prevTo := PreviousPeriodRange(now, p)

	type acc struct {
		current  int64
		previous int64
		category string
	}

	var order []string
	byDomain := make(map[string]*acc)
	for _, v := range visits {
		var current, previous int64
		switch {
		case !v.StartTime.Before(periodStart) && !v.StartTime.After(now):
			current = v.DurationSeconds
		case !v.StartTime.Before(prevFrom) && v.StartTime.Before(prevTo):
			previous = v.DurationSeconds
		default:
			continue
		}

		a, ok := byDomain[v.Domain]
		if !ok {
			a = &acc{category: v.Category}
			byDomain[v.Domain] = a
			order = append(order, v.Domain)
		}
		a.current += current
		a.previous += previous
	}

	trends := make([]DomainTrend, 0, len(order))
	for _, domain := range order {
		a := byDomain[domain]
		category := a.category
		if category == "" {
			category = tracker.CategoryUncategorized
		}
		trends = append(trends, DomainTrend{
			Domain:          domain,
			CurrentSeconds:  a.current,
			PreviousSeconds: a.previous,
			Trend:           TrendPercent(a.current, a.previous),
			Category:        category,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].CurrentSeconds > trends[j].CurrentSeconds
	})

	if limit < len(trends) {
		trends = trends[:limit]
	}
	return trends
}
