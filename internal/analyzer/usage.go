package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// DomainUsage is one entry in a top-domains ranking.
type DomainUsage struct {
	Domain string `json:"domain"`

	// Seconds is the summed visit duration for the domain.
	Seconds int64 `json:"seconds"`

	// Percentage is the domain's share of total time, rounded to an integer.
	Percentage int `json:"percentage"`

	// Trend is the percent change of the domain's time today versus
	// yesterday.
	Trend int `json:"trend"`

	// Category is the category of the domain's visits.
	Category string `json:"category"`
}

// TotalTime sums the duration of all visits, in seconds.
func TotalTime(visits []tracker.Visit) int64 {
	var total int64
	for _, v := range visits {
		total += v.DurationSeconds
	}
	return total
}

// TotalTimeInPeriod sums the duration of visits whose start time falls in
// [PeriodStart(now, p), now]. Visits that began before the window but ran
// into it are not counted; the filter is on start time only.
func TotalTimeInPeriod(visits []tracker.Visit, p Period, now time.Time) int64 {
	return totalTimeInRange(visits, PeriodStart(now, p), now)
}

// totalTimeInRange sums durations of visits starting in [from, to].
func totalTimeInRange(visits []tracker.Visit, from, to time.Time) int64 {
	var total int64
	for _, v := range visits {
		if v.StartTime.Before(from) || v.StartTime.After(to) {
			continue
		}
		total += v.DurationSeconds
	}
	return total
}

// TrendPercent computes the integer percent change from previous to current.
// A zero previous value yields 100 when current is positive and 0 otherwise;
// callers rely on this exact asymmetry.
func TrendPercent(current, previous int64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// Percentage returns part's integer-rounded share of total, or 0 when total
// is zero.
func Percentage(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// TopDomains ranks domains by summed visit duration, descending, truncated
// to limit. Ties keep first-encountered order. Each entry carries its share
// of total time and a day-over-day trend relative to now.
func TopDomains(visits []tracker.Visit, limit int, now time.Time) []DomainUsage {
	if len(visits) == 0 || limit <= 0 {
		return nil
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	type domainAcc struct {
		seconds   int64
		today     int64
		yesterday int64
		category  string
	}

	// Group by domain, preserving insertion order for stable tie-breaks.
	var order []string
	acc := make(map[string]*domainAcc)
	for _, v := range visits {
		a, ok := acc[v.Domain]
		if !ok {
			a = &domainAcc{category: v.Category}
			acc[v.Domain] = a
			order = append(order, v.Domain)
		}
		a.seconds += v.DurationSeconds
		switch {
		case !v.StartTime.Before(today) && !v.StartTime.After(now):
			a.today += v.DurationSeconds
		case !v.StartTime.Before(yesterday) && v.StartTime.Before(today):
			a.yesterday += v.DurationSeconds
		}
	}

	total := TotalTime(visits)

	ranked := make([]DomainUsage, 0, len(order))
	for _, domain := range order {
		a := acc[domain]
		category := a.category
		if category == "" {
			category = tracker.CategoryUncategorized
		}
		ranked = append(ranked, DomainUsage{
			Domain:     domain,
			Seconds:    a.seconds,
			Percentage: Percentage(a.seconds, total),
			Trend:      TrendPercent(a.today, a.yesterday),
			Category:   category,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Seconds > ranked[j].Seconds
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
