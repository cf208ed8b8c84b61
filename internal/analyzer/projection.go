package analyzer

import (
	"math"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// DefaultSavingsCategories are the categories targeted by potential-savings
// estimates when the caller does not choose its own.
var DefaultSavingsCategories = []string{tracker.CategorySocialMedia, tracker.CategoryEntertainment}

// DefaultReductionPercent is the suggested usage reduction for savings
// estimates.
const DefaultReductionPercent = 25

// categoryColors tags each category with a chart color name.
var categoryColors = map[string]string{
	tracker.CategoryEntertainment: "red",
	tracker.CategorySocialMedia:   "blue",
	tracker.CategoryProductivity:  "green",
	tracker.CategoryDevelopment:   "gray",
	tracker.CategoryShopping:      "amber",
	tracker.CategoryNews:          "purple",
	tracker.CategoryEducation:     "indigo",
	tracker.CategoryUncategorized: "neutral",
}

// CategoryColor returns the chart color name for a category, defaulting to
// gray for unknown categories.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return "gray"
}

// SiteProjection is the annualized outlook for a single domain.
type SiteProjection struct {
	Domain string `json:"domain"`

	// DailySeconds is the domain's average daily usage over its observed
	// date range.
	DailySeconds float64 `json:"daily_seconds"`

	// AnnualSeconds extrapolates the daily average over a year.
	AnnualSeconds int64 `json:"annual_seconds"`

	// Trend is the percent change versus the previous period of equal length.
	Trend int `json:"trend"`

	Category string `json:"category"`
	Color    string `json:"color"`
}

// Savings estimates annualized time reclaimed by reducing usage of the
// target categories.
type Savings struct {
	PotentialAnnualSeconds int64 `json:"potential_annual_seconds"`
	Percentage             int   `json:"percentage"`
}

// Projections is the full projection view: per-site outlooks plus the
// potential-savings estimate.
type Projections struct {
	Sites   []SiteProjection `json:"sites"`
	Savings Savings          `json:"savings"`
}

// AnnualProjection extrapolates an average daily usage (seconds) over 365
// days.
func AnnualProjection(dailyAverageSeconds float64) int64 {
	return int64(math.Round(dailyAverageSeconds * 365))
}

// DailyAverage returns average seconds per day for visits starting within
// the period ending at now. The divisor is the period's nominal day count,
// never less than 1.
func DailyAverage(visits []tracker.Visit, p Period, now time.Time) float64 {
	days := p.Days()
	if days < 1 {
		days = 1
	}
	return float64(TotalTimeInPeriod(visits, p, now)) / float64(days)
}

// DomainDailyAverage returns a domain's average seconds per day over the
// date range its visits actually span, with a minimum divisor of one day.
func DomainDailyAverage(visits []tracker.Visit, domain string) float64 {
	var total int64
	var first, last time.Time
	found := false
	for _, v := range visits {
		if v.Domain != domain {
			continue
		}
		total += v.DurationSeconds
		if !found || v.StartTime.Before(first) {
			first = v.StartTime
		}
		if !found || v.StartTime.After(last) {
			last = v.StartTime
		}
		found = true
	}
	if !found {
		return 0
	}

	days := math.Ceil(last.Sub(first).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return float64(total) / days
}

// PotentialSavings estimates the annualized seconds saved by cutting usage
// of the target categories by reductionPercent. Nil categories and a
// non-positive percent select the defaults.
func PotentialSavings(visits []tracker.Visit, targetCategories []string, reductionPercent int) Savings {
	if targetCategories == nil {
		targetCategories = DefaultSavingsCategories
	}
	if reductionPercent <= 0 {
		reductionPercent = DefaultReductionPercent
	}

	targets := make(map[string]bool, len(targetCategories))
	for _, c := range targetCategories {
		targets[c] = true
	}

	var total int64
	for _, v := range visits {
		if targets[v.Category] {
			total += v.DurationSeconds
		}
	}
	if total == 0 {
		return Savings{}
	}

	perDay := math.Round(float64(total) * float64(reductionPercent) / 100)
	return Savings{
		PotentialAnnualSeconds: int64(perDay) * 365,
		Percentage:             reductionPercent,
	}
}

// ProjectUsage builds per-site annual projections for the top domains in
// the period ending at now, plus the default potential-savings estimate.
// Trends compare each domain's time in the current period against the
// previous period of equal length.
func ProjectUsage(visits []tracker.Visit, limit int, p Period, now time.Time) Projections {
	top := TopDomains(visits, limit, now)

	prevFrom, prevTo := PreviousPeriodRange(now, p)
	periodStart := PeriodStart(now, p)

	sites := make([]SiteProjection, 0, len(top))
	for _, d := range top {
		daily := DomainDailyAverage(visits, d.Domain)

		var current, previous int64
		for _, v := range visits {
			if v.Domain != d.Domain {
				continue
			}
			switch {
			case !v.StartTime.Before(periodStart) && !v.StartTime.After(now):
				current += v.DurationSeconds
			case !v.StartTime.Before(prevFrom) && v.StartTime.Before(prevTo):
				previous += v.DurationSeconds
			}
		}

		sites = append(sites, SiteProjection{
			Domain:        d.Domain,
			DailySeconds:  daily,
			AnnualSeconds: AnnualProjection(daily),
			Trend:         TrendPercent(current, previous),
			Category:      d.Category,
			Color:         CategoryColor(d.Category),
		})
	}

	return Projections{
		Sites:   sites,
		Savings: PotentialSavings(visits, nil, 0),
	}
}
