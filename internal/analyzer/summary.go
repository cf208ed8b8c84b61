package analyzer

import (
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// MostVisited identifies the single heaviest domain in a period.
type MostVisited struct {
	Domain     string `json:"domain"`
	Seconds    int64  `json:"seconds"`
	Percentage int    `json:"percentage"`
}

// ProjectedAnnual is the annualized usage outlook in a summary.
type ProjectedAnnual struct {
	Seconds int64 `json:"seconds"`
	Trend   int   `json:"trend"`
}

// Summary is the dashboard headline view for one period.
type Summary struct {
	Period       Period          `json:"period"`
	TotalSeconds int64           `json:"total_seconds"`
	TotalTrend   int             `json:"total_trend"`
	MostVisited  MostVisited     `json:"most_visited"`
	Projected    ProjectedAnnual `json:"projected_annual"`
}

// Summarize computes the headline numbers for the period ending at now:
// total time with a trend against the previous period, the most visited
// domain, and the annual projection with its trend against the previous
// period's daily average.
func Summarize(visits []tracker.Visit, p Period, now time.Time) Summary {
	total := TotalTimeInPeriod(visits, p, now)

	prevFrom, prevTo := PreviousPeriodRange(now, p)
	previous := totalTimeInRange(visits, prevFrom, prevTo.Add(-time.Nanosecond))

	s := Summary{
		Period:       p,
		TotalSeconds: total,
		TotalTrend:   TrendPercent(total, previous),
	}

	// Most visited domain within the period.
	periodStart := PeriodStart(now, p)
	var inPeriod []tracker.Visit
	for _, v := range visits {
		if !v.StartTime.Before(periodStart) && !v.StartTime.After(now) {
			inPeriod = append(inPeriod, v)
		}
	}
	if top := TopDomains(inPeriod, 1, now); len(top) > 0 {
		s.MostVisited = MostVisited{
			Domain:     top[0].Domain,
			Seconds:    top[0].Seconds,
			Percentage: top[0].Percentage,
		}
	}

	// Annual projection from the period's daily average, trended against
	// the previous period's daily average.
	days := float64(p.Days())
	daily := float64(total) / days
	prevDaily := float64(previous) / days
	s.Projected = ProjectedAnnual{
		Seconds: AnnualProjection(daily),
		Trend:   TrendPercent(int64(daily), int64(prevDaily)),
	}

	return s
}
