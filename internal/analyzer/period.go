// Package analyzer turns collections of visit and focus-session records into
// derived statistics: totals, rankings, trends, time series, and projections.
// Every function is a pure computation over its inputs plus an explicit
// "now"; nothing here reads the wall clock or mutates its arguments.
package analyzer

import "time"

// Period selects the aggregation window ending at "now".
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a period selector string to a Period. Unknown selectors
// report ok=false.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), true
	}
	return "", false
}

// Days returns the nominal day count of the period, used as the divisor for
// daily averages.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 1
	}
}

// PeriodStart returns the local-time start of the period containing now:
// midnight for day, the most recent Sunday midnight for week, the first of
// the month for month, and January 1 for year.
func PeriodStart(now time.Time, p Period) time.Time {
	y, m, d := now.Date()
	loc := now.Location()

	switch p {
	case PeriodWeek:
		midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return midnight.AddDate(0, 0, -int(now.Weekday()))
	case PeriodMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		return time.Date(y, 1, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// PreviousPeriodRange returns [start, end) of the period of equal length
// immediately preceding the one containing now, for trend comparisons.
func PreviousPeriodRange(now time.Time, p Period) (time.Time, time.Time) {
	end := PeriodStart(now, p)

	switch p {
	case PeriodWeek:
		return end.AddDate(0, 0, -7), end
	case PeriodMonth:
		return end.AddDate(0, -1, 0), end
	case PeriodYear:
		return end.AddDate(-1, 0, 0), end
	default:
		return end.AddDate(0, 0, -1), end
	}
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
