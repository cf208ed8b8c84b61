package analyzer

import (
	"math"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// DayBucket is one day in a daily usage series.
type DayBucket struct {
	Date    time.Time `json:"date"`
	Minutes int       `json:"minutes"`
}

// DailyUsage buckets visit time by calendar day (local time) for the
// trailing days ending at now, oldest first. Each bucket holds whole
// minutes, rounded once at the bucket level.
func DailyUsage(visits []tracker.Visit, days int, now time.Time) []DayBucket {
	if days <= 0 {
		return nil
	}

	series := make([]DayBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := startOfDay(now).AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		var seconds int64
		for _, v := range visits {
			if !v.StartTime.Before(day) && v.StartTime.Before(next) {
				seconds += v.DurationSeconds
			}
		}

		series = append(series, DayBucket{
			Date:    day,
			Minutes: int(math.Round(float64(seconds) / 60)),
		})
	}
	return series
}
