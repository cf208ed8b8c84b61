package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// FocusStats summarizes focus-session history.
type FocusStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completion_rate"`
}

// AnalyzeFocusSessions computes completion statistics over terminated
// sessions. A still-active session (no end time) is excluded.
func AnalyzeFocusSessions(sessions []tracker.FocusSession) FocusStats {
	var stats FocusStats
	for _, s := range sessions {
		if s.Active() {
			continue
		}
		stats.Total++
		if s.Completed {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// RecentFocusSessions returns up to n sessions sorted by start time
// descending.
func RecentFocusSessions(sessions []tracker.FocusSession, n int) []tracker.FocusSession {
	if len(sessions) == 0 || n <= 0 {
		return nil
	}

	sorted := make([]tracker.FocusSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// GenerateInsights produces human-readable observations from usage patterns
// and focus-session history.
func GenerateInsights(visits []tracker.Visit, sessions []tracker.FocusSession, now time.Time) []string {
	var insights []string

	top := TopDomains(visits, 10, now)

	// Heavy top site: reducing it by 30 minutes a day reclaims ~182h/year.
	if len(top) > 0 && top[0].Seconds > 3600 {
		saved := int(math.Round(30 * 365.0 / 60))
		insights = append(insights, fmt.Sprintf(
			"Reducing %s by 30min/day would save you %d hours annually",
			top[0].Domain, saved))
	}

	// Fastest-growing site.
	for _, d := range top {
		if d.Trend > 10 {
			insights = append(insights, fmt.Sprintf(
				"%s usage has increased %d%% recently", d.Domain, d.Trend))
			break
		}
	}

	// Focus-session effectiveness.
	if stats := AnalyzeFocusSessions(sessions); stats.Total > 0 {
		switch {
		case stats.CompletionRate < 50:
			insights = append(insights, fmt.Sprintf(
				"Only %d%% of focus sessions completed - consider shorter sessions",
				stats.CompletionRate))
		case stats.CompletionRate > 80:
			insights = append(insights, fmt.Sprintf(
				"Great job! %d%% of focus sessions completed", stats.CompletionRate))
		}
	}

	return insights
}
