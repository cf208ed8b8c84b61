package watcher

import "fmt"

// Alert thresholds.
const (
	heavyDomainSeconds  = 2 * 60 * 60 // single domain past two hours today
	distractionSharePct = 60          // Entertainment + Social Media share of today
	distractionMinTotal = 30 * 60     // ignore share alerts on quiet days
)

// Compare detects notable changes between two watch states and returns
// alerts. budgetMinutes caps today's total; 0 disables that check.
func Compare(prev, curr *WatchState, budgetMinutes int) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr, budgetMinutes)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical detects budget overruns.
func compareCritical(prev, curr *WatchState, budgetMinutes int) []Alert {
	if budgetMinutes <= 0 {
		return nil
	}

	budget := int64(budgetMinutes) * 60
	if curr.TotalSeconds >= budget && (prev == nil || prev.TotalSeconds < budget) {
		return []Alert{{
			Level:   "critical",
			Title:   "Daily budget exceeded",
			Message: fmt.Sprintf("Today's browsing is %d minutes, past your %d minute budget", curr.TotalSeconds/60, budgetMinutes),
			Time:    curr.Timestamp,
		}}
	}
	return nil
}

// compareWarning detects heavy single-domain usage and a distraction-heavy
// day.
func compareWarning(prev, curr *WatchState) []Alert {
	var alerts []Alert

	for domain, seconds := range curr.DomainSeconds {
		if seconds < heavyDomainSeconds {
			continue
		}
		if prev != nil && prev.DomainSeconds[domain] >= heavyDomainSeconds {
			continue
		}
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   fmt.Sprintf("Heavy usage: %s", domain),
			Message: fmt.Sprintf("%d minutes on %s today", seconds/60, domain),
			Time:    curr.Timestamp,
		})
	}

	if curr.TotalSeconds >= distractionMinTotal {
		share := curr.CategoryShares["Entertainment"] + curr.CategoryShares["Social Media"]
		prevShare := 0
		if prev != nil {
			prevShare = prev.CategoryShares["Entertainment"] + prev.CategoryShares["Social Media"]
		}
		if share >= distractionSharePct && prevShare < distractionSharePct {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   "Distraction-heavy day",
				Message: fmt.Sprintf("Entertainment and social media make up %d%% of today's browsing", share),
				Time:    curr.Timestamp,
			})
		}
	}

	return alerts
}

// compareInfo reports completed focus sessions since the last check.
func compareInfo(prev, curr *WatchState) []Alert {
	if prev == nil || curr.FocusCompleted <= prev.FocusCompleted {
		return nil
	}
	return []Alert{{
		Level:   "info",
		Title:   fmt.Sprintf("Focus session complete (#%d)", curr.FocusCompleted),
		Message: "Nice work. Take a break before the next one.",
		Time:    curr.Timestamp,
	}}
}
