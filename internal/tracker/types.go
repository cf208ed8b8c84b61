// Package tracker defines the core entities of webtime: website visits,
// focus sessions, blocked websites, and user settings.
package tracker

import "time"

// MinVisitSeconds is the shortest visit worth recording. Rapid tab switches
// produce sub-second visits that would only add noise to the aggregates.
const MinVisitSeconds = 1

// Visit is a recorded interval of browsing a single domain.
type Visit struct {
	ID        int64      `json:"id"`
	Domain    string     `json:"domain"`
	URL       string     `json:"url"`
	Title     string     `json:"title,omitempty"`
	Category  string     `json:"category"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// DurationSeconds equals EndTime-StartTime once the visit is closed.
	DurationSeconds int64 `json:"duration_seconds"`
}

// FocusSession is a timed interval during which listed domains are blocked.
type FocusSession struct {
	ID              int64      `json:"id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`

	// Completed is true when the session ran to its natural expiry.
	// A manual stop before expiry leaves it false ("interrupted").
	Completed bool `json:"completed"`
}

// Active reports whether the session has not yet terminated.
func (s FocusSession) Active() bool {
	return s.EndTime == nil
}

// BlockedWebsite is a user-curated entry in the focus-mode blocklist.
// Domain is stored normalized: lowercase, no scheme, no leading "www.".
type BlockedWebsite struct {
	ID     int64  `json:"id"`
	Domain string `json:"domain"`
}

// Settings is the per-user configuration singleton.
type Settings struct {
	TrackingEnabled      bool `json:"tracking_enabled"`
	FocusDurationMinutes int  `json:"focus_duration_minutes"`
	BreakDurationMinutes int  `json:"break_duration_minutes"`
	AutoStartBreaks      bool `json:"auto_start_breaks"`
	AutoStartSessions    bool `json:"auto_start_sessions"`
	DataRetentionDays    int  `json:"data_retention_days"`
	AutoDeleteDays       int  `json:"auto_delete_days"`
}
