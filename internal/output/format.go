package output

import "fmt"

// FormatDuration formats seconds as a human-readable string like "1h 40m",
// "45m", or "30s".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatHours formats seconds as whole hours, for annual projections where
// minute precision is noise.
func FormatHours(seconds int64) string {
	return fmt.Sprintf("%dh", seconds/3600)
}
