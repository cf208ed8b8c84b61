package tracker

import "fmt"

// Settings bounds. Focus durations share the focus controller's 1..240
// minute range; retention windows are capped at roughly two years.
const (
	minDurationMinutes = 1
	maxDurationMinutes = 240
	maxRetentionDays   = 730
)

// DefaultSettings returns the settings applied to a fresh install and after
// a clear-all-data reset.
func DefaultSettings() Settings {
	return Settings{
		TrackingEnabled:      true,
		FocusDurationMinutes: 25,
		BreakDurationMinutes: 5,
		DataRetentionDays:    90,
		AutoDeleteDays:       365,
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their current
// value.
type SettingsPatch struct {
	TrackingEnabled      *bool `json:"tracking_enabled,omitempty"`
	FocusDurationMinutes *int  `json:"focus_duration_minutes,omitempty"`
	BreakDurationMinutes *int  `json:"break_duration_minutes,omitempty"`
	AutoStartBreaks      *bool `json:"auto_start_breaks,omitempty"`
	AutoStartSessions    *bool `json:"auto_start_sessions,omitempty"`
	DataRetentionDays    *int  `json:"data_retention_days,omitempty"`
	AutoDeleteDays       *int  `json:"auto_delete_days,omitempty"`
}

// Apply merges the patch into s, validating each supplied field's range
// before the merge. An out-of-range field rejects the whole patch.
func (s Settings) Apply(p SettingsPatch) (Settings, error) {
	if p.FocusDurationMinutes != nil {
		if err := checkRange("focus duration", *p.FocusDurationMinutes, minDurationMinutes, maxDurationMinutes); err != nil {
			return s, err
		}
	}
	if p.BreakDurationMinutes != nil {
		if err := checkRange("break duration", *p.BreakDurationMinutes, minDurationMinutes, maxDurationMinutes); err != nil {
			return s, err
		}
	}
	if p.DataRetentionDays != nil {
		if err := checkRange("data retention days", *p.DataRetentionDays, 1, maxRetentionDays); err != nil {
			return s, err
		}
	}
	if p.AutoDeleteDays != nil {
		if err := checkRange("auto delete days", *p.AutoDeleteDays, 1, maxRetentionDays); err != nil {
			return s, err
		}
	}

	if p.TrackingEnabled != nil {
		s.TrackingEnabled = *p.TrackingEnabled
	}
	if p.FocusDurationMinutes != nil {
		s.FocusDurationMinutes = *p.FocusDurationMinutes
	}
	if p.BreakDurationMinutes != nil {
		s.BreakDurationMinutes = *p.BreakDurationMinutes
	}
	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartSessions != nil {
		s.AutoStartSessions = *p.AutoStartSessions
	}
	if p.DataRetentionDays != nil {
		s.DataRetentionDays = *p.DataRetentionDays
	}
	if p.AutoDeleteDays != nil {
		s.AutoDeleteDays = *p.AutoDeleteDays
	}
	return s, nil
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}
