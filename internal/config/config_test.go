package config

import (
	"path/filepath"
	"testing"
)

func TestSettingsMapsAllFields(t *testing.T) {
	cfg := &Config{
		Tracking: Tracking{Enabled: false},
		Focus: Focus{
			DurationMinutes:      45,
			BreakDurationMinutes: 10,
			AutoStartBreaks:      true,
			AutoStartSessions:    true,
		},
		Retention: Retention{
			DataRetentionDays: 30,
			AutoDeleteDays:    60,
		},
	}

	s := cfg.Settings()
	if s.TrackingEnabled {
		t.Error("expected tracking disabled")
	}
	if s.FocusDurationMinutes != 45 || s.BreakDurationMinutes != 10 {
		t.Errorf("focus durations = %d/%d, want 45/10", s.FocusDurationMinutes, s.BreakDurationMinutes)
	}
	if !s.AutoStartBreaks || !s.AutoStartSessions {
		t.Error("expected auto-start flags carried over")
	}
	if s.DataRetentionDays != 30 || s.AutoDeleteDays != 60 {
		t.Errorf("retention = %d/%d, want 30/60", s.DataRetentionDays, s.AutoDeleteDays)
	}
}

func TestDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/webtime-test"}
	want := filepath.Join("/tmp/webtime-test", DefaultDBName)
	if got := cfg.DBPath(); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}
