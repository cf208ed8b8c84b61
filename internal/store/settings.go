package store

import (
	"database/sql"
	"fmt"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// GetSettings returns the settings singleton, falling back to defaults when
// none have been saved yet.
func (db *DB) GetSettings() (tracker.Settings, error) {
	row := db.conn.QueryRow(
		`SELECT tracking_enabled, focus_duration_minutes, break_duration_minutes,
		        auto_start_breaks, auto_start_sessions, data_retention_days, auto_delete_days
		 FROM settings WHERE id = 1`)

	var s tracker.Settings
	err := row.Scan(&s.TrackingEnabled, &s.FocusDurationMinutes, &s.BreakDurationMinutes,
		&s.AutoStartBreaks, &s.AutoStartSessions, &s.DataRetentionDays, &s.AutoDeleteDays)
	if err == sql.ErrNoRows {
		return tracker.DefaultSettings(), nil
	}
	if err != nil {
		return tracker.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}

// SeedSettings writes the settings singleton only if none has been saved
// yet. Settings changed through the CLI or API survive later seeds.
func (db *DB) SeedSettings(s tracker.Settings) error {
	_, err := db.conn.Exec(
		`INSERT OR IGNORE INTO settings
		   (id, tracking_enabled, focus_duration_minutes, break_duration_minutes,
		    auto_start_breaks, auto_start_sessions, data_retention_days, auto_delete_days)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		s.TrackingEnabled, s.FocusDurationMinutes, s.BreakDurationMinutes,
		s.AutoStartBreaks, s.AutoStartSessions, s.DataRetentionDays, s.AutoDeleteDays,
	)
	return err
}

// SaveSettings writes the settings singleton.
func (db *DB) SaveSettings(s tracker.Settings) error {
	_, err := db.conn.Exec(
		`INSERT INTO settings (id, tracking_enabled, focus_duration_minutes, break_duration_minutes,
		                       auto_start_breaks, auto_start_sessions, data_retention_days, auto_delete_days)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   tracking_enabled = excluded.tracking_enabled,
		   focus_duration_minutes = excluded.focus_duration_minutes,
		   break_duration_minutes = excluded.break_duration_minutes,
		   auto_start_breaks = excluded.auto_start_breaks,
		   auto_start_sessions = excluded.auto_start_sessions,
		   data_retention_days = excluded.data_retention_days,
		   auto_delete_days = excluded.auto_delete_days`,
		s.TrackingEnabled, s.FocusDurationMinutes, s.BreakDurationMinutes,
		s.AutoStartBreaks, s.AutoStartSessions, s.DataRetentionDays, s.AutoDeleteDays,
	)
	return err
}

// UpdateSettings applies a validated partial update to the settings
// singleton and returns the merged result.
func (db *DB) UpdateSettings(patch tracker.SettingsPatch) (tracker.Settings, error) {
	current, err := db.GetSettings()
	if err != nil {
		return tracker.Settings{}, err
	}

	merged, err := current.Apply(patch)
	if err != nil {
		return tracker.Settings{}, err
	}

	if err := db.SaveSettings(merged); err != nil {
		return tracker.Settings{}, err
	}
	return merged, nil
}
