package store

import (
	"fmt"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// Export is the full data dump produced by the export endpoint.
type Export struct {
	Visits          []tracker.Visit          `json:"visits"`
	FocusSessions   []tracker.FocusSession   `json:"focus_sessions"`
	BlockedWebsites []tracker.BlockedWebsite `json:"blocked_websites"`
	Settings        tracker.Settings         `json:"settings"`
}

// ExportAll gathers every collection plus the settings into one document.
func (db *DB) ExportAll() (*Export, error) {
	visits, err := db.ListVisits()
	if err != nil {
		return nil, fmt.Errorf("exporting visits: %w", err)
	}
	sessions, err := db.ListFocusSessions()
	if err != nil {
		return nil, fmt.Errorf("exporting focus sessions: %w", err)
	}
	websites, err := db.ListBlockedWebsites()
	if err != nil {
		return nil, fmt.Errorf("exporting blocked websites: %w", err)
	}
	settings, err := db.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("exporting settings: %w", err)
	}

	return &Export{
		Visits:          visits,
		FocusSessions:   sessions,
		BlockedWebsites: websites,
		Settings:        settings,
	}, nil
}

// ClearAll deletes every visit, session, and blocklist entry, and resets
// settings to defaults.
func (db *DB) ClearAll() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"visits", "focus_sessions", "blocked_websites", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return db.SaveSettings(tracker.DefaultSettings())
}
