package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// InsertFocusSession stores a session record and fills in its assigned id.
func (db *DB) InsertFocusSession(s *tracker.FocusSession) error {
	var endTime any
	if s.EndTime != nil {
		endTime = formatTime(*s.EndTime)
	}

	result, err := db.conn.Exec(
		`INSERT INTO focus_sessions (start_time, end_time, duration_minutes, completed)
		 VALUES (?, ?, ?, ?)`,
		formatTime(s.StartTime), endTime, s.DurationMinutes, s.Completed,
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}

	s.ID, err = result.LastInsertId()
	return err
}

// CloseActiveFocusSession terminates the open session, if any. At most one
// session has a null end time, so the update targets it directly. Reports
// whether an open session was found.
func (db *DB) CloseActiveFocusSession(endTime time.Time, completed bool) (bool, error) {
	result, err := db.conn.Exec(
		"UPDATE focus_sessions SET end_time = ?, completed = ? WHERE end_time IS NULL",
		formatTime(endTime), completed,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// GetActiveFocusSession returns the open session, or nil when idle.
func (db *DB) GetActiveFocusSession() (*tracker.FocusSession, error) {
	row := db.conn.QueryRow(
		`SELECT id, start_time, end_time, duration_minutes, completed
		 FROM focus_sessions WHERE end_time IS NULL ORDER BY id DESC LIMIT 1`)

	s, err := scanFocusSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListFocusSessions returns all sessions ordered by start time ascending.
func (db *DB) ListFocusSessions() ([]tracker.FocusSession, error) {
	rows, err := db.conn.Query(
		`SELECT id, start_time, end_time, duration_minutes, completed
		 FROM focus_sessions ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []tracker.FocusSession
	for rows.Next() {
		s, err := scanFocusSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func scanFocusSession(scan func(...any) error) (tracker.FocusSession, error) {
	var s tracker.FocusSession
	var startTime string
	var endTime sql.NullString

	err := scan(&s.ID, &startTime, &endTime, &s.DurationMinutes, &s.Completed)
	if err != nil {
		return s, err
	}

	s.StartTime = parseTime(startTime)
	if endTime.Valid {
		t := parseTime(endTime.String)
		s.EndTime = &t
	}
	return s, nil
}
