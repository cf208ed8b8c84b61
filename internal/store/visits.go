package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// InsertVisit stores a visit and fills in its assigned id. Callers are
// expected to have filtered sub-second visits already.
func (db *DB) InsertVisit(v *tracker.Visit) error {
	var endTime any
	if v.EndTime != nil {
		endTime = formatTime(*v.EndTime)
	}

	result, err := db.conn.Exec(
		`INSERT INTO visits (domain, url, title, category, start_time, end_time, duration_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.Domain, v.URL, v.Title, v.Category, formatTime(v.StartTime), endTime, v.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("inserting visit: %w", err)
	}

	v.ID, err = result.LastInsertId()
	return err
}

// CloseVisit sets a visit's end time and duration. Duration is derived from
// the stored start time so the duration invariant holds.
func (db *DB) CloseVisit(id int64, endTime time.Time) error {
	v, err := db.GetVisit(id)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("closing visit %d: not found", id)
	}

	duration := int64(endTime.Sub(v.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	_, err = db.conn.Exec(
		"UPDATE visits SET end_time = ?, duration_seconds = ? WHERE id = ?",
		formatTime(endTime), duration, id,
	)
	return err
}

// GetVisit returns a visit by id, or nil when absent.
func (db *DB) GetVisit(id int64) (*tracker.Visit, error) {
	row := db.conn.QueryRow(
		`SELECT id, domain, url, title, category, start_time, end_time, duration_seconds
		 FROM visits WHERE id = ?`, id)

	v, err := scanVisit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVisits returns all visits ordered by start time ascending.
func (db *DB) ListVisits() ([]tracker.Visit, error) {
	return db.queryVisits(
		`SELECT id, domain, url, title, category, start_time, end_time, duration_seconds
		 FROM visits ORDER BY start_time`)
}

// ListVisitsSince returns visits starting at or after the cutoff, ordered by
// start time ascending.
func (db *DB) ListVisitsSince(cutoff time.Time) ([]tracker.Visit, error) {
	return db.queryVisits(
		`SELECT id, domain, url, title, category, start_time, end_time, duration_seconds
		 FROM visits WHERE start_time >= ? ORDER BY start_time`,
		formatTime(cutoff))
}

// DeleteVisitsBefore evicts visits older than the cutoff and returns the
// number removed. Used by the retention window.
func (db *DB) DeleteVisitsBefore(cutoff time.Time) (int64, error) {
	result, err := db.conn.Exec("DELETE FROM visits WHERE start_time < ?", formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (db *DB) queryVisits(query string, args ...any) ([]tracker.Visit, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []tracker.Visit
	for rows.Next() {
		v, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func scanVisit(scan func(...any) error) (tracker.Visit, error) {
	var v tracker.Visit
	var title, endTime sql.NullString
	var startTime string

	err := scan(&v.ID, &v.Domain, &v.URL, &title, &v.Category, &startTime, &endTime, &v.DurationSeconds)
	if err != nil {
		return v, err
	}

	v.Title = title.String
	v.StartTime = parseTime(startTime)
	if endTime.Valid {
		t := parseTime(endTime.String)
		v.EndTime = &t
	}
	return v, nil
}
