package store

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

// InsertBlockedWebsite stores a normalized blocklist entry. An input that
// normalizes to nothing fails with focus.ErrInvalidDomain; a duplicate
// normalized domain fails with focus.ErrDuplicateDomain.
func (db *DB) InsertBlockedWebsite(domain string) (tracker.BlockedWebsite, error) {
	normalized := tracker.NormalizeDomain(domain)
	if normalized == "" {
		return tracker.BlockedWebsite{}, focus.ErrInvalidDomain
	}

	result, err := db.conn.Exec(
		"INSERT INTO blocked_websites (domain) VALUES (?)", normalized)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return tracker.BlockedWebsite{}, focus.ErrDuplicateDomain
		}
		return tracker.BlockedWebsite{}, fmt.Errorf("inserting blocked website: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return tracker.BlockedWebsite{}, err
	}
	return tracker.BlockedWebsite{ID: id, Domain: normalized}, nil
}

// DeleteBlockedWebsite removes the entry with the given normalized domain,
// reporting whether it was present.
func (db *DB) DeleteBlockedWebsite(domain string) (bool, error) {
	result, err := db.conn.Exec(
		"DELETE FROM blocked_websites WHERE domain = ?", tracker.NormalizeDomain(domain))
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// ListBlockedWebsites returns all blocklist entries in insertion order.
func (db *DB) ListBlockedWebsites() ([]tracker.BlockedWebsite, error) {
	rows, err := db.conn.Query("SELECT id, domain FROM blocked_websites ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var websites []tracker.BlockedWebsite
	for rows.Next() {
		var w tracker.BlockedWebsite
		if err := rows.Scan(&w.ID, &w.Domain); err != nil {
			return nil, err
		}
		websites = append(websites, w)
	}
	return websites, rows.Err()
}
