package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS visits (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			domain           TEXT NOT NULL,
			url              TEXT NOT NULL,
			title            TEXT,
			category         TEXT NOT NULL DEFAULT 'Uncategorized',
			start_time       TEXT NOT NULL,
			end_time         TEXT,
			duration_seconds INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS focus_sessions (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time       TEXT NOT NULL,
			end_time         TEXT,
			duration_minutes INTEGER NOT NULL,
			completed        BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS blocked_websites (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			domain TEXT NOT NULL UNIQUE
		)`,

		// Single-row settings table.
		`CREATE TABLE IF NOT EXISTS settings (
			id                     INTEGER PRIMARY KEY CHECK (id = 1),
			tracking_enabled       BOOLEAN NOT NULL,
			focus_duration_minutes INTEGER NOT NULL,
			break_duration_minutes INTEGER NOT NULL,
			auto_start_breaks      BOOLEAN NOT NULL,
			auto_start_sessions    BOOLEAN NOT NULL,
			data_retention_days    INTEGER NOT NULL,
			auto_delete_days       INTEGER NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_visits_start ON visits(start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_domain ON visits(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_focus_sessions_start ON focus_sessions(start_time)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
