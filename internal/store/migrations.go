package store

import (
	"database/sql"
	"fmt"

	"practicejournal/internal/logging"
)

// migration adds a column that older databases lack.
type migration struct {
	Table  string
	Column string
	Def    string
}

// pendingMigrations lists columns added after the first schema.
var pendingMigrations = []migration{
	{"runs", "output_bytes", "INTEGER NOT NULL DEFAULT 0"},
}

// runMigrations applies missing columns. Missing tables are skipped.
func runMigrations(db *sql.DB) error {
	applied := 0
	for _, m := range pendingMigrations {
		if !tableExists(db, m.Table) {
			logging.StoreDebug("Table missing, skipping migration: %s.%s", m.Table, m.Column)
			continue
		}
		if columnExists(db, m.Table, m.Column) {
			continue
		}
		query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migrate %s.%s: %w", m.Table, m.Column, err)
		}
		logging.Store("Migration applied: added %s.%s", m.Table, m.Column)
		applied++
	}
	logging.StoreDebug("Schema migrations complete: applied=%d", applied)
	return nil
}

// columnExists checks PRAGMA table_info for column.
func columnExists(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		logging.StoreDebug("PRAGMA table_info(%s) failed: %v", table, err)
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid, notnull, pk int
			name, ctype      string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

func tableExists(db *sql.DB, table string) bool {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
	return err == nil && count > 0
}
