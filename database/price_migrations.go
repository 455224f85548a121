package database

import (
	"database/sql"
	"fmt"
)

// InitPriceSchema creates the snapshot tables. created_at is stored as an
// RFC3339 UTC string so timestamps compare lexicographically in SQL.
func InitPriceSchema(db *sql.DB) error {
	createSnapshotsTable := `
	CREATE TABLE IF NOT EXISTS price_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		file_name TEXT NOT NULL,
		file_date TEXT NOT NULL,
		item_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`

	createItemsTable := `
	CREATE TABLE IF NOT EXISTS price_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		snapshot_id INTEGER NOT NULL REFERENCES price_snapshots(id) ON DELETE CASCADE,
		country TEXT NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		price_group TEXT NOT NULL,
		position INTEGER NOT NULL
	)`

	if _, err := db.Exec(createSnapshotsTable); err != nil {
		return fmt.Errorf("failed to create price_snapshots table: %w", err)
	}
	if _, err := db.Exec(createItemsTable); err != nil {
		return fmt.Errorf("failed to create price_items table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_price_items_snapshot ON price_items(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_price_snapshots_created ON price_snapshots(created_at)`,
	}
	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
