package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"pricebook/pricelist"
)

// ErrSnapshotNotFound is returned when no snapshot matches the request.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DBConfig tunes the SQLite connection pool.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PriceDB stores parsed price-list snapshots in SQLite. A snapshot is one
// successful upload: its metadata row plus every item the scan produced, in
// scan order.
type PriceDB struct {
	conn *sql.DB
}

// Snapshot is one persisted price-list version.
type Snapshot struct {
	ID        int64            `json:"id"`
	UUID      string           `json:"uuid"`
	FileName  string           `json:"file_name"`
	FileDate  string           `json:"file_date"`
	ItemCount int              `json:"item_count"`
	CreatedAt time.Time        `json:"created_at"`
	Items     []pricelist.Item `json:"items,omitempty"`
}

// IsStale reports whether the snapshot is more than one month old at the
// given time.
func (s *Snapshot) IsStale(now time.Time) bool {
	return s.CreatedAt.Before(now.AddDate(0, -1, 0))
}

// NewPriceDB opens (or creates) the snapshot database at dbPath.
func NewPriceDB(dbPath string) (*PriceDB, error) {
	return NewPriceDBWithConfig(dbPath, DBConfig{})
}

// isInMemoryPath reports whether dbPath refers to an in-memory SQLite.
func isInMemoryPath(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	if strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory") {
		return true
	}
	return false
}

// priceDSN appends the foreign-keys option so ON DELETE CASCADE holds on
// every pooled connection, not just the one that ran a PRAGMA.
func priceDSN(dbPath string) string {
	if strings.Contains(dbPath, "?") {
		return dbPath + "&_foreign_keys=on"
	}
	return dbPath + "?_foreign_keys=on"
}

// NewPriceDBWithConfig opens the snapshot database with explicit pool
// settings.
func NewPriceDBWithConfig(dbPath string, config DBConfig) (*PriceDB, error) {
	// In-memory SQLite needs exactly one connection: every further pool
	// connection would see its own empty database without the schema.
	if isInMemoryPath(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	conn, err := sql.Open("sqlite3", priceDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open price database: %w", err)
	}

	// SQLite handles many concurrent connections poorly; keep the pool
	// small to avoid lock contention.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping price database: %w", err)
	}

	// WAL lets readers proceed while an upload is being written. Not
	// critical, so a failure only logs.
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Printf("[PriceDB] Warning: Failed to enable WAL mode: %v", err)
	}

	if err := InitPriceSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize price schema: %w", err)
	}

	return &PriceDB{conn: conn}, nil
}

// Close closes the underlying connection pool.
func (db *PriceDB) Close() error {
	return db.conn.Close()
}

// Ping verifies the database is reachable.
func (db *PriceDB) Ping() error {
	return db.conn.Ping()
}

// GetDB exposes the raw connection for migrations and tests.
func (db *PriceDB) GetDB() *sql.DB {
	return db.conn
}

// SaveSnapshot persists a snapshot and its items in one transaction. The
// snapshot's ID, UUID, ItemCount and CreatedAt are filled in; an empty UUID
// gets a fresh one. Item order is preserved exactly as scanned.
func (db *PriceDB) SaveSnapshot(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	if snap.UUID == "" {
		snap.UUID = uuid.NewString()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	snap.CreatedAt = snap.CreatedAt.UTC().Truncate(time.Second)
	snap.ItemCount = len(snap.Items)

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO price_snapshots (uuid, file_name, file_date, item_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.UUID, snap.FileName, snap.FileDate, snap.ItemCount, snap.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	snapshotID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read snapshot id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO price_items (snapshot_id, country, name, price, price_group, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range snap.Items {
		if _, err := stmt.Exec(snapshotID, item.Country, item.Name, item.Price, item.PriceGroup, i); err != nil {
			return fmt.Errorf("failed to insert item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	snap.ID = snapshotID
	return nil
}

// GetLatestSnapshot returns the most recent snapshot with its items, or
// ErrSnapshotNotFound when nothing has been uploaded yet.
func (db *PriceDB) GetLatestSnapshot() (*Snapshot, error) {
	return db.getSnapshot(`
		SELECT id, uuid, file_name, file_date, item_count, created_at
		FROM price_snapshots
		ORDER BY id DESC
		LIMIT 1
	`)
}

// GetSnapshotByUUID returns one snapshot with its items.
func (db *PriceDB) GetSnapshotByUUID(snapshotUUID string) (*Snapshot, error) {
	return db.getSnapshot(`
		SELECT id, uuid, file_name, file_date, item_count, created_at
		FROM price_snapshots
		WHERE uuid = ?
	`, snapshotUUID)
}

func (db *PriceDB) getSnapshot(query string, args ...interface{}) (*Snapshot, error) {
	var (
		snap      Snapshot
		createdAt string
	)
	err := db.conn.QueryRow(query, args...).Scan(
		&snap.ID, &snap.UUID, &snap.FileName, &snap.FileDate, &snap.ItemCount, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	snap.CreatedAt = parseSnapshotTime(createdAt)

	items, err := db.GetSnapshotItems(snap.ID)
	if err != nil {
		return nil, err
	}
	snap.Items = items
	return &snap, nil
}

// GetSnapshotItems returns a snapshot's items in scan order.
func (db *PriceDB) GetSnapshotItems(snapshotID int64) ([]pricelist.Item, error) {
	rows, err := db.conn.Query(`
		SELECT country, name, price, price_group
		FROM price_items
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot items: %w", err)
	}
	defer rows.Close()

	var items []pricelist.Item
	for rows.Next() {
		var item pricelist.Item
		if err := rows.Scan(&item.Country, &item.Name, &item.Price, &item.PriceGroup); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot items: %w", err)
	}
	return items, nil
}

// GroupCount is the number of items in one price group of a snapshot.
type GroupCount struct {
	PriceGroup string `json:"price_group"`
	ItemCount  int    `json:"item_count"`
}

// GetSnapshotGroups returns per-group item counts for a snapshot, groups
// ordered by where they first appear in the scan.
func (db *PriceDB) GetSnapshotGroups(snapshotID int64) ([]GroupCount, error) {
	rows, err := db.conn.Query(`
		SELECT price_group, COUNT(*)
		FROM price_items
		WHERE snapshot_id = ?
		GROUP BY price_group
		ORDER BY MIN(position)
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot groups: %w", err)
	}
	defer rows.Close()

	var groups []GroupCount
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.PriceGroup, &g.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot groups: %w", err)
	}
	return groups, nil
}

// ListSnapshots returns snapshot metadata, newest first, without items.
// A limit of 0 or less returns everything.
func (db *PriceDB) ListSnapshots(limit int) ([]Snapshot, error) {
	query := `
		SELECT id, uuid, file_name, file_date, item_count, created_at
		FROM price_snapshots
		ORDER BY id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var (
			snap      Snapshot
			createdAt string
		)
		if err := rows.Scan(&snap.ID, &snap.UUID, &snap.FileName, &snap.FileDate, &snap.ItemCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snap.CreatedAt = parseSnapshotTime(createdAt)
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return snaps, nil
}

// DeleteSnapshotByUUID removes a snapshot and, via cascade, its items.
func (db *PriceDB) DeleteSnapshotByUUID(snapshotUUID string) error {
	res, err := db.conn.Exec(`DELETE FROM price_snapshots WHERE uuid = ?`, snapshotUUID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// PurgeStaleSnapshots deletes every snapshot created before cutoff and
// reports how many were removed.
func (db *PriceDB) PurgeStaleSnapshots(cutoff time.Time) (int64, error) {
	res, err := db.conn.Exec(`
		DELETE FROM price_snapshots WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale snapshots: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read purge result: %w", err)
	}
	return affected, nil
}

// parseSnapshotTime reads the stored RFC3339 timestamp, falling back to the
// zero time for anything unreadable.
func parseSnapshotTime(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return ts
}
