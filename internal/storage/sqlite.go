package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/actors/pkg/types"
)

const sqliteFile = "actors.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS actors (
    id         INTEGER PRIMARY KEY,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    birth_year INTEGER NOT NULL,
    country    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS sequence (
    name    TEXT PRIMARY KEY,
    next_id INTEGER NOT NULL
);
`

// sequenceName is the key of the actor id counter in the sequence table.
const sequenceName = "actors"

// SQLiteStore keeps snapshots in <data_dir>/actors.db. The position column
// preserves insertion order across saves.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database in dataDir and
// applies the schema.
func NewSQLiteStore(ctx context.Context, dataDir string) (*SQLiteStore, error) {
	dir := dataDirOrDefault(dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return openSQLite(ctx, filepath.Join(dir, sqliteFile))
}

func openSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 30000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy_timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (types.Snapshot, error) {
	snap := types.EmptySnapshot()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, birth_year, country FROM actors ORDER BY position")
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("querying actors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec types.ActorRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.BirthYear, &rec.Country); err != nil {
			return types.Snapshot{}, fmt.Errorf("scanning actor: %w", err)
		}
		snap.Actors = append(snap.Actors, rec)
	}
	if err := rows.Err(); err != nil {
		return types.Snapshot{}, fmt.Errorf("iterating actors: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT next_id FROM sequence WHERE name = ?", sequenceName,
	).Scan(&snap.NextID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return types.Snapshot{}, fmt.Errorf("reading sequence: %w", err)
	}
	return normalize(snap), nil
}

// Save replaces every row inside a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap types.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM actors"); err != nil {
		return fmt.Errorf("clearing actors: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO actors (id, position, name, birth_year, country) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range snap.Actors {
		if _, err := stmt.ExecContext(ctx, rec.ID, i, rec.Name, rec.BirthYear, rec.Country); err != nil {
			return fmt.Errorf("inserting actor %d: %w", rec.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sequence (name, next_id) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET next_id = excluded.next_id",
		sequenceName, snap.NextID)
	if err != nil {
		return fmt.Errorf("writing sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
