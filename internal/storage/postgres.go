package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mesh-intelligence/actors/pkg/types"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS actors (
    id         BIGINT PRIMARY KEY,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    birth_year INTEGER NOT NULL,
    country    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sequence (
    name    TEXT PRIMARY KEY,
    next_id BIGINT NOT NULL
);
`

// PostgresStore keeps snapshots in a PostgreSQL database reached through a
// pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to dsn, pings the server and ensures the schema.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (types.Snapshot, error) {
	snap := types.EmptySnapshot()

	rows, err := s.pool.Query(ctx,
		"SELECT id, name, birth_year, country FROM actors ORDER BY position")
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("querying actors: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.ActorRecord, error) {
		var rec types.ActorRecord
		err := row.Scan(&rec.ID, &rec.Name, &rec.BirthYear, &rec.Country)
		return rec, err
	})
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("scanning actors: %w", err)
	}
	snap.Actors = append(snap.Actors, records...)

	err = s.pool.QueryRow(ctx,
		"SELECT next_id FROM sequence WHERE name = $1", sequenceName,
	).Scan(&snap.NextID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return types.Snapshot{}, fmt.Errorf("reading sequence: %w", err)
	}
	return normalize(snap), nil
}

// Save replaces every row inside a single transaction.
func (s *PostgresStore) Save(ctx context.Context, snap types.Snapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM actors"); err != nil {
		return fmt.Errorf("clearing actors: %w", err)
	}

	batch := &pgx.Batch{}
	for i, rec := range snap.Actors {
		batch.Queue(
			"INSERT INTO actors (id, position, name, birth_year, country) VALUES ($1, $2, $3, $4, $5)",
			rec.ID, i, rec.Name, rec.BirthYear, rec.Country,
		)
	}
	batch.Queue(
		`INSERT INTO sequence (name, next_id) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET next_id = EXCLUDED.next_id`,
		sequenceName, snap.NextID,
	)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
