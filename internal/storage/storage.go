// Package storage persists repository snapshots. A Store saves and loads the
// whole state of a repository at once; the repository itself stays purely
// in memory between those calls.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/actors/pkg/types"
)

// Store loads and saves repository snapshots.
type Store interface {
	// Load returns the saved snapshot, or types.EmptySnapshot when nothing
	// has been saved yet.
	Load(ctx context.Context) (types.Snapshot, error)

	// Save replaces the saved state with snap.
	Save(ctx context.Context, snap types.Snapshot) error

	// Close releases backend resources.
	Close() error
}

// Open validates cfg and opens the store for cfg.Backend.
func Open(ctx context.Context, cfg types.Config, log zerolog.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case types.BackendJSONL:
		s, err = NewJSONLStore(cfg.DataDir)
	case types.BackendSQLite:
		s, err = NewSQLiteStore(ctx, cfg.DataDir)
	case types.BackendPostgres:
		s, err = NewPostgresStore(ctx, cfg.DSN)
	default:
		return nil, types.ErrBackendUnknown
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}

	log.Debug().Str("backend", cfg.Backend).Str("data_dir", cfg.DataDir).Msg("store opened")
	return s, nil
}

// dataDirOrDefault returns dir, or "." when dir is empty.
func dataDirOrDefault(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// normalize makes a loaded snapshot safe to restore: a nil slice becomes
// empty and NextID is at least 1.
func normalize(snap types.Snapshot) types.Snapshot {
	if snap.Actors == nil {
		snap.Actors = []types.ActorRecord{}
	}
	if snap.NextID < 1 {
		snap.NextID = 1
	}
	return snap
}
