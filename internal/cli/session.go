package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/logging"
	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/internal/paths"
	"github.com/mesh-intelligence/actors/internal/storage"
	"github.com/mesh-intelligence/actors/pkg/types"
)

// session is an opened store plus the repository restored from it.
type session struct {
	cfg   types.Config
	store storage.Store
	repo  *memory.Repository
	log   zerolog.Logger
}

// resolveConfig turns flags and config.yaml into a store Config and logger.
func resolveConfig(flags *rootFlags) (types.Config, zerolog.Logger, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, zerolog.Nop(), fmt.Errorf("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return types.Config{}, zerolog.Nop(), err
	}
	if flags.logLevel != "" {
		s.Log.Level = flags.logLevel
	}
	log, err := logging.New(s.Log)
	if err != nil {
		return types.Config{}, zerolog.Nop(), fmt.Errorf("configure logging: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, s.DataDir)
	if err != nil {
		return types.Config{}, zerolog.Nop(), fmt.Errorf("resolve data dir: %w", err)
	}
	cfg := types.Config{Backend: s.Backend, DataDir: dataDir, DSN: s.DSN}
	return cfg, log.With().Str("config_dir", configDir).Logger(), nil
}

// openSession opens the configured store and restores the repository.
// The caller must call close.
func openSession(ctx context.Context, flags *rootFlags) (*session, error) {
	cfg, log, err := resolveConfig(flags)
	if err != nil {
		return nil, sysError(err)
	}
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, sysError(err)
	}
	snap, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, sysError(fmt.Errorf("load snapshot: %w", err))
	}
	repo, err := memory.Restore(snap, memory.WithLogger(log))
	if err != nil {
		store.Close()
		return nil, sysError(fmt.Errorf("restore repository: %w", err))
	}
	log.Debug().Int("actors", repo.Len()).Msg("snapshot loaded")
	return &session{cfg: cfg, store: store, repo: repo, log: log}, nil
}

func (s *session) save(ctx context.Context) error {
	snap := s.repo.Snapshot()
	if err := s.store.Save(ctx, snap); err != nil {
		return sysError(fmt.Errorf("save snapshot: %w", err))
	}
	s.log.Debug().Int("actors", len(snap.Actors)).Int("next_id", snap.NextID).Msg("snapshot saved")
	return nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing store")
	}
}

// withRepository runs fn against the restored repository. When mutates is
// true and fn succeeds, the new snapshot is saved.
func withRepository(cmd *cobra.Command, flags *rootFlags, mutates bool, fn func(repo *memory.Repository) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, flags)
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(s.repo); err != nil {
		return err
	}
	if !mutates {
		return nil
	}
	return s.save(ctx)
}
