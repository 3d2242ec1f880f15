package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/internal/paths"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize actors storage",
		Long:  "Create the configuration directory and config.yaml, then initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	if err := writeConfigIfMissing(configDir, flags.dataDir); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	// Saving the restored snapshot creates the backend files without
	// touching existing state.
	if err := withRepository(cmd, flags, true, func(*memory.Repository) error { return nil }); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Actors repository initialized")
	return nil
}
