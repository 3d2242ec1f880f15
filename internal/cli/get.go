package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
)

func newGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an actor by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withRepository(cmd, flags, false, func(repo *memory.Repository) error {
				actor, ok := repo.GetByID(id)
				if !ok {
					return userError(fmt.Errorf("actor %d not found", id))
				}
				return printActor(cmd.OutOrStdout(), flags.jsonMode, actor)
			})
		},
	}
}
