package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
)

func newDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an actor by id",
		Long:  "Delete removes the actor and prints it. Its id is never reassigned.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withRepository(cmd, flags, true, func(repo *memory.Repository) error {
				deleted, ok := repo.Delete(id)
				if !ok {
					return userError(fmt.Errorf("actor %d not found", id))
				}
				return printActor(cmd.OutOrStdout(), flags.jsonMode, deleted)
			})
		},
	}
}
