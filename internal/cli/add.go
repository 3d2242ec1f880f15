package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/pkg/types"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "add <name> <birth-year>",
		Short: "Add an actor",
		Long: `Add validates the actor and stores it under the next free id.

Example:
  actors add "Tom Hanks" 1956 --country USA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseBirthYear(args[1])
			if err != nil {
				return err
			}
			actor, err := types.NewActor(0, args[0], year, country)
			if err != nil {
				return userError(err)
			}
			return withRepository(cmd, flags, true, func(repo *memory.Repository) error {
				added, err := repo.Add(actor)
				if err != nil {
					return userError(err)
				}
				return printActor(cmd.OutOrStdout(), flags.jsonMode, added)
			})
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "country (optional)")
	return cmd
}
