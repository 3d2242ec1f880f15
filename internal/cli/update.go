package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/pkg/types"
)

func newUpdateCmd(flags *rootFlags) *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "update <id> <name> <birth-year>",
		Short: "Replace an actor's name, birth year and country",
		Long: `Update overwrites the data fields of an existing actor. The id is kept.
Omitting --country clears the country.

Example:
  actors update 1 "Mowgli" 2000 --country Denmark`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			year, err := parseBirthYear(args[2])
			if err != nil {
				return err
			}
			data, err := types.NewActor(0, args[1], year, country)
			if err != nil {
				return userError(err)
			}
			return withRepository(cmd, flags, true, func(repo *memory.Repository) error {
				updated, ok, err := repo.Update(id, data)
				if err != nil {
					return userError(err)
				}
				if !ok {
					return userError(fmt.Errorf("actor %d not found", id))
				}
				return printActor(cmd.OutOrStdout(), flags.jsonMode, updated)
			})
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "country (optional)")
	return cmd
}
