package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/pkg/types"
)

// seedActors is the reference data set loaded by the seed command.
var seedActors = []types.ActorRecord{
	{Name: "Tom Hanks", BirthYear: 1956, Country: "USA"},
	{Name: "Meryl Streep", BirthYear: 1949, Country: "USA"},
	{Name: "Idris Elba", BirthYear: 1972, Country: "UK"},
	{Name: "Cate Blanchett", BirthYear: 1969, Country: "Australia"},
	{Name: "Joaquin Phoenix", BirthYear: 1974, Country: "USA"},
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the five reference actors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, flags, true, func(repo *memory.Repository) error {
				added := make([]*types.Actor, 0, len(seedActors))
				for _, rec := range seedActors {
					a, err := types.ActorFromRecord(rec)
					if err != nil {
						return sysError(err)
					}
					if _, err := repo.Add(a); err != nil {
						return sysError(err)
					}
					added = append(added, a)
				}
				return printActors(cmd.OutOrStdout(), flags.jsonMode, added)
			})
		},
	}
}
