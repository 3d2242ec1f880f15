package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/internal/memory"
	"github.com/mesh-intelligence/actors/pkg/types"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var (
		before int
		after  int
		name   string
		sortBy string
		desc   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actors with optional filters and sorting",
		Long: `List queries the repository. Filters are ANDed together.

--before and --after are exclusive bounds on the birth year. --name keeps
actors whose name contains the value, ignoring case and surrounding spaces.
--sort accepts name or birthyear; any other value sorts by id.

Example:
  actors list
  actors list --before 1970
  actors list --before 1973 --after 1950 --sort name --desc
  actors list --name tom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := types.Query{
				NameContains: name,
				SortBy:       types.ParseSortKey(sortBy),
				Descending:   desc,
			}
			if cmd.Flags().Changed("before") {
				q.BirthYearBefore = types.Year(before)
			}
			if cmd.Flags().Changed("after") {
				q.BirthYearAfter = types.Year(after)
			}
			return withRepository(cmd, flags, false, func(repo *memory.Repository) error {
				return printActors(cmd.OutOrStdout(), flags.jsonMode, repo.Query(q))
			})
		},
	}
	cmd.Flags().IntVar(&before, "before", 0, "keep actors born before this year")
	cmd.Flags().IntVar(&after, "after", 0, "keep actors born after this year")
	cmd.Flags().StringVar(&name, "name", "", "keep actors whose name contains this text")
	cmd.Flags().StringVar(&sortBy, "sort", "id", "sort key: id, name or birthyear")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}
