package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/actors/pkg/actors"
)

const modulePath = "github.com/mesh-intelligence/actors"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the actors version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "actors v%s\nmodule: %s\n", actors.Version, modulePath)
			return nil
		},
	}
}
