package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/pkg/lattices"
)

const modulePath = "github.com/mesh-intelligence/lattices"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the setcalc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "setcalc v%s\nmodule: %s\n", lattices.Version, modulePath)
			return nil
		},
	}
}
