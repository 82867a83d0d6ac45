// Bounds command: canonical least and greatest elements of the universe.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/pkg/powerset"
)

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the infimum and supremum of the configured universe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, jsonOut, err := settings()
			if err != nil {
				return err
			}
			empty, err := powerset.New(universe)
			if err != nil {
				return err
			}

			if jsonOut {
				return renderJSON(cmd, struct {
					Universe int     `json:"universe"`
					Infimum  setJSON `json:"infimum"`
					Supremum setJSON `json:"supremum"`
				}{universe, toSetJSON(empty.Infimum()), toSetJSON(empty.Supremum())})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "infimum:  %s\nsupremum: %s\n", empty.Infimum(), empty.Supremum())
			return nil
		},
	}
}
