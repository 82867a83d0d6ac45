// Compare command: subset-order relation between two sets.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print the subset-order relation between two sets",
		Long: "Compare relates two sets under the subset order, printing one of\n" +
			"less, equal, greater, or incomparable. Two sets are incomparable\n" +
			"exactly when neither is a subset of the other.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, jsonOut, err := settings()
			if err != nil {
				return err
			}
			a, err := parseSet(args[0], universe)
			if err != nil {
				return err
			}
			b, err := parseSet(args[1], universe)
			if err != nil {
				return err
			}

			rel := a.PartialCompare(b)
			if jsonOut {
				return renderJSON(cmd, struct {
					A        setJSON `json:"a"`
					B        setJSON `json:"b"`
					Relation string  `json:"relation"`
				}{toSetJSON(a), toSetJSON(b), rel.String()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}
}
