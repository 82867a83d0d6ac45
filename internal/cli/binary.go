// Binary lattice operation commands: join, meet, symdiff.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/pkg/powerset"
)

func newJoinCmd() *cobra.Command {
	return newBinaryCmd(
		"join A B",
		"Print the join (union) of two sets",
		powerset.Set.Join,
	)
}

func newMeetCmd() *cobra.Command {
	return newBinaryCmd(
		"meet A B",
		"Print the meet (intersection) of two sets",
		powerset.Set.Meet,
	)
}

func newSymDiffCmd() *cobra.Command {
	return newBinaryCmd(
		"symdiff A B",
		"Print the symmetric difference of two sets",
		powerset.Set.SymDiff,
	)
}

// newBinaryCmd builds a command that parses two set literals, applies op,
// and prints the result.
func newBinaryCmd(use, short string, op func(a, b powerset.Set) powerset.Set) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
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
			return renderSet(cmd, op(a, b), jsonOut)
		},
	}
}
