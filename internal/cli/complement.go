// Complement command.
package cli

import (
	"github.com/spf13/cobra"
)

func newComplementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complement A",
		Short: "Print the complement of a set within its universe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, jsonOut, err := settings()
			if err != nil {
				return err
			}
			a, err := parseSet(args[0], universe)
			if err != nil {
				return err
			}
			return renderSet(cmd, a.Complement(), jsonOut)
		},
	}
}
