// Laws command: run the algebra law checkers over the configured universe.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/pkg/algebra"
	"github.com/mesh-intelligence/lattices/pkg/powerset"
)

// exhaustiveMax is the largest universe checked against its complete
// powerset; beyond it the sample is a fixed pattern family, since the
// triple checks are cubic in the sample size.
const exhaustiveMax = 5

// lawResult is the outcome of one law family check.
type lawResult struct {
	Law    string `json:"law"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func newLawsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "laws",
		Short: "Check the algebraic laws over the configured universe",
		Long: "Laws runs every law checker (equality, lattice, bounds,\n" +
			"distributivity, Boolean algebra, symmetric difference) over a\n" +
			"sample of subsets of the configured universe. Small universes are\n" +
			"checked exhaustively. Exits non-zero if any law is violated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, jsonOut, err := settings()
			if err != nil {
				return err
			}
			sample, err := lawsSample(universe)
			if err != nil {
				return err
			}

			checks := []struct {
				law   string
				check func([]powerset.Set) error
			}{
				{"equality", algebra.CheckEquality[powerset.Set]},
				{"lattice", algebra.CheckLattice[powerset.Set]},
				{"bounds", algebra.CheckBounds[powerset.Set]},
				{"distributivity", algebra.CheckDistributive[powerset.Set]},
				{"boolean-algebra", algebra.CheckBooleanAlgebra[powerset.Set]},
				{"symmetric-difference", algebra.CheckSymmetricDifference[powerset.Set]},
			}

			results := make([]lawResult, 0, len(checks))
			violated := false
			for _, c := range checks {
				r := lawResult{Law: c.law, Status: "ok"}
				if err := c.check(sample); err != nil {
					r.Status = "violated"
					r.Detail = err.Error()
					violated = true
				}
				results = append(results, r)
			}

			if jsonOut {
				if err := renderJSON(cmd, struct {
					Universe   int         `json:"universe"`
					SampleSize int         `json:"sample_size"`
					Results    []lawResult `json:"results"`
				}{universe, len(sample), results}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "universe size %d, sample of %d subsets\n", universe, len(sample))
				for _, r := range results {
					if r.Status == "ok" {
						fmt.Fprintf(out, "%-20s ok\n", r.Law)
					} else {
						fmt.Fprintf(out, "%-20s VIOLATED: %s\n", r.Law, r.Detail)
					}
				}
			}

			if violated {
				os.Exit(exitViolation)
			}
			return nil
		},
	}
}

// lawsSample builds the value sample for a universe: the complete
// powerset when small enough, otherwise the empty set, the full universe,
// every singleton, and an alternating pattern.
func lawsSample(universe int) ([]powerset.Set, error) {
	empty, err := powerset.New(universe)
	if err != nil {
		return nil, err
	}

	if universe <= exhaustiveMax {
		sample := make([]powerset.Set, 0, 1<<universe)
		for mask := 0; mask < 1<<universe; mask++ {
			var members []int
			for i := 0; i < universe; i++ {
				if mask&(1<<i) != 0 {
					members = append(members, i)
				}
			}
			s, err := powerset.New(universe, members...)
			if err != nil {
				return nil, err
			}
			sample = append(sample, s)
		}
		return sample, nil
	}

	sample := []powerset.Set{empty, empty.Supremum()}
	var odds []int
	for i := 0; i < universe; i++ {
		s, err := powerset.New(universe, i)
		if err != nil {
			return nil, err
		}
		sample = append(sample, s)
		if i%2 == 1 {
			odds = append(odds, i)
		}
	}
	alternating, err := powerset.New(universe, odds...)
	if err != nil {
		return nil, err
	}
	return append(sample, alternating), nil
}
