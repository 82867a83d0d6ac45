// Package cli implements the setcalc command-line interface, a consumer
// of pkg/algebra and pkg/powerset used to exercise the capability
// interfaces end to end.
// See docs/ARCHITECTURE.md § Demo CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitViolation = 2
)

// defaultUniverse is used when neither flag nor config names a size.
const defaultUniverse = 5

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	universe  int
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "setcalc" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "setcalc",
		Short: "A calculator over bitmask powersets",
		Long: "Setcalc evaluates lattice operations (join, meet, complement,\n" +
			"symmetric difference, subset ordering) over subsets of a fixed\n" +
			"universe, and checks the algebraic laws those operations must obey.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .setcalc)")
	root.PersistentFlags().IntVarP(&flags.universe, "universe", "n", 0, "universe size, 1-64 (default: from config, else 5)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newJoinCmd())
	root.AddCommand(newMeetCmd())
	root.AddCommand(newSymDiffCmd())
	root.AddCommand(newComplementCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newBoundsCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newLawsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// settings resolves the effective universe size and output mode with
// flag > config > default precedence.
func settings() (universe int, jsonOut bool, err error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return 0, false, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return 0, false, fmt.Errorf("load config: %w", err)
	}

	universe = cfg.GetInt(cfgKeyUniverse)
	if flags.universe != 0 {
		universe = flags.universe
	}

	jsonOut = flags.jsonMode || cfg.GetString(cfgKeyOutput) == outputJSON
	return universe, jsonOut, nil
}
