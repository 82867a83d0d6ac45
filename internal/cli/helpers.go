// Shared helpers for setcalc commands: set-literal parsing and output
// rendering.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lattices/pkg/powerset"
)

// parseSet parses a set literal into a powerset.Set over the given
// universe. Literals are comma-separated member indices, optionally
// wrapped in braces: "0,2", "{0, 2}", and "{}" are all valid. An empty
// literal is the empty set.
func parseSet(arg string, size int) (powerset.Set, error) {
	body := strings.TrimSpace(arg)
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")
	body = strings.TrimSpace(body)

	var members []int
	if body != "" {
		for _, field := range strings.Split(body, ",") {
			m, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return powerset.Set{}, fmt.Errorf("set literal %q: %w", arg, err)
			}
			members = append(members, m)
		}
	}

	s, err := powerset.New(size, members...)
	if err != nil {
		return powerset.Set{}, fmt.Errorf("set literal %q: %w", arg, err)
	}
	return s, nil
}

// setJSON is the JSON rendering of a powerset.Set.
type setJSON struct {
	Universe int   `json:"universe"`
	Members  []int `json:"members"`
}

func toSetJSON(s powerset.Set) setJSON {
	return setJSON{Universe: s.UniverseSize(), Members: s.Members()}
}

// renderSet prints a set to the command's stdout in the active output mode.
func renderSet(cmd *cobra.Command, s powerset.Set, jsonOut bool) error {
	if !jsonOut {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	return renderJSON(cmd, toSetJSON(s))
}

// renderJSON prints any value as indented JSON to the command's stdout.
func renderJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
