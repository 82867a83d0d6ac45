// Package main provides the setcalc CLI, a powerset calculator that
// exercises the algebra capability interfaces end to end.
package main

import "github.com/mesh-intelligence/lattices/internal/cli"

func main() {
	cli.Execute()
}
