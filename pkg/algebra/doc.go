// Package algebra defines capability interfaces for algebraic structures
// built over equality-comparable value types: partially ordered sets with
// bounds, join/meet semi-lattices, lattices, distributive lattices, Boolean
// algebras, and symmetric difference.
// See docs/ARCHITECTURE.md § Capability Hierarchy.
//
// Each interface is generic over the conforming type itself, so operations
// return values of the concrete type rather than an abstract box:
//
//	type Flags struct{ ... }
//
//	func (f Flags) Equal(other Flags) bool                      { ... }
//	func (f Flags) PartialCompare(other Flags) algebra.Ordering { ... }
//	func (f Flags) Join(other Flags) Flags                      { ... }
//	func (f Flags) Meet(other Flags) Flags                      { ... }
//
//	var _ algebra.Lattice[Flags] = Flags{}
//
// Composite capabilities add no methods of their own: Lattice is satisfied
// by anything providing both Join and Meet, and DistributiveLattice by any
// lattice that additionally carries a total Compare. Go's structural typing
// grants them without any registration step, so a structural claim such as
// "Flags is a Boolean algebra" is a compile-time assertion, not a runtime
// check.
//
// The interfaces document the algebraic laws each operation must satisfy
// but cannot enforce them; a conforming type proves its laws in its own
// test suite, typically with the Check helpers in this package. Every
// operation is pure: nothing here mutates a receiver or an argument, so
// all operations are safe for concurrent use.
package algebra
