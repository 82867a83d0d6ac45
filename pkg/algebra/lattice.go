package algebra

// JoinSemiLattice is a Poset in which any two elements have a least upper
// bound (join, ∨).
//
// For all a, b, c of the conforming type:
//   - a ≤ a ∨ b and b ≤ a ∨ b (upper bound)
//   - if a ≤ c and b ≤ c then a ∨ b ≤ c (least such upper bound)
//
// which entails commutativity, associativity, and idempotence. Join must
// be defined for incomparable pairs too; callers never need to establish
// comparability first.
type JoinSemiLattice[T any] interface {
	Poset[T]

	// Join returns the least upper bound of the receiver and other.
	Join(other T) T
}

// MeetSemiLattice is a Poset in which any two elements have a greatest
// lower bound (meet, ∧), the order dual of JoinSemiLattice.
type MeetSemiLattice[T any] interface {
	Poset[T]

	// Meet returns the greatest lower bound of the receiver and other.
	Meet(other T) T
}

// Lattice is a structure that is both a join- and meet-semi-lattice. It
// adds no operations, only the combined guarantee: in particular the
// absorption laws a ∨ (a ∧ b) = a and a ∧ (a ∨ b) = a must hold.
//
// Lattice must never be implemented independently; any type providing
// both Join and Meet satisfies it automatically, so a type cannot claim
// Lattice without actually having both operations.
type Lattice[T any] interface {
	JoinSemiLattice[T]
	MeetSemiLattice[T]
}

// DistributiveLattice is a Lattice whose elements additionally carry a
// total order, standing in for the distributive laws
//
//	a ∨ (b ∧ c) = (a ∨ b) ∧ (a ∨ c)
//	a ∧ (b ∨ c) = (a ∧ b) ∨ (a ∧ c)
//
// Distributivity is not mechanically checkable from the operation
// signatures, so total-order support is used as a structural proxy; like
// Lattice, the capability is granted automatically. Treat it as a hint
// requiring a companion law test (see CheckDistributive), not a
// guarantee.
type DistributiveLattice[T any] interface {
	Lattice[T]
	TotallyOrdered[T]
}

// BooleanAlgebra is a distributive lattice with bounds and a complement.
//
// For every valid a the complement satisfies the excluded-middle and
// non-contradiction laws:
//
//	a ∨ ¬a = ⊤ and a ∧ ¬a = ⊥
//
// The LowerBounded and UpperBounded requirements supply ⊥ and ⊤. Unlike
// the composite capabilities above, Complement is a genuine new operation
// the conforming type must provide.
type BooleanAlgebra[T any] interface {
	DistributiveLattice[T]
	LowerBounded[T]
	UpperBounded[T]

	// Complement returns the logical or set-theoretic complement of the
	// receiver.
	Complement() T
}
