package algebra

// Set is the root capability: values of the conforming type support an
// equality comparison. Equality must be reflexive, symmetric, and
// transitive over the type's valid value space. Every other capability in
// this package requires Set.
//
// There is no separate declaration step: any type whose Equal method has
// this shape satisfies Set structurally.
type Set[T any] interface {
	// Equal reports whether the receiver and other are the same element.
	Equal(other T) bool
}

// Poset is a Set whose elements carry a partial order. PartialCompare must
// be consistent with Equal: it returns Equal exactly when Equal reports
// true.
type Poset[T any] interface {
	Set[T]

	// PartialCompare relates the receiver to other under the partial
	// order, returning Incomparable when neither element is below the
	// other.
	PartialCompare(other T) Ordering
}

// TotallyOrdered is a Set whose elements carry a total order. The separate
// method keeps total and partial order distinct under Go's structural
// typing: a Poset alone never satisfies TotallyOrdered.
type TotallyOrdered[T any] interface {
	Set[T]

	// Compare returns a negative value when the receiver sorts before
	// other, zero when they are equal, and a positive value otherwise.
	// Unlike PartialCompare it is defined for every pair of elements.
	Compare(other T) int
}

// LowerBounded is a Poset with a distinguished least element (bottom, ⊥).
//
// The conforming type guarantees Infimum() ≤ x for every valid x. The
// result must not depend on the receiver's element value; the receiver
// exists only because Go methods require one (and, for types whose value
// space is parameterized, to carry the parameter). Violating the bound is
// a logic error the interface cannot detect.
type LowerBounded[T any] interface {
	Poset[T]

	// Infimum returns the canonical least element.
	Infimum() T
}

// UpperBounded is a Poset with a distinguished greatest element (top, ⊤),
// satisfying x ≤ Supremum() for every valid x. The same receiver caveats
// as LowerBounded apply.
type UpperBounded[T any] interface {
	Poset[T]

	// Supremum returns the canonical greatest element.
	Supremum() T
}

// SymmetricDifference is a Set with a symmetric-difference operation,
// A Δ B: the elements belonging to exactly one of A and B.
//
// Required laws, verified by the conforming type's tests:
//   - commutative: a Δ b = b Δ a
//   - associative: (a Δ b) Δ c = a Δ (b Δ c)
//   - identity, when the type is also LowerBounded: a Δ ⊥ = a
//   - self-inverse, likewise: a Δ a = ⊥
//
// No relationship to Join or Meet is mandated, though for powerset-like
// types a Δ b = (a ∨ b) ∧ ¬(a ∧ b) typically holds.
type SymmetricDifference[T any] interface {
	Set[T]

	// SymDiff returns the symmetric difference of the receiver and other.
	SymDiff(other T) T
}
