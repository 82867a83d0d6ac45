// Law checkers for conforming types. The capability interfaces document
// their algebraic laws but cannot enforce them; these helpers verify the
// laws over a caller-supplied sample of values so every conforming type's
// test suite (and the setcalc laws command) runs the same checks.
//
// Checks over pairs are quadratic and over triples cubic in the sample
// size; callers choose samples accordingly. An empty or singleton sample
// vacuously passes the pair and triple checks.
package algebra

import (
	"errors"
	"fmt"
)

// Law violation errors. Checkers wrap these with the offending values.
var (
	ErrNotReflexive       = errors.New("equality is not reflexive")
	ErrNotSymmetric       = errors.New("equality is not symmetric")
	ErrNotTransitive      = errors.New("equality is not transitive")
	ErrNotCommutative     = errors.New("operation is not commutative")
	ErrNotAssociative     = errors.New("operation is not associative")
	ErrNotIdempotent      = errors.New("operation is not idempotent")
	ErrNotUpperBound      = errors.New("join is not an upper bound")
	ErrNotLowerBound      = errors.New("meet is not a lower bound")
	ErrAbsorptionViolated = errors.New("absorption law violated")
	ErrBoundViolated      = errors.New("bound law violated")
	ErrNotDistributive    = errors.New("distributive law violated")
	ErrComplementViolated = errors.New("complement law violated")
	ErrSymDiffViolated    = errors.New("symmetric difference law violated")
)

// CheckEquality verifies that Equal is reflexive, symmetric, and
// transitive over vals.
func CheckEquality[T Set[T]](vals []T) error {
	for _, a := range vals {
		if !a.Equal(a) {
			return fmt.Errorf("%v does not equal itself: %w", a, ErrNotReflexive)
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			if a.Equal(b) != b.Equal(a) {
				return fmt.Errorf("equal(%v, %v) != equal(%v, %v): %w", a, b, b, a, ErrNotSymmetric)
			}
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
					return fmt.Errorf("%v = %v and %v = %v but %v != %v: %w", a, b, b, c, a, c, ErrNotTransitive)
				}
			}
		}
	}
	return nil
}

// CheckJoinSemiLattice verifies that Join is commutative, associative,
// idempotent, and an upper bound of both operands over vals.
func CheckJoinSemiLattice[T JoinSemiLattice[T]](vals []T) error {
	for _, a := range vals {
		if !a.Join(a).Equal(a) {
			return fmt.Errorf("join(%v, %v) != %v: %w", a, a, a, ErrNotIdempotent)
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			j := a.Join(b)
			if !j.Equal(b.Join(a)) {
				return fmt.Errorf("join(%v, %v) != join(%v, %v): %w", a, b, b, a, ErrNotCommutative)
			}
			if !a.PartialCompare(j).AtMost() || !b.PartialCompare(j).AtMost() {
				return fmt.Errorf("join(%v, %v) = %v is not above both operands: %w", a, b, j, ErrNotUpperBound)
			}
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if !a.Join(b).Join(c).Equal(a.Join(b.Join(c))) {
					return fmt.Errorf("join over (%v, %v, %v): %w", a, b, c, ErrNotAssociative)
				}
			}
		}
	}
	return nil
}

// CheckMeetSemiLattice verifies that Meet is commutative, associative,
// idempotent, and a lower bound of both operands over vals.
func CheckMeetSemiLattice[T MeetSemiLattice[T]](vals []T) error {
	for _, a := range vals {
		if !a.Meet(a).Equal(a) {
			return fmt.Errorf("meet(%v, %v) != %v: %w", a, a, a, ErrNotIdempotent)
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			m := a.Meet(b)
			if !m.Equal(b.Meet(a)) {
				return fmt.Errorf("meet(%v, %v) != meet(%v, %v): %w", a, b, b, a, ErrNotCommutative)
			}
			if !m.PartialCompare(a).AtMost() || !m.PartialCompare(b).AtMost() {
				return fmt.Errorf("meet(%v, %v) = %v is not below both operands: %w", a, b, m, ErrNotLowerBound)
			}
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if !a.Meet(b).Meet(c).Equal(a.Meet(b.Meet(c))) {
					return fmt.Errorf("meet over (%v, %v, %v): %w", a, b, c, ErrNotAssociative)
				}
			}
		}
	}
	return nil
}

// CheckLattice verifies both semi-lattice law families plus the absorption
// laws linking them: a ∨ (a ∧ b) = a and a ∧ (a ∨ b) = a.
func CheckLattice[T Lattice[T]](vals []T) error {
	if err := CheckJoinSemiLattice(vals); err != nil {
		return err
	}
	if err := CheckMeetSemiLattice(vals); err != nil {
		return err
	}
	for _, a := range vals {
		for _, b := range vals {
			if !a.Join(a.Meet(b)).Equal(a) {
				return fmt.Errorf("join(%v, meet(%v, %v)) != %v: %w", a, a, b, a, ErrAbsorptionViolated)
			}
			if !a.Meet(a.Join(b)).Equal(a) {
				return fmt.Errorf("meet(%v, join(%v, %v)) != %v: %w", a, a, b, a, ErrAbsorptionViolated)
			}
		}
	}
	return nil
}

// CheckBounds verifies Infimum() ≤ x ≤ Supremum() for every x in vals.
func CheckBounds[T interface {
	LowerBounded[T]
	UpperBounded[T]
}](vals []T) error {
	for _, a := range vals {
		if !a.Infimum().PartialCompare(a).AtMost() {
			return fmt.Errorf("infimum is not below %v: %w", a, ErrBoundViolated)
		}
		if !a.PartialCompare(a.Supremum()).AtMost() {
			return fmt.Errorf("%v is not below supremum: %w", a, ErrBoundViolated)
		}
	}
	return nil
}

// CheckDistributive verifies both distributive identities over every
// triple in vals. DistributiveLattice uses total-order support as a
// structural proxy for distributivity, so conforming types should run
// this companion check in their tests.
func CheckDistributive[T Lattice[T]](vals []T) error {
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if !a.Join(b.Meet(c)).Equal(a.Join(b).Meet(a.Join(c))) {
					return fmt.Errorf("join(%v, meet(%v, %v)) != meet(join, join): %w", a, b, c, ErrNotDistributive)
				}
				if !a.Meet(b.Join(c)).Equal(a.Meet(b).Join(a.Meet(c))) {
					return fmt.Errorf("meet(%v, join(%v, %v)) != join(meet, meet): %w", a, b, c, ErrNotDistributive)
				}
			}
		}
	}
	return nil
}

// CheckBooleanAlgebra verifies excluded middle, non-contradiction, and
// double complement for every value in vals.
func CheckBooleanAlgebra[T BooleanAlgebra[T]](vals []T) error {
	for _, a := range vals {
		not := a.Complement()
		if !a.Join(not).Equal(a.Supremum()) {
			return fmt.Errorf("join(%v, %v) != supremum: %w", a, not, ErrComplementViolated)
		}
		if !a.Meet(not).Equal(a.Infimum()) {
			return fmt.Errorf("meet(%v, %v) != infimum: %w", a, not, ErrComplementViolated)
		}
		if !not.Complement().Equal(a) {
			return fmt.Errorf("complement(complement(%v)) != %v: %w", a, a, ErrComplementViolated)
		}
	}
	return nil
}

// CheckSymmetricDifference verifies that SymDiff is commutative,
// associative, self-inverse, and has the bottom element as identity.
func CheckSymmetricDifference[T interface {
	SymmetricDifference[T]
	LowerBounded[T]
}](vals []T) error {
	for _, a := range vals {
		if !a.SymDiff(a).Equal(a.Infimum()) {
			return fmt.Errorf("symdiff(%v, %v) != infimum: %w", a, a, ErrSymDiffViolated)
		}
		if !a.SymDiff(a.Infimum()).Equal(a) {
			return fmt.Errorf("symdiff(%v, infimum) != %v: %w", a, a, ErrSymDiffViolated)
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			if !a.SymDiff(b).Equal(b.SymDiff(a)) {
				return fmt.Errorf("symdiff(%v, %v) != symdiff(%v, %v): %w", a, b, b, a, ErrNotCommutative)
			}
		}
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				if !a.SymDiff(b).SymDiff(c).Equal(a.SymDiff(b.SymDiff(c))) {
					return fmt.Errorf("symdiff over (%v, %v, %v): %w", a, b, c, ErrNotAssociative)
				}
			}
		}
	}
	return nil
}
