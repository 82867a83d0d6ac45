// Package powerset provides a bitmask-backed finite set conforming to
// every capability interface in pkg/algebra. It exists to exercise the
// interfaces end to end; anything needing sets over universes larger than
// 64 elements wants a different representation.
// See docs/ARCHITECTURE.md § Conformance Fixture.
package powerset

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/lattices/pkg/algebra"
)

// Construction errors.
var (
	ErrUniverseSize = errors.New("universe size must be between 0 and 64")
	ErrMemberRange  = errors.New("member index outside the universe")
)

// MaxUniverse is the largest supported universe size.
const MaxUniverse = 64

// Set is a subset of the fixed universe {0, ..., n-1}, n ≤ 64, stored as
// an n-bit mask: bit i is set exactly when element i is a member. Bits at
// positions ≥ n are always zero.
//
// The universe size is carried by the value, so the canonical bounds
// (Infimum, Supremum) and Complement are relative to the receiver's
// universe. The zero value is the empty set over the empty universe.
//
// Binary operations require both operands to come from the same universe;
// mixing universes is a programming error. The operations keep the mask
// invariant by restricting results to the receiver's universe, but the
// set they then denote is unspecified. Constructors, by contrast, check
// their inputs and report explicit errors.
//
// Sets are immutable: every operation returns a new value, so Sets are
// safe to share across goroutines.
type Set struct {
	size int
	mask uint64
}

// Compile-time conformance assertions: Set satisfies every capability in
// pkg/algebra. The composite interfaces (Lattice, DistributiveLattice)
// are granted structurally, with no declaration anywhere in this package.
var (
	_ algebra.Set[Set]                 = Set{}
	_ algebra.Poset[Set]               = Set{}
	_ algebra.TotallyOrdered[Set]      = Set{}
	_ algebra.LowerBounded[Set]        = Set{}
	_ algebra.UpperBounded[Set]        = Set{}
	_ algebra.JoinSemiLattice[Set]     = Set{}
	_ algebra.MeetSemiLattice[Set]     = Set{}
	_ algebra.Lattice[Set]             = Set{}
	_ algebra.DistributiveLattice[Set] = Set{}
	_ algebra.BooleanAlgebra[Set]      = Set{}
	_ algebra.SymmetricDifference[Set] = Set{}
)

// New returns the subset of {0, ..., size-1} containing the given
// members, folding them into the mask one bit at a time. Duplicate
// members are fine. Returns ErrUniverseSize when size is outside
// [0, 64] and ErrMemberRange when a member is negative or ≥ size.
func New(size int, members ...int) (Set, error) {
	if size < 0 || size > MaxUniverse {
		return Set{}, fmt.Errorf("size %d: %w", size, ErrUniverseSize)
	}
	s := Set{size: size}
	for _, m := range members {
		if m < 0 || m >= size {
			return Set{}, fmt.Errorf("member %d in universe of size %d: %w", m, size, ErrMemberRange)
		}
		s.mask |= 1 << m
	}
	return s, nil
}

// MustNew is New that panics on error, for fixtures and examples where
// the arguments are literals.
func MustNew(size int, members ...int) Set {
	s, err := New(size, members...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSeq builds a set from any sequence of member indices, with the same
// validation as New.
func FromSeq(size int, seq iter.Seq[int]) (Set, error) {
	if size < 0 || size > MaxUniverse {
		return Set{}, fmt.Errorf("size %d: %w", size, ErrUniverseSize)
	}
	s := Set{size: size}
	for m := range seq {
		if m < 0 || m >= size {
			return Set{}, fmt.Errorf("member %d in universe of size %d: %w", m, size, ErrMemberRange)
		}
		s.mask |= 1 << m
	}
	return s, nil
}

// universeMask is the all-ones mask restricted to the universe.
func (s Set) universeMask() uint64 {
	if s.size == MaxUniverse {
		return ^uint64(0)
	}
	return 1<<s.size - 1
}

// UniverseSize returns the size of the universe this set draws from.
func (s Set) UniverseSize() int { return s.size }

// Mask returns the raw bit representation.
func (s Set) Mask() uint64 { return s.mask }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(s.mask) }

// Contains reports whether i is a member. Indices outside the universe
// are simply not members.
func (s Set) Contains(i int) bool {
	return i >= 0 && i < s.size && s.mask&(1<<i) != 0
}

// Elements returns an ascending traversal of the member indices. Each
// call yields a fresh sequence derived from the mask, so the traversal is
// restartable and the set itself is never consumed.
func (s Set) Elements() iter.Seq[int] {
	return func(yield func(int) bool) {
		for m := s.mask; m != 0; m &= m - 1 {
			if !yield(bits.TrailingZeros64(m)) {
				return
			}
		}
	}
}

// Members returns the member indices in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for i := range s.Elements() {
		out = append(out, i)
	}
	return out
}

// String renders the set as an ordered list of its members, e.g. "{0, 2}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range s.Elements() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte('}')
	return b.String()
}

// Equal reports whether the two sets have the same members over the same
// universe.
func (s Set) Equal(o Set) bool {
	return s.size == o.size && s.mask == o.mask
}

// PartialCompare relates the sets under the subset order: Less means
// proper subset, Greater proper superset, and Incomparable that neither
// contains the other. Sets over different universes are never related.
func (s Set) PartialCompare(o Set) algebra.Ordering {
	if s.size != o.size {
		return algebra.Incomparable
	}
	common := s.mask & o.mask
	switch {
	case s.mask == common && o.mask == common:
		return algebra.Equal
	case s.mask == common:
		return algebra.Less
	case o.mask == common:
		return algebra.Greater
	default:
		return algebra.Incomparable
	}
}

// Compare is an arbitrary total order refining nothing about ⊆: sets sort
// by universe size, then by mask value. It exists to witness the
// TotallyOrdered capability; distributivity itself is proven in the tests
// via algebra.CheckDistributive.
func (s Set) Compare(o Set) int {
	if s.size != o.size {
		if s.size < o.size {
			return -1
		}
		return 1
	}
	switch {
	case s.mask < o.mask:
		return -1
	case s.mask > o.mask:
		return 1
	default:
		return 0
	}
}

// Join returns the union.
func (s Set) Join(o Set) Set {
	return Set{size: s.size, mask: (s.mask | o.mask) & s.universeMask()}
}

// Meet returns the intersection.
func (s Set) Meet(o Set) Set {
	return Set{size: s.size, mask: s.mask & o.mask}
}

// Infimum returns the empty set over the receiver's universe.
func (s Set) Infimum() Set { return Set{size: s.size} }

// Supremum returns the full universe.
func (s Set) Supremum() Set {
	return Set{size: s.size, mask: s.universeMask()}
}

// Complement returns the members of the universe not in the set.
func (s Set) Complement() Set {
	return Set{size: s.size, mask: ^s.mask & s.universeMask()}
}

// SymDiff returns the members in exactly one of the two sets.
func (s Set) SymDiff(o Set) Set {
	return Set{size: s.size, mask: (s.mask ^ o.mask) & s.universeMask()}
}
