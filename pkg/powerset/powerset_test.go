package powerset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lattices/pkg/algebra"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		members []int
		wantErr error
		want    uint64
	}{
		{name: "empty set", size: 5, want: 0},
		{name: "two members", size: 5, members: []int{0, 2}, want: 0b00101},
		{name: "duplicates fold", size: 5, members: []int{2, 2, 2}, want: 0b00100},
		{name: "empty universe", size: 0, want: 0},
		{name: "full width universe", size: 64, members: []int{63}, want: 1 << 63},
		{name: "negative size", size: -1, wantErr: ErrUniverseSize},
		{name: "oversized universe", size: 65, wantErr: ErrUniverseSize},
		{name: "member at size", size: 5, members: []int{5}, wantErr: ErrMemberRange},
		{name: "negative member", size: 5, members: []int{-1}, wantErr: ErrMemberRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.size, tt.members...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Mask())
			assert.Equal(t, tt.size, s.UniverseSize())
		})
	}
}

func TestFromSeq(t *testing.T) {
	s, err := FromSeq(5, slices.Values([]int{1, 2, 4}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, s.Members())

	_, err = FromSeq(5, slices.Values([]int{7}))
	assert.ErrorIs(t, err, ErrMemberRange)

	_, err = FromSeq(70, slices.Values([]int{}))
	assert.ErrorIs(t, err, ErrUniverseSize)
}

func TestMustNewPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustNew(5, 9) })
	assert.NotPanics(t, func() { MustNew(5, 0, 2) })
}

func TestJoinMeet(t *testing.T) {
	a := MustNew(5, 0, 2)
	b := MustNew(5, 1, 2, 4)

	assert.True(t, a.Join(b).Equal(MustNew(5, 0, 1, 2, 4)))
	assert.True(t, a.Meet(b).Equal(MustNew(5, 2)))
}

func TestComplementLaws(t *testing.T) {
	a := MustNew(5, 0, 2)

	assert.True(t, a.Complement().Equal(MustNew(5, 1, 3, 4)))
	assert.True(t, a.Join(a.Complement()).Equal(a.Supremum()))
	assert.True(t, a.Meet(a.Complement()).Equal(a.Infimum()))
	assert.True(t, a.Complement().Complement().Equal(a))
}

func TestDistributiveIdentity(t *testing.T) {
	a := MustNew(5, 0, 2)
	b := MustNew(5, 1, 2, 4)
	c := MustNew(5, 0, 1)

	lhs := a.Join(b.Meet(c))
	rhs := a.Join(b).Meet(a.Join(c))
	assert.True(t, lhs.Equal(rhs))
	assert.True(t, lhs.Equal(MustNew(5, 0, 1, 2)))
}

func TestElementsIsAscendingAndRestartable(t *testing.T) {
	a := MustNew(5, 0, 2)

	assert.Equal(t, []int{0, 2}, slices.Collect(a.Elements()))
	// A second traversal over the same value starts fresh.
	assert.Equal(t, []int{0, 2}, slices.Collect(a.Elements()))

	// Early break does not disturb later traversals.
	for range a.Elements() {
		break
	}
	assert.Equal(t, []int{0, 2}, slices.Collect(a.Elements()))

	assert.Empty(t, slices.Collect(MustNew(5).Elements()))
}

func TestPartialCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want algebra.Ordering
	}{
		{"proper subset", MustNew(5, 0, 2), MustNew(5, 0, 2, 4), algebra.Less},
		{"proper superset", MustNew(5, 0, 2, 4), MustNew(5, 0, 2), algebra.Greater},
		{"equal", MustNew(5, 0, 2), MustNew(5, 0, 2), algebra.Equal},
		{"disjoint", MustNew(5, 0, 2), MustNew(5, 1, 3), algebra.Incomparable},
		{"overlapping", MustNew(5, 0, 2), MustNew(5, 1, 2, 4), algebra.Incomparable},
		{"empty below everything", MustNew(5), MustNew(5, 3), algebra.Less},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.PartialCompare(tt.b))
		})
	}
}

func TestCompareIsTotal(t *testing.T) {
	// Incomparable under ⊆, but the total order still decides.
	a := MustNew(5, 0, 2)
	b := MustNew(5, 1, 3)
	assert.Equal(t, algebra.Incomparable, a.PartialCompare(b))
	assert.NotZero(t, a.Compare(b))
	assert.Equal(t, -a.Compare(b), b.Compare(a))
	assert.Zero(t, a.Compare(MustNew(5, 0, 2)))

	// Smaller universes sort first.
	assert.Negative(t, MustNew(3, 0).Compare(MustNew(5)))
}

func TestSymDiff(t *testing.T) {
	a := MustNew(5, 0, 2)
	b := MustNew(5, 1, 2, 4)

	direct := a.SymDiff(b)
	assert.True(t, direct.Equal(MustNew(5, 0, 1, 4)))

	// a Δ b = (a ∨ b) ∧ ¬(a ∧ b)
	viaLattice := a.Join(b).Meet(a.Meet(b).Complement())
	assert.True(t, direct.Equal(viaLattice))
}

func TestString(t *testing.T) {
	tests := []struct {
		s    Set
		want string
	}{
		{MustNew(5), "{}"},
		{MustNew(5, 2), "{2}"},
		{MustNew(5, 0, 2), "{0, 2}"},
		{MustNew(5, 0, 1, 2, 3, 4), "{0, 1, 2, 3, 4}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestContainsLenMembers(t *testing.T) {
	a := MustNew(5, 0, 2)

	assert.True(t, a.Contains(0))
	assert.False(t, a.Contains(1))
	assert.False(t, a.Contains(-1))
	assert.False(t, a.Contains(5))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []int{0, 2}, a.Members())
}

func TestFullWidthUniverse(t *testing.T) {
	s := MustNew(64, 0, 63)

	assert.Equal(t, ^uint64(0), s.Supremum().Mask())
	assert.True(t, s.Join(s.Complement()).Equal(s.Supremum()))
	assert.True(t, s.Meet(s.Complement()).Equal(s.Infimum()))
}

func TestZeroValue(t *testing.T) {
	var s Set

	assert.Equal(t, 0, s.UniverseSize())
	assert.Equal(t, "{}", s.String())
	assert.True(t, s.Equal(s.Supremum()), "over the empty universe top and bottom coincide")
}

// allSubsets enumerates the full powerset of a universe.
func allSubsets(size int) []Set {
	subsets := make([]Set, 0, 1<<size)
	for mask := uint64(0); mask < 1<<size; mask++ {
		subsets = append(subsets, Set{size: size, mask: mask})
	}
	return subsets
}

// TestAlgebraLaws runs every law checker over the complete powerset of a
// five-element universe.
func TestAlgebraLaws(t *testing.T) {
	vals := allSubsets(5)

	assert.NoError(t, algebra.CheckEquality(vals))
	assert.NoError(t, algebra.CheckBounds(vals))
	assert.NoError(t, algebra.CheckBooleanAlgebra(vals))
	assert.NoError(t, algebra.CheckSymmetricDifference(vals))

	// The triple checks are cubic; a three-element universe keeps them
	// at 512 triples while still covering incomparable pairs.
	small := allSubsets(3)
	assert.NoError(t, algebra.CheckLattice(small))
	assert.NoError(t, algebra.CheckDistributive(small))
}
