package algebra

// Ordering is the result of comparing two elements under a partial order.
// Unlike a total comparison, two elements may be related in neither
// direction; Incomparable reports exactly that case.
type Ordering int

const (
	// Incomparable means neither element is less than or equal to the other.
	Incomparable Ordering = iota
	// Less means the receiver is strictly below the argument.
	Less
	// Equal means the two elements are equal.
	Equal
	// Greater means the receiver is strictly above the argument.
	Greater
)

// String returns the lower-case name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// AtMost reports whether the ordering is Less or Equal, the ≤ relation.
func (o Ordering) AtMost() bool {
	return o == Less || o == Equal
}

// AtLeast reports whether the ordering is Greater or Equal, the ≥ relation.
func (o Ordering) AtLeast() bool {
	return o == Greater || o == Equal
}
