package vectorclock

// Ordering is the result of comparing two clocks under the pointwise
// partial order. Unlike a total order, two clocks may be Incomparable:
// neither history contains the other. For a race detector that outcome is
// the interesting one — it means the two accesses are concurrent.
type Ordering int8

const (
	// Less: every slot of the left clock is <= the right's, and at least
	// one is strictly smaller (the left history happened before the right).
	Less Ordering = iota - 1
	// Equal: the clocks denote the same value.
	Equal
	// Greater: the reverse of Less.
	Greater
	// Incomparable: mixed signals — some slots favor the left, some the
	// right. The clocks are concurrent.
	Incomparable
)

// Reverse returns the ordering with the roles of the operands swapped.
// Equal and Incomparable are their own reverses.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Incomparable:
		return "Incomparable"
	default:
		return "Ordering(?)"
	}
}

// Compare returns the full ordering of vc against other under the
// pointwise partial order, treating both clocks as infinite vectors with
// implicit zero padding.
//
// The shared prefix is walked in lockstep while refining a running verdict
// that starts Equal and moves to Less or Greater on the first differing
// slot; any later slot contradicting the running direction short-circuits
// to Incomparable. Length differences after the shared prefix are resolved
// by the canonical-form invariant without scanning the tail: a non-empty
// tail carries at least one non-zero value, so the longer clock holds
// strictly more mass there. The whole comparison is therefore
// O(min(len(l), len(r))).
func (vc *VClock) Compare(other *VClock) Ordering {
	lhs := vc.v.Slice()
	rhs := other.v.Slice()

	order := Equal
	for i := 0; i < min(len(lhs), len(rhs)); i++ {
		l, r := lhs[i], rhs[i]
		switch order {
		case Equal:
			if l < r {
				order = Less
			} else if l > r {
				order = Greater
			}
		case Less:
			if l > r {
				return Incomparable
			}
		case Greater:
			if l < r {
				return Incomparable
			}
		}
	}

	switch {
	case len(lhs) == len(rhs):
		// No trailing elements on either side: the running verdict stands.
		return order
	case len(lhs) < len(rhs):
		// Right has at least one element greater than the implicit 0, so
		// the only possible results are Less or Incomparable.
		if order == Greater {
			return Incomparable
		}
		return Less
	default:
		// Left has at least one element greater than the implicit 0.
		if order == Less {
			return Incomparable
		}
		return Greater
	}
}

// The four boolean operators below are dedicated fast paths rather than
// wrappers around Compare: each needs only a single forward scan with an
// early false the moment a disqualifying slot is seen, and each can reject
// on length alone before touching any element. They agree with Compare on
// every input; compare_test.go checks that agreement exhaustively.

// Less reports vc < other: vc happened strictly before other.
func (vc *VClock) Less(other *VClock) bool {
	lhs := vc.v.Slice()
	rhs := other.v.Slice()

	// A longer clock has non-zero mass beyond the other's length and can
	// never be strictly less.
	if len(lhs) > len(rhs) {
		return false
	}
	equal := len(lhs) == len(rhs)
	for i, l := range lhs {
		if l > rhs[i] {
			return false
		} else if l < rhs[i] {
			equal = false
		}
	}
	return !equal
}

// LessOrEqual reports vc ≤ other: every slot of vc is at most the
// corresponding slot of other. This is the happens-before check used on
// the race decision path.
func (vc *VClock) LessOrEqual(other *VClock) bool {
	lhs := vc.v.Slice()
	rhs := other.v.Slice()

	if len(lhs) > len(rhs) {
		return false
	}
	for i, l := range lhs {
		if l > rhs[i] {
			return false
		}
	}
	return true
}

// HappensBefore is an alias for LessOrEqual, named for the detector-facing
// question it answers.
func (vc *VClock) HappensBefore(other *VClock) bool {
	return vc.LessOrEqual(other)
}

// Greater reports vc > other: other happened strictly before vc.
func (vc *VClock) Greater(other *VClock) bool {
	lhs := vc.v.Slice()
	rhs := other.v.Slice()

	if len(lhs) < len(rhs) {
		return false
	}
	equal := len(lhs) == len(rhs)
	for i, r := range rhs {
		if lhs[i] < r {
			return false
		} else if lhs[i] > r {
			equal = false
		}
	}
	return !equal
}

// GreaterOrEqual reports vc ≥ other.
func (vc *VClock) GreaterOrEqual(other *VClock) bool {
	lhs := vc.v.Slice()
	rhs := other.v.Slice()

	if len(lhs) < len(rhs) {
		return false
	}
	for i, r := range rhs {
		if lhs[i] < r {
			return false
		}
	}
	return true
}
