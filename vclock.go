package vectorclock

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/kolkov/vectorclock/internal/smallvec"
)

// VTimestamp is the timestamp type recorded per slot. 32 bits is enough for
// billions of events per thread; overflow is treated as fatal rather than
// wrapped, since silent wraparound would corrupt causal ordering.
type VTimestamp = uint32

// VClock is a sparse vector clock: logically a total function from
// VectorIdx to VTimestamp with all unmapped slots implicitly zero.
//
// Invariant: the last stored element is never zero, so the all-zero clock
// is always the empty sequence and each clock value has exactly one valid
// stored length. See the package documentation for why this matters.
//
// The zero value is the all-zero clock, ready to use. VClock carries no
// resources beyond its backing storage and performs no synchronization.
type VClock struct {
	v smallvec.Vec
}

// New returns the all-zero clock.
func New() *VClock {
	return &VClock{}
}

// NewWithIndex returns a clock that is zero everywhere except for
// timestamp at the given index. The backing sequence has length index+1
// with all intermediate slots zero.
//
// The timestamp must be non-zero, or the result violates the canonical
// form. Callers use this when a thread is first observed, where the
// timestamp is the thread's first tick and never zero.
func NewWithIndex(index VectorIdx, timestamp VTimestamp) *VClock {
	vc := New()
	vc.v.Grow(index.Index() + 1)[index.Index()] = timestamp
	return vc
}

// FromSlice returns a clock holding the given timestamps, with trailing
// zeros trimmed to restore canonical form. This is the one entry point
// that accepts arbitrary, possibly non-canonical data.
func FromSlice(timestamps []VTimestamp) *VClock {
	for len(timestamps) > 0 && timestamps[len(timestamps)-1] == 0 {
		timestamps = timestamps[:len(timestamps)-1]
	}
	vc := New()
	vc.v.CopyFrom(timestamps)
	return vc
}

// Slice returns the canonical stored sequence.
//
// The slice aliases the clock's backing storage and is invalidated by any
// subsequent mutation; callers must not modify it.
//
//go:nosplit
func (vc *VClock) Slice() []VTimestamp {
	return vc.v.Slice()
}

// At returns the timestamp at the given slot, or 0 if the slot lies beyond
// the stored sequence. Out-of-range is a defined condition, not an error.
//
//go:nosplit
func (vc *VClock) At(index VectorIdx) VTimestamp {
	s := vc.v.Slice()
	if i := index.Index(); i < len(s) {
		return s[i]
	}
	return 0
}

// IsZero reports whether this is the all-zero clock. By the canonical-form
// invariant this is equivalent to "every slot is 0".
//
//go:nosplit
func (vc *VClock) IsZero() bool {
	return vc.v.Len() == 0
}

// IncrementIndex advances the clock at the given slot by one, growing the
// backing storage with zero-fill if the slot lies beyond the current
// length.
//
// Called on every monitored event by the thread owning the slot. Panics on
// timestamp overflow: unreachable for realistic run lengths, but wrapping
// silently would invert causal order.
func (vc *VClock) IncrementIndex(index VectorIdx) {
	i := index.Index()
	s := vc.v.Grow(i + 1)
	if s[i] == math.MaxUint32 {
		panic("vectorclock: vector clock overflow")
	}
	s[i]++
}

// Join merges other into this clock, setting every slot to the maximum of
// the two: vc = vc ⊔ other.
//
// This is the synchronization operation: idempotent, commutative,
// associative, and monotone (no slot ever decreases). Used whenever causal
// information propagates — a release/acquire pair, a thread join.
//
// The final slot after joining is at least other's final stored element,
// which is non-zero, so canonical form is preserved.
func (vc *VClock) Join(other *VClock) {
	rhs := other.v.Slice()
	lhs := vc.v.Grow(len(rhs))
	for i, r := range rhs {
		if r > lhs[i] {
			lhs[i] = r
		}
	}
}

// SetAtIndex overwrites exactly one slot in this clock with the value of
// the same slot in other, growing this clock if necessary.
//
// This is a narrower primitive than Join: it copies rather than merges, so
// callers must already know the copied value is intended to replace the
// target slot. The other clock must store the slot (panics otherwise) and
// the copied value must be non-zero when index is this clock's final slot,
// or canonical form is violated; in practice callers transfer a slot they
// have just ticked.
func (vc *VClock) SetAtIndex(other *VClock, index VectorIdx) {
	i := index.Index()
	vc.v.Grow(i + 1)[i] = other.v.Slice()[i]
}

// SetZero clears the clock back to the all-zero representation.
func (vc *VClock) SetZero() {
	vc.v.Clear()
}

// Clone returns an independent deep copy of the clock.
func (vc *VClock) Clone() *VClock {
	c := New()
	c.v.CopyFrom(vc.v.Slice())
	return c
}

// CopyFrom replaces this clock's value with other's, reusing this clock's
// backing storage where possible. Cheaper than assigning a fresh Clone
// when the destination already exists.
func (vc *VClock) CopyFrom(other *VClock) {
	if vc == other {
		return
	}
	vc.v.CopyFrom(other.v.Slice())
}

// Equal reports whether the two clocks denote the same function from index
// to timestamp. Structural comparison of the canonical sequences is
// sufficient by the canonical-form invariant.
func (vc *VClock) Equal(other *VClock) bool {
	return slices.Equal(vc.v.Slice(), other.v.Slice())
}

// Hash returns a 64-bit FNV-1a hash of the canonical sequence. Clocks that
// compare Equal hash equal.
func (vc *VClock) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, ts := range vc.v.Slice() {
		binary.LittleEndian.PutUint32(buf[:], ts)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String returns a debug representation showing only non-zero slots.
//
// Format: "{idx1:ts1, idx2:ts2, ...}", e.g. "{0:50, 1:30, 5:42}".
// Debugging and race reporting only, not on the hot path.
func (vc *VClock) String() string {
	var parts []string
	for i, ts := range vc.v.Slice() {
		if ts != 0 {
			parts = append(parts, strconv.Itoa(i)+":"+strconv.FormatUint(uint64(ts), 10))
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
