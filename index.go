package vectorclock

import "math"

// VectorIdx identifies one slot in every vector clock — conceptually one
// thread's logical-time coordinate.
//
// An index is usually associated with a thread id, but the association is
// not permanent: a caller may reuse an index for a different thread once it
// is certain no causal relationship can be lost. The clock types make no
// assumption either way; they only address slots by index.
type VectorIdx uint32

// MaxIndex is a reserved sentinel distinguishable from any in-use index.
// Callers use it as "no index" / "unassigned"; it is never a valid slot.
const MaxIndex VectorIdx = math.MaxUint32

// NewVectorIdx creates a vector index from a zero-based array position.
//
// It panics if idx is negative or does not fit in 32 bits. Both are caller
// errors, not recoverable runtime conditions: indices come from the
// detector's own allocator and are always small in practice.
func NewVectorIdx(idx int) VectorIdx {
	if idx < 0 || int64(idx) > math.MaxUint32 {
		panic("vectorclock: vector index out of range")
	}
	return VectorIdx(idx)
}

// Index returns the zero-based array position the index names.
// Round-trips with NewVectorIdx exactly for all representable values.
//
//go:nosplit
func (i VectorIdx) Index() int {
	return int(i)
}

// ToU32 returns the underlying raw value.
//
//go:nosplit
func (i VectorIdx) ToU32() uint32 {
	return uint32(i)
}
