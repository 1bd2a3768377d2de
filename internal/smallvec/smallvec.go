// Package smallvec implements the growable timestamp storage backing a
// vector clock.
//
// Most monitored programs only ever involve a handful of threads, so the
// common case is a clock with very few slots. Vec keeps up to InlineCap
// elements in a fixed inline buffer (no heap allocation at all) and spills
// to a heap-backed slice only once a clock grows past that threshold.
//
// This is purely a performance optimization: callers only ever observe a
// contiguous sequence of uint32 timestamps via Slice and Grow. The choice
// of inline buffer versus heap never changes results.
//
// Performance targets: Grow within inline capacity < 5ns, 0 allocs;
// Slice < 1ns, 0 allocs.
package smallvec

// InlineCap is the number of timestamps stored inline before spilling to
// the heap. Clocks of up to InlineCap participating threads never allocate.
const InlineCap = 4

// Vec is a growable sequence of uint32 timestamps with an inline buffer
// for small lengths.
//
// The zero value is an empty, ready-to-use vector. Data lives in the inline
// buffer while the length is at most InlineCap, and in the heap slice
// beyond that. Clear keeps any spilled capacity for reuse.
//
// Vec performs no synchronization; see the vectorclock package for the
// ownership rules.
type Vec struct {
	n      int
	inline [InlineCap]uint32
	heap   []uint32
}

// Len returns the current number of stored elements.
//
//go:nosplit
func (v *Vec) Len() int {
	return v.n
}

// Slice returns the active storage as a slice of length Len.
//
// The slice aliases the vector's backing storage: it is invalidated by any
// subsequent Grow, Clear or CopyFrom call.
//
//go:nosplit
func (v *Vec) Slice() []uint32 {
	if v.n <= InlineCap {
		return v.inline[:v.n]
	}
	return v.heap[:v.n]
}

// Grow extends the vector to at least minLen elements, zero-filling every
// newly exposed slot, and returns the mutable storage.
//
// If the vector already holds minLen or more elements it is returned
// unchanged. Growing past InlineCap copies the inline elements into heap
// storage; previously spilled capacity is reused when large enough.
func (v *Vec) Grow(minLen int) []uint32 {
	if minLen <= v.n {
		return v.Slice()
	}

	if minLen <= InlineCap {
		// Inline slots may hold stale values from before a Clear.
		for i := v.n; i < minLen; i++ {
			v.inline[i] = 0
		}
		v.n = minLen
		return v.inline[:v.n]
	}

	if cap(v.heap) < minLen {
		h := make([]uint32, minLen)
		copy(h, v.Slice())
		v.heap = h
	} else {
		old := v.n
		v.heap = v.heap[:minLen]
		if old <= InlineCap {
			copy(v.heap, v.inline[:old])
		}
		for i := old; i < minLen; i++ {
			v.heap[i] = 0
		}
	}
	v.n = minLen
	return v.heap
}

// Clear resets the vector to length zero.
//
// Spilled heap capacity is retained so a vector that has grown large once
// can be refilled without reallocating.
//
//go:nosplit
func (v *Vec) Clear() {
	v.n = 0
}

// CopyFrom replaces the vector's contents with a copy of src.
func (v *Vec) CopyFrom(src []uint32) {
	v.Clear()
	if len(src) == 0 {
		return
	}
	copy(v.Grow(len(src)), src)
}
