// Package epoch implements compact 64-bit scalar timestamps for
// FastTrack-style fast paths.
//
// An Epoch pairs a single vector index with that slot's clock value. Most
// happens-before questions a detector asks involve just one slot ("did
// this thread's last write happen before me?"), and answering them against
// an Epoch is O(1) — no full vector clock comparison needed. Only when
// that fast path fails does a detector fall back to whole-clock operations.
//
// Layout: [Index:32][Clock:32], matching the 32-bit vector index and
// timestamp width of the vectorclock package.
package epoch

import "github.com/kolkov/vectorclock"

// Epoch is a 64-bit logical timestamp encoding a vector index and a clock
// value: [Index:32][Clock:32].
//
// Example: New(5, 42) represents slot 5 at clock 42, printed as "42@5".
type Epoch uint64

const (
	// ClockBits is the number of bits holding the clock value.
	ClockBits = 32

	// ClockMask extracts the clock value from an epoch.
	ClockMask = (1 << ClockBits) - 1
)

// New creates an epoch from a vector index and clock value.
//
//go:nosplit
func New(idx vectorclock.VectorIdx, clock vectorclock.VTimestamp) Epoch {
	return Epoch(uint64(idx.ToU32())<<ClockBits | uint64(clock))
}

// Decode extracts the vector index and clock value from an epoch.
//
//go:nosplit
func (e Epoch) Decode() (idx vectorclock.VectorIdx, clock vectorclock.VTimestamp) {
	idx = vectorclock.VectorIdx(uint32(e >> ClockBits))
	clock = uint32(e & ClockMask)
	return
}

// HappensBefore reports whether this epoch happened before the given
// vector clock: the epoch's clock value is at most vc at the epoch's
// index.
//
// This is the O(1) check that makes the epoch fast path fast; it is
// equivalent to comparing a whole clock that is zero everywhere except at
// the epoch's index.
//
//go:nosplit
func (e Epoch) HappensBefore(vc *vectorclock.VClock) bool {
	idx, clock := e.Decode()
	return clock <= vc.At(idx)
}

// Same reports whether two epochs are identical (same index and clock).
//
//go:nosplit
func (e Epoch) Same(other Epoch) bool {
	return e == other
}

// Clock returns a vector clock equivalent to this epoch: zero everywhere
// except the epoch's clock value at the epoch's index. Used when a
// detector must leave the fast path and needs the epoch as a full clock.
// Returns the all-zero clock for a zero-clock epoch.
func (e Epoch) Clock() *vectorclock.VClock {
	idx, clock := e.Decode()
	if clock == 0 {
		return vectorclock.New()
	}
	return vectorclock.NewWithIndex(idx, clock)
}

// String returns a human-readable representation, format "clock@idx".
// Debugging and reporting only.
func (e Epoch) String() string {
	idx, clock := e.Decode()
	return itoa(clock) + "@" + itoa(idx.ToU32())
}

// itoa converts an integer to string without importing fmt.
// Simple implementation for debugging output only.
func itoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	tmp := n
	digits := 0
	for tmp > 0 {
		digits++
		tmp /= 10
	}

	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf)
}
