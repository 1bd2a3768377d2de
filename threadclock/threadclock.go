// Package threadclock implements the per-thread clock state a race
// detector keeps for each monitored thread.
//
// A ThreadClock owns one vector clock (the thread's view of logical time)
// together with a cached epoch for the thread's own slot. The cache is the
// FastTrack optimization: the overwhelming majority of race checks need
// only the thread's own (index, clock) pair, and reading a cached epoch is
// a single field access.
//
// Invariant: the cached epoch always equals
// epoch.New(Idx, Clock.At(Idx)). Every mutator in this package maintains
// it.
//
// A ThreadClock is owned and mutated by exactly one logical thread; no
// internal locking is performed. Acquire and ReleaseTo are the points
// where causal information crosses ownership boundaries, always executed
// by the owning thread.
package threadclock

import (
	"github.com/kolkov/vectorclock"
	"github.com/kolkov/vectorclock/epoch"
)

// ThreadClock is the race detection clock state for a single thread.
type ThreadClock struct {
	// Idx is the thread's slot in every vector clock.
	Idx vectorclock.VectorIdx

	// Clock is the thread's view of logical time across all threads.
	Clock *vectorclock.VClock

	// cached is the epoch for the thread's own slot: always equal to
	// epoch.New(Idx, Clock.At(Idx)).
	cached epoch.Epoch
}

// New creates the clock state for a thread assigned the given index. The
// thread starts at the beginning of logical time: an all-zero clock and a
// cached epoch of 0@idx.
func New(idx vectorclock.VectorIdx) *ThreadClock {
	return &ThreadClock{
		Idx:    idx,
		Clock:  vectorclock.New(),
		cached: epoch.New(idx, 0),
	}
}

// IncrementClock advances this thread's own slot by one and refreshes the
// cached epoch. Called on every monitored event by this thread.
func (tc *ThreadClock) IncrementClock() {
	tc.Clock.IncrementIndex(tc.Idx)
	tc.cached = epoch.New(tc.Idx, tc.Clock.At(tc.Idx))
}

// CurrentEpoch returns the cached epoch for this thread's own slot.
//
// This is the hot-path read: a single field access, zero allocations.
//
//go:nosplit
func (tc *ThreadClock) CurrentEpoch() epoch.Epoch {
	return tc.cached
}

// Acquire merges a sync object's clock into this thread's clock, e.g. on
// lock acquire: Ct = Ct ⊔ Lm. The thread's own slot never decreases under
// join, so the cached epoch stays valid; it is refreshed anyway in case
// the source clock carries a transferred value for this slot.
func (tc *ThreadClock) Acquire(from *vectorclock.VClock) {
	tc.Clock.Join(from)
	tc.cached = epoch.New(tc.Idx, tc.Clock.At(tc.Idx))
}

// ReleaseTo merges this thread's clock into a sync object's clock, e.g. on
// lock release: Lm = Lm ⊔ Ct. The thread's own state is unchanged.
func (tc *ThreadClock) ReleaseTo(into *vectorclock.VClock) {
	into.Join(tc.Clock)
}

// TransferTo copies this thread's own slot into another clock without
// disturbing the target's other slots. Used where only a single coordinate
// must be handed over, such as seeding a child thread's view of its
// creator.
func (tc *ThreadClock) TransferTo(into *vectorclock.VClock) {
	into.SetAtIndex(tc.Clock, tc.Idx)
}
