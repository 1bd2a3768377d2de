// Package vectorclock implements sparse vector clocks for tracking
// happens-before relations in dynamic race detection.
//
// A vector clock maps a vector index (one slot per participating thread) to
// a logical timestamp. Two memory accesses are ordered when one clock is
// less than or equal to the other under the pointwise partial order, and
// concurrent — a potential data race — when the clocks are incomparable.
//
// # Canonical form
//
// A clock is stored as a growable sequence of timestamps in which the last
// stored element is never zero; all slots beyond the stored length are
// implicitly zero. The all-zero clock is therefore always the empty
// sequence, and every clock value has exactly one valid stored length.
// Every mutator maintains this invariant. It is what makes structural
// equality and hashing correct, and it lets the comparison operators
// resolve length differences without scanning the longer clock's tail:
// a non-empty tail is known to carry non-zero mass.
//
// # Key operations
//
//   - IncrementIndex: a thread ticks its own slot on each monitored event
//   - Join: synchronization (pointwise maximum) — lock acquire, thread join
//   - Compare / LessOrEqual: happens-before checks — the race decision
//   - SetAtIndex: transfer a single slot without disturbing the rest
//
// # Storage
//
// Clocks with at most four participating threads live entirely in an inline
// buffer (no heap allocation); larger clocks spill transparently to heap
// storage. See internal/smallvec.
//
// # Concurrency
//
// VClock performs no synchronization of its own. Each clock instance must
// be owned and mutated by a single logical thread at a time; Join is the
// deliberate point where causal information crosses ownership boundaries,
// performed by the owner pulling from a source clock.
//
// Performance targets: Compare and the boolean operators are
// O(min(len(l), len(r))) with an early exit on mixed signals; Join is
// O(len(other)); all read paths are zero-allocation.
package vectorclock
