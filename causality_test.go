package vectorclock_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/vectorclock"
	"github.com/kolkov/vectorclock/threadclock"
)

// TestCausalPipeline runs a pipeline of goroutines, each owning its own
// thread clock and handing a snapshot downstream. Every handoff is a
// synchronization edge, so the stages' final clocks must form a strict
// chain under the partial order.
func TestCausalPipeline(t *testing.T) {
	const stages = 8 // more than the inline buffer holds, forcing a spill

	chans := make([]chan *vectorclock.VClock, stages-1)
	for i := range chans {
		chans[i] = make(chan *vectorclock.VClock, 1)
	}

	finals := make([]*vectorclock.VClock, stages)

	var g errgroup.Group
	for i := 0; i < stages; i++ {
		i := i
		g.Go(func() error {
			tc := threadclock.New(vectorclock.NewVectorIdx(i))
			if i > 0 {
				tc.Acquire(<-chans[i-1])
			}
			for e := 0; e < 3; e++ {
				tc.IncrementClock()
			}
			if i < stages-1 {
				chans[i] <- tc.Clock.Clone()
			}
			finals[i] = tc.Clock
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < stages-1; i++ {
		require.True(t, finals[i].Less(finals[i+1]),
			"stage %d should happen before stage %d:\n %v\n %v", i, i+1, finals[i], finals[i+1])
		require.Equal(t, vectorclock.Less, finals[i].Compare(finals[i+1]))
	}

	// Transitivity across the whole chain.
	require.True(t, finals[0].Less(finals[stages-1]))
}

// TestConcurrentForksAreIncomparable forks two workers from a common
// parent snapshot with no further synchronization between them; their
// clocks must come out concurrent.
func TestConcurrentForksAreIncomparable(t *testing.T) {
	parent := threadclock.New(vectorclock.NewVectorIdx(0))
	parent.IncrementClock()
	base := parent.Clock.Clone()

	results := make([]*vectorclock.VClock, 2)

	var g errgroup.Group
	for w := 0; w < 2; w++ {
		w := w
		g.Go(func() error {
			tc := threadclock.New(vectorclock.NewVectorIdx(w + 1))
			tc.Acquire(base)
			tc.IncrementClock()
			results[w] = tc.Clock
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, vectorclock.Incomparable, results[0].Compare(results[1]))
	require.False(t, results[0].HappensBefore(results[1]))
	require.False(t, results[1].HappensBefore(results[0]))

	// Both still causally follow the parent snapshot.
	require.True(t, base.Less(results[0]))
	require.True(t, base.Less(results[1]))
}
