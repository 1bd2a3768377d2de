package vectorclock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorIdxRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, 4, 255, 65535, math.MaxUint32} {
		idx := NewVectorIdx(i)
		require.Equal(t, i, idx.Index())
		require.Equal(t, uint32(i), idx.ToU32())
	}
}

func TestVectorIdxOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { NewVectorIdx(-1) })
	require.Panics(t, func() { NewVectorIdx(math.MaxUint32 + 1) })
}

func TestMaxIndexSentinel(t *testing.T) {
	require.Equal(t, uint32(math.MaxUint32), MaxIndex.ToU32())

	// The sentinel is distinguishable from every index a caller would
	// allocate in practice.
	require.NotEqual(t, MaxIndex, NewVectorIdx(0))
	require.NotEqual(t, MaxIndex, NewVectorIdx(1<<20))
}
