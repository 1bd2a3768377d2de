package smallvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var v Vec
	require.Equal(t, 0, v.Len())
	require.Empty(t, v.Slice())
}

func TestGrowInline(t *testing.T) {
	var v Vec

	s := v.Grow(2)
	require.Equal(t, []uint32{0, 0}, s)
	s[1] = 7
	require.Equal(t, []uint32{0, 7}, v.Slice())

	// Growing to an already-covered length is a no-op.
	require.Equal(t, []uint32{0, 7}, v.Grow(1))
	require.Equal(t, 2, v.Len())
}

func TestGrowSpillsToHeap(t *testing.T) {
	var v Vec
	v.Grow(InlineCap)[InlineCap-1] = 9

	s := v.Grow(InlineCap + 3)
	require.Equal(t, InlineCap+3, v.Len())

	// Inline contents survive the spill; new slots are zero.
	require.Equal(t, uint32(9), s[InlineCap-1])
	for i := InlineCap; i < InlineCap+3; i++ {
		require.Zero(t, s[i])
	}

	// Mutations through the returned storage are visible via Slice.
	s[InlineCap+2] = 5
	require.Equal(t, uint32(5), v.Slice()[InlineCap+2])
}

func TestGrowZeroFillsAfterClear(t *testing.T) {
	var v Vec
	s := v.Grow(3)
	s[0], s[1], s[2] = 1, 2, 3

	v.Clear()
	require.Equal(t, 0, v.Len())

	// Stale inline values must not leak back.
	require.Equal(t, []uint32{0, 0}, v.Grow(2))
}

func TestGrowZeroFillsHeapAfterClear(t *testing.T) {
	var v Vec
	s := v.Grow(InlineCap + 2)
	for i := range s {
		s[i] = uint32(i + 1)
	}

	v.Clear()

	// Regrowing into retained heap capacity must also zero-fill.
	s = v.Grow(InlineCap + 2)
	for i, got := range s {
		require.Zero(t, got, "slot %d", i)
	}
}

func TestCopyFrom(t *testing.T) {
	var v Vec
	v.Grow(6)

	v.CopyFrom([]uint32{1, 2, 3})
	require.Equal(t, []uint32{1, 2, 3}, v.Slice())

	v.CopyFrom(nil)
	require.Equal(t, 0, v.Len())

	big := []uint32{1, 2, 3, 4, 5, 6, 7}
	v.CopyFrom(big)
	require.Equal(t, big, v.Slice())
}

// BenchmarkGrowInline verifies the inline path stays allocation-free.
func BenchmarkGrowInline(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v Vec
		v.Grow(InlineCap)
	}
}
