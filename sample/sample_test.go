package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedSourceIsDeterministic(t *testing.T) {
	a, err := NewKeyedSource([]byte("seed"))
	require.NoError(t, err)
	b, err := NewKeyedSource([]byte("seed"))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(97), b.Uniform(97))
	}
}

func TestDifferentKeysDiverge(t *testing.T) {
	a, err := NewKeyedSource([]byte("seed-a"))
	require.NoError(t, err)
	b, err := NewKeyedSource([]byte("seed-b"))
	require.NoError(t, err)
	same := true
	for i := 0; i < 32; i++ {
		if a.Uniform(1<<30) != b.Uniform(1<<30) {
			same = false
		}
	}
	require.False(t, same)
}

func TestShakeSourceIsDeterministic(t *testing.T) {
	a := NewShakeSource([]byte("seed"))
	b := NewShakeSource([]byte("seed"))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(59), b.Uniform(59))
	}
}

func TestUniformRange(t *testing.T) {
	src, err := NewSource()
	require.NoError(t, err)
	seen := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		v := src.Uniform(5)
		require.Less(t, v, uint64(5))
		seen[v] = true
	}
	// 2000 draws over 5 buckets should hit every residue
	require.Len(t, seen, 5)
}

func TestUniformOfOne(t *testing.T) {
	src := NewShakeSource([]byte("x"))
	for i := 0; i < 10; i++ {
		require.Equal(t, uint64(0), src.Uniform(1))
	}
}
