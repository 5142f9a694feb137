package sync2

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicInt64(t *testing.T) {
	i := NewAtomicInt64(5)
	require.Equal(t, int64(5), i.Get())
	require.Equal(t, int64(7), i.Add(2))
	i.Set(1)
	require.Equal(t, int64(1), i.Get())
	require.True(t, i.CompareAndSwap(1, 9))
	require.False(t, i.CompareAndSwap(1, 10))
	require.Equal(t, int64(9), i.Get())
}

func TestAtomicInt64Concurrent(t *testing.T) {
	var i AtomicInt64
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				i.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(8000), i.Get())
}
