package idgen

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_StartsAtSeedPlusOne(t *testing.T) {
	g := New(3)

	assert.Equal(t, 4, g.Next())
	assert.Equal(t, 5, g.Next())
	assert.Equal(t, 6, g.Next())
}

func TestGenerator_ZeroSeed(t *testing.T) {
	g := New(0)

	assert.Equal(t, 1, g.Next())
}

func TestGenerator_ConcurrentCallsAreUniqueAndContiguous(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 500
	)

	g := New(3)

	var wg sync.WaitGroup
	results := make(chan int, goroutines*perRoutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perRoutine; j++ {
				results <- g.Next()
			}
		}()
	}

	wg.Wait()
	close(results)

	ids := make([]int, 0, goroutines*perRoutine)
	for id := range results {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	require.Len(t, ids, goroutines*perRoutine)
	for i, id := range ids {
		// Contiguous from seed+1: position i holds exactly 4+i once sorted.
		require.Equal(t, 4+i, id)
	}
}
