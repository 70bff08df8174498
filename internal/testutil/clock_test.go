package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestClock_StartsAtStart(t *testing.T) {
	clock := NewClock(start, time.Second)
	assert.True(t, clock.Current().Equal(start))
}

func TestClock_NowStepsForward(t *testing.T) {
	clock := NewClock(start, time.Second)

	// First call returns the start instant
	assert.True(t, clock.Now().Equal(start))

	// Subsequent calls step by one second each
	assert.True(t, clock.Now().Equal(start.Add(1*time.Second)))
	assert.True(t, clock.Now().Equal(start.Add(2*time.Second)))
	assert.True(t, clock.Current().Equal(start.Add(3*time.Second)))
}

func TestClock_Advance(t *testing.T) {
	clock := NewClock(start, time.Second)

	clock.Advance(time.Hour)
	assert.True(t, clock.Now().Equal(start.Add(time.Hour)))
}

func TestClock_StrictlyIncreasing(t *testing.T) {
	clock := NewClock(start, time.Millisecond)

	prev := clock.Now()
	for i := 0; i < 100; i++ {
		next := clock.Now()
		require.True(t, next.After(prev), "instant %d not after predecessor", i)
		prev = next
	}
}

func TestClock_ThreadSafe(t *testing.T) {
	clock := NewClock(start, time.Nanosecond)
	const numGoroutines = 100
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	seen := make([][]time.Time, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		seen[i] = make([]time.Time, 0, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				seen[idx] = append(seen[idx], clock.Now())
			}
		}(i)
	}
	wg.Wait()

	// Every goroutine observes a strictly increasing sequence
	for i, times := range seen {
		for j := 1; j < len(times); j++ {
			require.True(t, times[j].After(times[j-1]),
				"goroutine %d: instant %d not after predecessor", i, j)
		}
	}

	// All instants are distinct across goroutines
	all := make(map[time.Time]bool)
	for _, times := range seen {
		for _, tm := range times {
			require.False(t, all[tm], "instant %v handed out twice", tm)
			all[tm] = true
		}
	}
}
