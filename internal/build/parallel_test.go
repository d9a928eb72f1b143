package build

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOrdered_PreservesInputOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2, 7}
	results := runOrdered(items, 4, func(n int) (int, error) {
		return n * 10, nil
	})

	require.Len(t, results, len(items))
	for i, n := range items {
		assert.Equal(t, n*10, results[i].Value)
	}
	assert.NoError(t, firstError(results))
}

func TestRunOrdered_BoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int64
	items := make([]int, 32)

	runOrdered(items, 3, func(int) (struct{}, error) {
		n := active.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		active.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestFirstError_ReturnsFirstInInputOrder(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	results := []orderedResult[int]{
		{Value: 1},
		{Err: errA},
		{Err: errB},
	}
	assert.Equal(t, errA, firstError(results))
}

func TestRunOrdered_Empty(t *testing.T) {
	assert.Nil(t, runOrdered(nil, 4, func(int) (int, error) { return 0, nil }))
}
