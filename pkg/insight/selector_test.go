package insight

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("should show every message exactly once per cycle", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		selector := NewSelector(store, rand.New(rand.NewSource(42)))
		const size = 5

		// when
		seen := map[int]int{}
		for i := 0; i < size; i++ {
			index, err := selector.Next(ctx, 1, BucketNeutral, size)
			require.NoError(t, err)
			seen[index]++
		}

		// then
		assert.Len(t, seen, size)
		for index, count := range seen {
			assert.Equal(t, 1, count, "index %d", index)
		}
	})

	t.Run("should reshuffle into a fresh cycle after exhaustion", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		selector := NewSelector(store, rand.New(rand.NewSource(7)))
		const size = 4

		firstCycle := make([]int, 0, size)
		for i := 0; i < size; i++ {
			index, err := selector.Next(ctx, 1, BucketPositiveLow, size)
			require.NoError(t, err)
			firstCycle = append(firstCycle, index)
		}

		// when
		secondCycle := make([]int, 0, size)
		for i := 0; i < size; i++ {
			index, err := selector.Next(ctx, 1, BucketPositiveLow, size)
			require.NoError(t, err)
			secondCycle = append(secondCycle, index)
		}

		// then
		assert.ElementsMatch(t, firstCycle, secondCycle)
	})

	t.Run("should keep buckets independent", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		selector := NewSelector(store, rand.New(rand.NewSource(1)))

		// when
		_, err := selector.Next(ctx, 1, BucketNeutral, 3)
		require.NoError(t, err)
		queueNeutral, err := store.Get(ctx, 1, BucketNeutral)
		require.NoError(t, err)
		queueOther, err := store.Get(ctx, 1, BucketNegativeHigh)
		require.NoError(t, err)

		// then
		assert.Len(t, queueNeutral, 2)
		assert.Empty(t, queueOther)
	})

	t.Run("should keep users independent", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		selector := NewSelector(store, rand.New(rand.NewSource(1)))

		// when
		_, err := selector.Next(ctx, 1, BucketNeutral, 3)
		require.NoError(t, err)
		queueOtherUser, err := store.Get(ctx, 2, BucketNeutral)
		require.NoError(t, err)

		// then
		assert.Empty(t, queueOtherUser)
	})

	t.Run("should drop stale indices from a persisted queue", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		require.NoError(t, store.Put(ctx, 1, BucketNeutral, []int{7, 1}))
		selector := NewSelector(store, rand.New(rand.NewSource(1)))

		// when
		index, err := selector.Next(ctx, 1, BucketNeutral, 3)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, index)
	})

	t.Run("should not modify the slice handed out by the store", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		seeded := []int{7, 1, 2}
		require.NoError(t, store.Put(ctx, 1, BucketNeutral, seeded))
		selector := NewSelector(store, rand.New(rand.NewSource(1)))

		// when
		_, err := selector.Next(ctx, 1, BucketNeutral, 3)

		// then
		assert.NoError(t, err)
		assert.Equal(t, []int{7, 1, 2}, seeded)
	})

	t.Run("should fall back to index zero for an empty message set", func(t *testing.T) {
		// given
		store := NewStubRotationStore()
		selector := NewSelector(store, rand.New(rand.NewSource(1)))

		// when
		index, err := selector.Next(ctx, 1, BucketNeutral, 0)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 0, index)
	})
}
