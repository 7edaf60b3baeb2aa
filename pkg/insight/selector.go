package insight

import (
	"context"
	"math/rand"
)

// RotationStore keeps the per-user, per-bucket queue of message indices that
// have not been shown in the current shuffle cycle.
type RotationStore interface {
	// Get returns the remaining queue, or nil when no cycle is in progress.
	Get(ctx context.Context, userId int, bucket Bucket) ([]int, error)
	Put(ctx context.Context, userId int, bucket Bucket, queue []int) error
}

// Selector picks message indices so that within a bucket no message repeats
// until every message of the current shuffle cycle has been shown once.
type Selector struct {
	store RotationStore
	rand  *rand.Rand
}

func NewSelector(store RotationStore, r *rand.Rand) *Selector {
	return &Selector{store: store, rand: r}
}

// Next consumes one index from the bucket's queue, refilling it with a fresh
// random permutation of 0..size-1 when exhausted.
func (s *Selector) Next(ctx context.Context, userId int, bucket Bucket, size int) (int, error) {
	if size <= 0 {
		return 0, nil
	}

	queue, err := s.store.Get(ctx, userId, bucket)
	if err != nil {
		return 0, err
	}
	queue = pruneStale(queue, size)

	if len(queue) == 0 {
		queue = make([]int, size)
		for i := range queue {
			queue[i] = i
		}
		s.rand.Shuffle(size, func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}

	index := queue[len(queue)-1]
	queue = queue[:len(queue)-1]

	if err := s.store.Put(ctx, userId, bucket, queue); err != nil {
		return 0, err
	}
	return index, nil
}

// pruneStale drops indices that no longer address a message. Queues persisted
// before a message list shrank would otherwise point past its end. The input
// slice belongs to the store and is left untouched.
func pruneStale(queue []int, size int) []int {
	valid := make([]int, 0, len(queue))
	for _, index := range queue {
		if index >= 0 && index < size {
			valid = append(valid, index)
		}
	}
	return valid
}
