package insight

import (
	"context"
	"fmt"
)

type StubRotationStore struct {
	queues map[string][]int
}

func NewStubRotationStore() *StubRotationStore {
	return &StubRotationStore{queues: map[string][]int{}}
}

func (s *StubRotationStore) Get(ctx context.Context, userId int, bucket Bucket) ([]int, error) {
	return s.queues[stubKey(userId, bucket)], nil
}

func (s *StubRotationStore) Put(ctx context.Context, userId int, bucket Bucket, queue []int) error {
	s.queues[stubKey(userId, bucket)] = queue
	return nil
}

func (s *StubRotationStore) Cleanup() {
	s.queues = map[string][]int{}
}

func stubKey(userId int, bucket Bucket) string {
	return fmt.Sprintf("%d/%s", userId, bucket)
}
