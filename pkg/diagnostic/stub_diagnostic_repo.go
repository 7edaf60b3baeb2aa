package diagnostic

import (
	"context"
)

type StubRepository struct {
	data map[int]DiagnosticRecord
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]DiagnosticRecord{}}
}

func (s *StubRepository) Find(ctx context.Context, userId int) (*DiagnosticRecord, error) {
	record, ok := s.data[userId]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *StubRepository) Save(ctx context.Context, userId int, record DiagnosticRecord) error {
	s.data[userId] = record
	return nil
}

func (s *StubRepository) UpdateAnalysis(ctx context.Context, userId int, analysis string, hash string) error {
	record, ok := s.data[userId]
	if !ok {
		return nil
	}
	record.AIAnalysis = analysis
	record.AIAnalysisHash = hash
	s.data[userId] = record
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]DiagnosticRecord{}
}
