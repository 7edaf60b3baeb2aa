package changeset

import (
	"context"
	"fmt"

	"github.com/balanco/balanco/pkg/diagnostic"
)

type Service interface {
	// ComputeChanges diffs the user's persisted snapshot against the submitted
	// one. A non-empty result gates the confirm step before the report.
	ComputeChanges(ctx context.Context, submitted diagnostic.DiagnosticRecord) ([]string, error)
}

type ServiceImpl struct {
	diagnosticService diagnostic.Service
}

func NewService(diagnosticService diagnostic.Service) *ServiceImpl {
	return &ServiceImpl{diagnosticService: diagnosticService}
}

func (s *ServiceImpl) ComputeChanges(ctx context.Context, submitted diagnostic.DiagnosticRecord) ([]string, error) {
	current, err := s.diagnosticService.GetDiagnostic(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current diagnostic: %w", err)
	}
	return Diff(current, submitted), nil
}
