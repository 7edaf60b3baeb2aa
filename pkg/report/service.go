package report

import (
	"context"

	"github.com/balanco/balanco/pkg/diagnostic"
)

type Service interface {
	// GetReport loads the effective user's record and derives its totals.
	GetReport(ctx context.Context) (Report, error)
	// Balance returns only the monthly balance, as a plain float. The insight
	// selector buckets by this number.
	Balance(ctx context.Context) (float64, error)
}

type ServiceImpl struct {
	diagnostics diagnostic.Service
}

func NewService(diagnostics diagnostic.Service) *ServiceImpl {
	return &ServiceImpl{diagnostics: diagnostics}
}

func (s *ServiceImpl) GetReport(ctx context.Context) (Report, error) {
	record, err := s.diagnostics.GetDiagnostic(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{Record: record, Totals: ComputeTotals(record)}, nil
}

func (s *ServiceImpl) Balance(ctx context.Context) (float64, error) {
	result, err := s.GetReport(ctx)
	if err != nil {
		return 0, err
	}
	return result.Totals.Balance.InexactFloat64(), nil
}
