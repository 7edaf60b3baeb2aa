package insight

import (
	"context"
	"fmt"

	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/report"
	"github.com/balanco/balanco/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Insight is the response of one insight request: a rotating message for the
// balance bucket plus the (possibly cached) analysis of the record.
type Insight struct {
	Message  string
	Analysis string
	Balance  float64
	Bucket   Bucket
}

type Service interface {
	GetInsight(ctx context.Context) (Insight, error)
}

type ServiceImpl struct {
	reports     report.Service
	diagnostics diagnostic.Service
	selector    *Selector
}

func NewService(reports report.Service, diagnostics diagnostic.Service, selector *Selector) *ServiceImpl {
	return &ServiceImpl{reports: reports, diagnostics: diagnostics, selector: selector}
}

func (s *ServiceImpl) GetInsight(ctx context.Context) (Insight, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return Insight{}, fmt.Errorf("failed to get current user: %w", err)
	}

	result, err := s.reports.GetReport(ctx)
	if err != nil {
		return Insight{}, err
	}
	balance := result.Totals.Balance.InexactFloat64()
	bucket := BucketFor(balance)

	set := messagesFor(bucket)
	index, err := s.selector.Next(ctx, userId, bucket, len(set))
	if err != nil {
		return Insight{}, err
	}
	message := fmt.Sprintf(set[index], formatCurrency(balance)) + "\n\n" + closingParagraph

	analysis, err := s.analysisFor(ctx, result)
	if err != nil {
		return Insight{}, err
	}

	return Insight{
		Message:  message,
		Analysis: analysis,
		Balance:  balance,
		Bucket:   bucket,
	}, nil
}

// analysisFor returns the record's cached analysis when its fingerprint still
// matches the inputs, otherwise rebuilds it and persists the new cache.
func (s *ServiceImpl) analysisFor(ctx context.Context, result report.Report) (string, error) {
	record := result.Record
	fingerprint := record.Fingerprint()
	if record.AIAnalysis != "" && record.AIAnalysisHash == fingerprint {
		return record.AIAnalysis, nil
	}

	analysis := buildAnalysis(result.Totals)
	if err := s.diagnostics.CacheAnalysis(ctx, analysis, fingerprint); err != nil {
		// The analysis is still usable, keep serving it uncached.
		log.Warnf("failed to cache analysis: %v", err)
	}
	return analysis, nil
}

func buildAnalysis(totals report.Totals) string {
	expenses := totals.FixedExpenses.
		Add(totals.EstimatedExpenses).
		Add(totals.CardInstallments).
		Add(totals.Debts)

	base := fmt.Sprintf(
		"Sua renda mensal soma %s e suas despesas somam %s.",
		formatCurrency(totals.Income.InexactFloat64()),
		formatCurrency(expenses.InexactFloat64()),
	)
	if totals.Balance.IsNegative() {
		return base + fmt.Sprintf(" O mês fecha com um déficit de %s.", formatCurrency(totals.Balance.InexactFloat64()))
	}
	return base + fmt.Sprintf(" O mês fecha com uma sobra de %s.", formatCurrency(totals.Balance.InexactFloat64()))
}
