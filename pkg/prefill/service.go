package prefill

import (
	"context"
	"fmt"

	"github.com/balanco/balanco/internal/event_bus"
	"github.com/balanco/balanco/pkg/cost_of_living"
	"github.com/balanco/balanco/pkg/debt_mapping"
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/user"
	log "github.com/sirupsen/logrus"
)

// EstimatedCategories are the cost of living categories folded into the
// wizard's variable expense list. The ids derived from them are stable and
// the frontend keys its rows by them.
var EstimatedCategories = []string{
	"Moradia",
	"Alimentação",
	"Transporte",
	"Saúde",
	"Educação",
	"Lazer",
	"Outros",
}

type Service interface {
	// Prefill re-derives the debts and estimated expense lists of the
	// effective user's record from their debt mapping and cost of living
	// data, persists the result and returns it. Empty source data leaves
	// the corresponding list untouched.
	Prefill(ctx context.Context) (diagnostic.DiagnosticRecord, error)
}

type ServiceImpl struct {
	diagnostics  diagnostic.Service
	debtMapping  debt_mapping.Reader
	costOfLiving cost_of_living.Reader
	eventBus     *event_bus.EventBus
}

func NewService(
	diagnostics diagnostic.Service,
	debtMapping debt_mapping.Reader,
	costOfLiving cost_of_living.Reader,
	eventBus *event_bus.EventBus,
) *ServiceImpl {
	return &ServiceImpl{
		diagnostics:  diagnostics,
		debtMapping:  debtMapping,
		costOfLiving: costOfLiving,
		eventBus:     eventBus,
	}
}

func (s *ServiceImpl) Prefill(ctx context.Context) (diagnostic.DiagnosticRecord, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return diagnostic.DiagnosticRecord{}, fmt.Errorf("failed to get current user: %w", err)
	}

	record, err := s.diagnostics.GetDiagnostic(ctx)
	if err != nil {
		return diagnostic.DiagnosticRecord{}, err
	}

	mappingItems, err := s.debtMapping.GetAll(ctx)
	if err != nil {
		return diagnostic.DiagnosticRecord{}, fmt.Errorf("failed to load debt mapping items: %w", err)
	}
	costItems, err := s.costOfLiving.GetAll(ctx)
	if err != nil {
		return diagnostic.DiagnosticRecord{}, fmt.Errorf("failed to load cost of living items: %w", err)
	}

	debtsReplaced := len(mappingItems) > 0
	record.Debts = MapDebts(record.Debts, mappingItems)

	estimated := MapCategoriesToItems(EstimatedCategories, costItems)
	itemsReplaced := len(estimated) > 0
	if itemsReplaced {
		record.EstimatedExpenses = estimated
	}

	if !debtsReplaced && !itemsReplaced {
		// Nothing to derive, keep whatever is stored.
		return record, nil
	}

	record.IsDefault = false
	saved, err := s.diagnostics.SaveDiagnostic(ctx, record)
	if err != nil {
		return diagnostic.DiagnosticRecord{}, err
	}

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.DiagnosticPrefilled, event_bus.DiagnosticPrefilledEvent{
			UserId:        userId,
			DebtsReplaced: debtsReplaced,
			ItemsReplaced: itemsReplaced,
		}))
		if err != nil {
			log.Warnf("failed to publish diagnostic.prefilled for user %d: %v", userId, err)
		}
	}

	return saved, nil
}
