package prefill

import (
	"context"
	"testing"
	"time"

	"github.com/balanco/balanco/internal/event_bus"
	"github.com/balanco/balanco/internal/utils"
	"github.com/balanco/balanco/pkg/cost_of_living"
	"github.com/balanco/balanco/pkg/debt_mapping"
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var diagnosticRepoStub = diagnostic.NewStubRepository()
var debtMappingRepoStub = debt_mapping.NewStubRepository()
var costOfLivingRepoStub = cost_of_living.NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	clock := &utils.MockClock{FixedNow: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
	bus := event_bus.NewEventBus()
	diagnosticService := diagnostic.NewService(diagnosticRepoStub, bus, clock)
	service = NewService(
		diagnosticService,
		debt_mapping.NewService(debtMappingRepoStub),
		cost_of_living.NewService(costOfLivingRepoStub),
		bus,
	)
	return func() {
		t.Log("Teardown after test")
		diagnosticRepoStub.Cleanup()
		debtMappingRepoStub.Cleanup()
		costOfLivingRepoStub.Cleanup()
	}
}

func TestServiceImpl_Prefill(t *testing.T) {
	t.Run("should not persist anything when both sources are empty", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		record, err := service.Prefill(ctx)

		// then
		assert.NoError(t, err)
		assert.True(t, record.IsDefault)
		persisted, err := diagnosticRepoStub.Find(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, persisted)
	})

	t.Run("should replace debts from the debt mapping", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := debtMappingRepoStub.Store(ctx, 1, debt_mapping.DebtMapItem{
			Id: "a", Name: "Financiamento", Creditor: "Banco Azul", InstallmentValue: 820.5, RemainingInstallments: 24,
		})
		require.NoError(t, err)

		// when
		record, err := service.Prefill(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, record.Debts, 1)
		assert.Equal(t, "Financiamento (Banco Azul)", record.Debts[0].Name)
		assert.False(t, record.IsDefault)
		persisted, err := diagnosticRepoStub.Find(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Len(t, persisted.Debts, 1)
	})

	t.Run("should replace estimated expenses from cost of living categories", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := costOfLivingRepoStub.Store(ctx, 1, cost_of_living.LineItem{Id: "1", Category: "Moradia", Name: "Aluguel", Value: 1400})
		require.NoError(t, err)
		_, err = costOfLivingRepoStub.Store(ctx, 1, cost_of_living.LineItem{Id: "2", Category: "Moradia", Name: "Condomínio", Value: 450})
		require.NoError(t, err)
		_, err = costOfLivingRepoStub.Store(ctx, 1, cost_of_living.LineItem{Id: "3", Category: "Transporte", Name: "Combustível", Value: 300})
		require.NoError(t, err)

		// when
		record, err := service.Prefill(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, record.EstimatedExpenses, 2)
		assert.Equal(t, "prefill-Moradia", record.EstimatedExpenses[0].Id)
		assert.Equal(t, 1850.0, record.EstimatedExpenses[0].Value)
		assert.Equal(t, "prefill-Transporte", record.EstimatedExpenses[1].Id)
	})

	t.Run("should keep estimated expenses when no cost category matches", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := costOfLivingRepoStub.Store(ctx, 1, cost_of_living.LineItem{Id: "1", Category: "Coleções", Name: "Selos", Value: 99})
		require.NoError(t, err)
		_, err = debtMappingRepoStub.Store(ctx, 1, debt_mapping.DebtMapItem{
			Id: "a", Name: "Empréstimo", Creditor: "Fintech Y", InstallmentValue: 310, RemainingInstallments: 6,
		})
		require.NoError(t, err)

		// when
		record, err := service.Prefill(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, diagnostic.DefaultTemplate().EstimatedExpenses, record.EstimatedExpenses)
		assert.Len(t, record.Debts, 1)
	})

	t.Run("should publish the prefilled event", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		bus := event_bus.NewEventBus()
		clock := &utils.MockClock{FixedNow: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
		diagnosticService := diagnostic.NewService(diagnosticRepoStub, bus, clock)
		prefillService := NewService(
			diagnosticService,
			debt_mapping.NewService(debtMappingRepoStub),
			cost_of_living.NewService(costOfLivingRepoStub),
			bus,
		)
		var received *event_bus.DiagnosticPrefilledEvent
		event_bus.SubscribeTyped(bus, event_bus.DiagnosticPrefilled, func(e event_bus.EventT[event_bus.DiagnosticPrefilledEvent]) error {
			received = &e.Data
			return nil
		})
		_, err := debtMappingRepoStub.Store(ctx, 1, debt_mapping.DebtMapItem{
			Id: "a", Name: "Empréstimo", Creditor: "Fintech Y", InstallmentValue: 310, RemainingInstallments: 6,
		})
		require.NoError(t, err)

		// when
		_, err = prefillService.Prefill(ctx)

		// then
		assert.NoError(t, err)
		require.NotNil(t, received)
		assert.Equal(t, 1, received.UserId)
		assert.True(t, received.DebtsReplaced)
		assert.False(t, received.ItemsReplaced)
	})
}
