package changeset

import (
	"testing"

	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecord() diagnostic.DiagnosticRecord {
	return diagnostic.DiagnosticRecord{
		Work: diagnostic.WorkProfile{DaysPerWeek: 5, HoursPerDay: 8, IncomeType: diagnostic.IncomeFixed},
		Income: []diagnostic.FinancialItem{
			{Id: "income-main", Name: "Salário", Value: 3000},
		},
		FixedExpenses: []diagnostic.FinancialItem{
			{Id: "fixed-rent", Name: "Aluguel", Value: 1200},
		},
		EstimatedExpenses: []diagnostic.FinancialItem{
			{Id: "estimated-food", Name: "Alimentação", Value: 600},
		},
		CreditCard: diagnostic.CreditCard{
			Cards:        []diagnostic.FinancialItem{{Id: "card-1", Name: "Nubank", Value: 0}},
			Installments: []diagnostic.FinancialItem{{Id: "inst-1", Name: "Celular", Value: 150}},
		},
		Debts: []diagnostic.DebtItem{
			{FinancialItem: diagnostic.FinancialItem{Id: "debt-1", Name: "Financiamento", Value: 250}, TotalInstallments: 24, RemainingInstallments: 12},
			{FinancialItem: diagnostic.FinancialItem{Id: "debt-2", Name: "Empréstimo", Value: 250}, TotalInstallments: 10, RemainingInstallments: 5},
		},
	}
}

func TestDiff_Idempotence(t *testing.T) {
	// given
	record := baseRecord()

	// when
	changes := Diff(record, record)

	// then
	assert.Empty(t, changes)
}

func TestDiff_NoiseTolerance(t *testing.T) {
	t.Run("change below epsilon produces no entry", func(t *testing.T) {
		// given
		old := baseRecord()
		edited := baseRecord()
		edited.Income[0].Value += 0.005

		// when
		changes := Diff(old, edited)

		// then
		assert.Empty(t, changes)
	})

	t.Run("change above epsilon produces one entry", func(t *testing.T) {
		// given
		old := baseRecord()
		edited := baseRecord()
		edited.Income[0].Value += 0.02

		// when
		changes := Diff(old, edited)

		// then
		require.Len(t, changes, 1)
		assert.Equal(t, "Renda: total alterado para 3000.02", changes[0])
	})
}

func TestDiff_ZeroRowsAreInvisible(t *testing.T) {
	// given: a zero-value placeholder row was added
	old := baseRecord()
	edited := baseRecord()
	edited.Income = append(edited.Income, diagnostic.FinancialItem{Id: "income-extra", Name: "Renda extra", Value: 0})

	// when
	changes := Diff(old, edited)

	// then
	assert.Empty(t, changes)
}

func TestDiff_CountChangeWithSameTotal(t *testing.T) {
	// given: debts still sum to 500 but across three non-zero items
	old := baseRecord()
	edited := baseRecord()
	edited.Debts = []diagnostic.DebtItem{
		{FinancialItem: diagnostic.FinancialItem{Id: "debt-1", Name: "Financiamento", Value: 200}, TotalInstallments: 24, RemainingInstallments: 12},
		{FinancialItem: diagnostic.FinancialItem{Id: "debt-2", Name: "Empréstimo", Value: 200}, TotalInstallments: 10, RemainingInstallments: 5},
		{FinancialItem: diagnostic.FinancialItem{Id: "debt-3", Name: "Cartão antigo", Value: 100}, TotalInstallments: 6, RemainingInstallments: 6},
	}

	// when
	changes := Diff(old, edited)

	// then
	require.Len(t, changes, 1)
	assert.Equal(t, "Dívidas: quantidade de itens alterada", changes[0])
}

func TestDiff_SumChangeSuppressesCountEntry(t *testing.T) {
	// given: one debt dropped, total changed as well
	old := baseRecord()
	edited := baseRecord()
	edited.Debts = edited.Debts[:1]

	// when
	changes := Diff(old, edited)

	// then: only the total entry, never a second count entry
	require.Len(t, changes, 1)
	assert.Equal(t, "Dívidas: total alterado para 250.00", changes[0])
}

func TestDiff_WorkProfileFieldsComeFirstInFixedOrder(t *testing.T) {
	// given
	old := baseRecord()
	edited := baseRecord()
	edited.Work = diagnostic.WorkProfile{DaysPerWeek: 6, HoursPerDay: 9, IncomeType: diagnostic.IncomeMixed}
	edited.Income[0].Value = 3500

	// when
	changes := Diff(old, edited)

	// then
	require.Len(t, changes, 4)
	assert.Equal(t, "Dias de trabalho por semana alterados de 5 para 6", changes[0])
	assert.Equal(t, "Horas de trabalho por dia alteradas de 8 para 9", changes[1])
	assert.Equal(t, "Tipo de renda alterado de FIXED para MIXED", changes[2])
	assert.Equal(t, "Renda: total alterado para 3500.00", changes[3])
}

func TestDiff_CreditCardFields(t *testing.T) {
	t.Run("card count change", func(t *testing.T) {
		// given
		old := baseRecord()
		edited := baseRecord()
		edited.CreditCard.Cards = append(edited.CreditCard.Cards, diagnostic.FinancialItem{Id: "card-2", Name: "Inter", Value: 0})

		// when
		changes := Diff(old, edited)

		// then
		require.Len(t, changes, 1)
		assert.Equal(t, "Quantidade de cartões de crédito alterada", changes[0])
	})

	t.Run("installment total change", func(t *testing.T) {
		// given
		old := baseRecord()
		edited := baseRecord()
		edited.CreditCard.Installments[0].Value = 200

		// when
		changes := Diff(old, edited)

		// then
		require.Len(t, changes, 1)
		assert.Equal(t, "Parcelamentos do cartão: total alterado para 200.00", changes[0])
	})
}

func TestDiff_Determinism(t *testing.T) {
	// given
	old := baseRecord()
	edited := baseRecord()
	edited.Work.DaysPerWeek = 6
	edited.FixedExpenses[0].Value = 1300
	edited.Debts = edited.Debts[:1]

	// when
	first := Diff(old, edited)
	second := Diff(old, edited)

	// then
	assert.Equal(t, first, second)
}
