package report

import (
	"testing"

	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/stretchr/testify/assert"
)

func sampleRecord() diagnostic.DiagnosticRecord {
	return diagnostic.DiagnosticRecord{
		Work: diagnostic.WorkProfile{DaysPerWeek: 5, HoursPerDay: 8, IncomeType: diagnostic.IncomeFixed},
		Income: []diagnostic.FinancialItem{
			{Id: "income-main", Name: "Salário", Value: 4000},
			{Id: "income-extra", Name: "Renda extra", Value: 500.10},
		},
		FixedExpenses: []diagnostic.FinancialItem{
			{Id: "fixed-rent", Name: "Aluguel", Value: 1400},
		},
		EstimatedExpenses: []diagnostic.FinancialItem{
			{Id: "estimated-food", Name: "Alimentação", Value: 900.20},
		},
		CreditCard: diagnostic.CreditCard{
			Cards:        []diagnostic.FinancialItem{{Id: "card-1", Name: "Cartão principal", Value: 0}},
			Installments: []diagnostic.FinancialItem{{Id: "inst-1", Name: "Notebook", Value: 250.30}},
		},
		Debts: []diagnostic.DebtItem{
			{FinancialItem: diagnostic.FinancialItem{Id: "debt-1", Name: "Financiamento (Banco Azul)", Value: 820.5}, TotalInstallments: 24, RemainingInstallments: 24},
		},
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("should derive every aggregate and the balance", func(t *testing.T) {
		// when
		totals := ComputeTotals(sampleRecord())

		// then
		assert.Equal(t, "4500.10", totals.Income.StringFixed(2))
		assert.Equal(t, "1400.00", totals.FixedExpenses.StringFixed(2))
		assert.Equal(t, "900.20", totals.EstimatedExpenses.StringFixed(2))
		assert.Equal(t, "250.30", totals.CardInstallments.StringFixed(2))
		assert.Equal(t, "820.50", totals.Debts.StringFixed(2))
		assert.Equal(t, "1129.10", totals.Balance.StringFixed(2))
	})

	t.Run("should not accumulate float noise over many rows", func(t *testing.T) {
		// given
		record := diagnostic.DiagnosticRecord{}
		for i := 0; i < 100; i++ {
			record.Income = append(record.Income, diagnostic.FinancialItem{Value: 0.1})
		}

		// when
		totals := ComputeTotals(record)

		// then
		assert.Equal(t, "10.00", totals.Income.StringFixed(2))
		assert.Equal(t, "10.00", totals.Balance.StringFixed(2))
	})

	t.Run("should report a negative balance when expenses exceed income", func(t *testing.T) {
		// given
		record := sampleRecord()
		record.Income = []diagnostic.FinancialItem{{Id: "income-main", Name: "Salário", Value: 1000}}

		// when
		totals := ComputeTotals(record)

		// then
		assert.True(t, totals.Balance.IsNegative())
	})
}
