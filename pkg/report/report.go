package report

import (
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/shopspring/decimal"
)

// Totals are the derived money aggregates of one diagnostic record. They are
// accumulated as decimals so repeated additions do not pick up float noise.
type Totals struct {
	Income            decimal.Decimal
	FixedExpenses     decimal.Decimal
	EstimatedExpenses decimal.Decimal
	CardInstallments  decimal.Decimal
	Debts             decimal.Decimal
	// Balance is Income minus every expense aggregate. Negative means the
	// month closes in the red.
	Balance decimal.Decimal
}

// Report is what the presentation layer receives: the record itself plus the
// derived totals.
type Report struct {
	Record diagnostic.DiagnosticRecord
	Totals Totals
}

func ComputeTotals(record diagnostic.DiagnosticRecord) Totals {
	totals := Totals{
		Income:            sumItems(record.Income),
		FixedExpenses:     sumItems(record.FixedExpenses),
		EstimatedExpenses: sumItems(record.EstimatedExpenses),
		CardInstallments:  sumItems(record.CreditCard.Installments),
		Debts:             decimal.Zero,
	}
	for _, debt := range record.Debts {
		totals.Debts = totals.Debts.Add(decimal.NewFromFloat(debt.Value))
	}
	totals.Balance = totals.Income.
		Sub(totals.FixedExpenses).
		Sub(totals.EstimatedExpenses).
		Sub(totals.CardInstallments).
		Sub(totals.Debts)
	return totals
}

func sumItems(items []diagnostic.FinancialItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Value))
	}
	return sum
}
