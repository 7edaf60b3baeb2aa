package changeset

import (
	"fmt"
	"math"

	"github.com/balanco/balanco/pkg/diagnostic"
)

// Epsilon is the noise threshold for currency comparisons: item values below
// it are treated as unfilled placeholder rows, and two sums closer than it
// are considered equal.
const Epsilon = 0.01

// Diff compares two snapshots of a diagnostic record and returns a
// human-readable description of each detected change, in a fixed order:
// work profile fields, then the item lists (income, fixed expenses,
// variable expenses, debts), then the credit card fields.
//
// For each item list the near-zero rows are filtered out first. When the
// filtered sums differ beyond Epsilon a single total-changed entry is
// emitted and the item count is not compared: the sum change already implies
// a change and reporting both would be noise. When the sums match, a count
// mismatch is still reported, which catches items added or removed that
// happen to net out to the same total.
//
// The output is deterministic: the same two snapshots always produce the
// same entries in the same order.
func Diff(old, new diagnostic.DiagnosticRecord) []string {
	changes := []string{}

	if old.Work.DaysPerWeek != new.Work.DaysPerWeek {
		changes = append(changes, fmt.Sprintf("Dias de trabalho por semana alterados de %d para %d",
			old.Work.DaysPerWeek, new.Work.DaysPerWeek))
	}
	if old.Work.HoursPerDay != new.Work.HoursPerDay {
		changes = append(changes, fmt.Sprintf("Horas de trabalho por dia alteradas de %d para %d",
			old.Work.HoursPerDay, new.Work.HoursPerDay))
	}
	if old.Work.IncomeType != new.Work.IncomeType {
		changes = append(changes, fmt.Sprintf("Tipo de renda alterado de %s para %s",
			old.Work.IncomeType, new.Work.IncomeType))
	}

	changes = append(changes, diffItemList("Renda", old.Income, new.Income)...)
	changes = append(changes, diffItemList("Despesas fixas", old.FixedExpenses, new.FixedExpenses)...)
	changes = append(changes, diffItemList("Despesas variáveis", old.EstimatedExpenses, new.EstimatedExpenses)...)
	changes = append(changes, diffItemList("Dívidas", debtValues(old.Debts), debtValues(new.Debts))...)

	if len(old.CreditCard.Cards) != len(new.CreditCard.Cards) {
		changes = append(changes, "Quantidade de cartões de crédito alterada")
	}

	oldInstallments := sumValues(filterNoise(old.CreditCard.Installments))
	newInstallments := sumValues(filterNoise(new.CreditCard.Installments))
	if math.Abs(oldInstallments-newInstallments) > Epsilon {
		changes = append(changes, fmt.Sprintf("Parcelamentos do cartão: total alterado para %.2f", newInstallments))
	}

	return changes
}

func diffItemList(category string, old, new []diagnostic.FinancialItem) []string {
	oldFiltered := filterNoise(old)
	newFiltered := filterNoise(new)

	oldSum := sumValues(oldFiltered)
	newSum := sumValues(newFiltered)

	if math.Abs(oldSum-newSum) > Epsilon {
		return []string{fmt.Sprintf("%s: total alterado para %.2f", category, newSum)}
	}
	if len(oldFiltered) != len(newFiltered) {
		return []string{fmt.Sprintf("%s: quantidade de itens alterada", category)}
	}
	return nil
}

// filterNoise drops rows whose absolute value is below Epsilon. A zero or
// near-zero row is an unfilled placeholder, not data.
func filterNoise(items []diagnostic.FinancialItem) []diagnostic.FinancialItem {
	filtered := make([]diagnostic.FinancialItem, 0, len(items))
	for _, item := range items {
		if math.Abs(item.Value) >= Epsilon {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func sumValues(items []diagnostic.FinancialItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Value
	}
	return sum
}

func debtValues(debts []diagnostic.DebtItem) []diagnostic.FinancialItem {
	items := make([]diagnostic.FinancialItem, 0, len(debts))
	for _, d := range debts {
		items = append(items, d.FinancialItem)
	}
	return items
}
