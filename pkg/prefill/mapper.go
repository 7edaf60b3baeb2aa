package prefill

import (
	"fmt"
	"math"

	"github.com/balanco/balanco/pkg/cost_of_living"
	"github.com/balanco/balanco/pkg/debt_mapping"
	"github.com/balanco/balanco/pkg/diagnostic"
)

// MapDebts turns debt mapping entries into wizard debt rows. An empty input
// returns the existing list untouched so a prefill never wipes user data.
// The remaining installment count becomes the new total: the progress bar
// restarts at today's snapshot.
func MapDebts(existing []diagnostic.DebtItem, items []debt_mapping.DebtMapItem) []diagnostic.DebtItem {
	if len(items) == 0 {
		return existing
	}

	debts := make([]diagnostic.DebtItem, 0, len(items))
	for _, item := range items {
		debts = append(debts, diagnostic.DebtItem{
			FinancialItem: diagnostic.FinancialItem{
				Id:    item.Id,
				Name:  fmt.Sprintf("%s (%s)", item.Name, item.Creditor),
				Value: item.InstallmentValue,
			},
			TotalInstallments:     item.RemainingInstallments,
			RemainingInstallments: item.RemainingInstallments,
		})
	}
	return debts
}

// MapCategoriesToItems folds cost of living rows into one wizard item per
// matched category. Categories appear in the order they were first seen in
// the input, which keeps repeated calls deterministic.
func MapCategoriesToItems(categories []string, items []cost_of_living.LineItem) []diagnostic.FinancialItem {
	targets := make(map[string]bool, len(categories))
	for _, category := range categories {
		targets[category] = true
	}

	sums := map[string]float64{}
	var order []string
	for _, item := range items {
		if !targets[item.Category] {
			continue
		}
		if _, seen := sums[item.Category]; !seen {
			order = append(order, item.Category)
		}
		sums[item.Category] += safeValue(item.Value)
	}

	result := make([]diagnostic.FinancialItem, 0, len(order))
	for _, category := range order {
		result = append(result, diagnostic.FinancialItem{
			Id:    "prefill-" + category,
			Name:  category,
			Value: sums[category],
		})
	}
	return result
}

// safeValue treats NaN and infinities as zero so one bad row cannot poison
// a category total.
func safeValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
