package prefill

import (
	"math"
	"testing"

	"github.com/balanco/balanco/pkg/cost_of_living"
	"github.com/balanco/balanco/pkg/debt_mapping"
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDebts(t *testing.T) {
	existing := []diagnostic.DebtItem{
		{FinancialItem: diagnostic.FinancialItem{Id: "debt-1", Name: "Empréstimo antigo", Value: 200}, TotalInstallments: 10, RemainingInstallments: 4},
	}

	t.Run("should keep the existing list when there is nothing to map", func(t *testing.T) {
		// when
		result := MapDebts(existing, nil)

		// then
		assert.Equal(t, existing, result)
	})

	t.Run("should map each entry and reset the installment snapshot", func(t *testing.T) {
		// given
		items := []debt_mapping.DebtMapItem{
			{Id: "a", Name: "Financiamento", Creditor: "Banco Azul", InstallmentValue: 820.5, RemainingInstallments: 24},
			{Id: "b", Name: "Empréstimo", Creditor: "Fintech Y", InstallmentValue: 310, RemainingInstallments: 6},
		}

		// when
		result := MapDebts(existing, items)

		// then
		require.Len(t, result, 2)
		assert.Equal(t, "Financiamento (Banco Azul)", result[0].Name)
		assert.Equal(t, 820.5, result[0].Value)
		assert.Equal(t, result[0].RemainingInstallments, result[0].TotalInstallments)
		assert.Equal(t, 24, result[0].TotalInstallments)
		assert.Equal(t, "Empréstimo (Fintech Y)", result[1].Name)
		assert.Equal(t, 6, result[1].TotalInstallments)
	})
}

func TestMapCategoriesToItems(t *testing.T) {
	t.Run("should sum matched categories only", func(t *testing.T) {
		// given
		items := []cost_of_living.LineItem{
			{Id: "1", Category: "A", Name: "um", Value: 10},
			{Id: "2", Category: "A", Name: "dois", Value: 5},
			{Id: "3", Category: "C", Name: "três", Value: 100},
		}

		// when
		result := MapCategoriesToItems([]string{"A", "B"}, items)

		// then
		require.Len(t, result, 1)
		assert.Equal(t, diagnostic.FinancialItem{Id: "prefill-A", Name: "A", Value: 15}, result[0])
	})

	t.Run("should treat a corrupt value as zero without dropping the group", func(t *testing.T) {
		// given
		items := []cost_of_living.LineItem{
			{Id: "1", Category: "Moradia", Value: 800},
			{Id: "2", Category: "Moradia", Value: math.NaN()},
		}

		// when
		result := MapCategoriesToItems([]string{"Moradia"}, items)

		// then
		require.Len(t, result, 1)
		assert.Equal(t, 800.0, result[0].Value)
	})

	t.Run("should order groups by first appearance in the input", func(t *testing.T) {
		// given
		items := []cost_of_living.LineItem{
			{Id: "1", Category: "Transporte", Value: 300},
			{Id: "2", Category: "Moradia", Value: 800},
			{Id: "3", Category: "Transporte", Value: 50},
		}

		// when
		result := MapCategoriesToItems([]string{"Moradia", "Transporte"}, items)

		// then
		require.Len(t, result, 2)
		assert.Equal(t, "prefill-Transporte", result[0].Id)
		assert.Equal(t, 350.0, result[0].Value)
		assert.Equal(t, "prefill-Moradia", result[1].Id)
	})

	t.Run("should return an empty list when nothing matches", func(t *testing.T) {
		// given
		items := []cost_of_living.LineItem{{Id: "1", Category: "C", Value: 100}}

		// when
		result := MapCategoriesToItems([]string{"A"}, items)

		// then
		assert.Empty(t, result)
	})
}
