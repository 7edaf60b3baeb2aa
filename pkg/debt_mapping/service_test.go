package debt_mapping

import (
	"context"
	"testing"

	"github.com/balanco/balanco/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = user.WithUser(context.Background(), user.User{Id: 1})

var repoStub = NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	service = NewService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should assign an id when the item has none", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, DebtMapItem{Name: "Financiamento do carro", Creditor: "Banco Azul", InstallmentValue: 820.5, RemainingInstallments: 24})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, "Banco Azul", created.Creditor)
	})

	t.Run("should floor remaining installments at one", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, DebtMapItem{Name: "Cartão atrasado", Creditor: "Loja X", InstallmentValue: 120, RemainingInstallments: 0})

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, created.RemainingInstallments)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(context.Background(), DebtMapItem{Name: "Empréstimo"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_GetAll(t *testing.T) {
	t.Run("should list items in insertion order", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		first, err := service.Create(ctx, DebtMapItem{Name: "Financiamento", Creditor: "Banco Azul", InstallmentValue: 820.5, RemainingInstallments: 24})
		require.NoError(t, err)
		second, err := service.Create(ctx, DebtMapItem{Name: "Empréstimo pessoal", Creditor: "Fintech Y", InstallmentValue: 310, RemainingInstallments: 6})
		require.NoError(t, err)

		// when
		items, err := service.GetAll(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first.Id, items[0].Id)
		assert.Equal(t, second.Id, items[1].Id)
	})
}

func TestServiceImpl_UpdateAndDelete(t *testing.T) {
	t.Run("should report a missing item on update", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		ok, err := service.Update(ctx, DebtMapItem{Id: "missing", Name: "Empréstimo", RemainingInstallments: 3})

		// then
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should delete an owned item", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, DebtMapItem{Name: "Consórcio", Creditor: "Adm Z", InstallmentValue: 540, RemainingInstallments: 12})
		require.NoError(t, err)

		// when
		ok, err := service.Delete(ctx, created.Id)

		// then
		assert.NoError(t, err)
		assert.True(t, ok)
		items, err := service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}
