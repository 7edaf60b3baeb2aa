package cost_of_living

import (
	"context"
	"os"
	"testing"

	"github.com/balanco/balanco/internal/test_utils"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var pgContainer *postgres.PostgresContainer
var openDb func() *pgxpool.Pool

func TestMain(m *testing.M) {
	pgContainer, openDb = test_utils.TestWithDB()
	code := m.Run()
	if err := testcontainers.TerminateContainer(pgContainer); err != nil {
		log.Errorf("failed to terminate container: %s", err)
	}
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, Repository, int) {
	ctx := context.Background()
	db := openDb()
	repository := NewRepository(db)
	t.Cleanup(func() {
		db.Close()
		err := pgContainer.Restore(ctx)
		require.NoError(t, err)
	})

	var userId int
	err := db.QueryRow(ctx,
		"INSERT INTO users (uid, username, display_name, role) VALUES ($1, $2, $3, $4) RETURNING id",
		"test-uid", "client1", "Cliente de Teste", "client",
	).Scan(&userId)
	require.NoError(t, err)
	return ctx, repository, userId
}

func TestRepositoryImpl_Store(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	stored, err := repo.Store(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1400})
	assert.NoError(t, err)

	// then
	items, err := repo.GetAll(ctx, userId)
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, stored, items[0])
}

func TestRepositoryImpl_GetAll(t *testing.T) {
	t.Run("should return items in creation order", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1400})
		require.NoError(t, err)
		_, err = repo.Store(ctx, userId, LineItem{Id: "item-2", Category: "Transporte", Name: "Combustível", Value: 300})
		require.NoError(t, err)

		// when
		items, err := repo.GetAll(ctx, userId)

		// then
		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "item-1", items[0].Id)
		assert.Equal(t, "item-2", items[1].Id)
	})

	t.Run("should not return items of another user", func(t *testing.T) {
		// given
		ctx, repo, userId := setupTestRepository(t)
		_, err := repo.Store(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1400})
		require.NoError(t, err)

		// when
		items, err := repo.GetAll(ctx, userId+1)

		// then
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRepositoryImpl_Update(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	_, err := repo.Store(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1400})
	require.NoError(t, err)

	// when
	updated, err := repo.Update(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1550})

	// then
	assert.NoError(t, err)
	assert.True(t, updated)
	items, err := repo.GetAll(ctx, userId)
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1550.0, items[0].Value)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	_, err := repo.Store(ctx, userId, LineItem{Id: "item-1", Category: "Moradia", Name: "Aluguel", Value: 1400})
	require.NoError(t, err)

	// when
	deleted, err := repo.Delete(ctx, userId, "item-1")

	// then
	assert.NoError(t, err)
	assert.True(t, deleted)
	items, err := repo.GetAll(ctx, userId)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
