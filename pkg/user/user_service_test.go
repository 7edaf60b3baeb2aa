package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoStub = NewStubUserRepository()

var service Service

func setup(t *testing.T) func() {
	service = NewUserService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestUserServiceImpl_CreateUser(t *testing.T) {
	t.Run("should assign a uid and the client role by default", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateUser(context.Background(), User{Username: "maria", DisplayName: "Maria"})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Uid)
		assert.Equal(t, RoleClient, created.Role)
		assert.NotZero(t, created.Id)
	})

	t.Run("should keep an explicit uid and role", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateUser(context.Background(), User{Uid: "uid-admin", Username: "staff", Role: RoleAdmin})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "uid-admin", created.Uid)
		assert.True(t, created.IsAdmin())
	})
}

func TestUserServiceImpl_GetCurrentUser(t *testing.T) {
	t.Run("should load the user from the context id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "maria", DisplayName: "Maria"})
		require.NoError(t, err)
		ctx := WithUser(context.Background(), created)

		// when
		current, err := service.GetCurrentUser(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, created.Id, current.Id)
		assert.Equal(t, "maria", current.Username)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetCurrentUser(context.Background())

		// then
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrNoUser)
	})
}

func TestUserServiceImpl_GetUserByUid(t *testing.T) {
	t.Run("should find a user by uid", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Uid: "uid-maria", Username: "maria"})
		require.NoError(t, err)

		// when
		found, err := service.GetUserByUid(context.Background(), "uid-maria")

		// then
		assert.NoError(t, err)
		assert.Equal(t, created.Id, found.Id)
	})

	t.Run("should return ErrUserNotFound for an unknown uid", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetUserByUid(context.Background(), "missing")

		// then
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserServiceImpl_UpdateUser(t *testing.T) {
	t.Run("should update the authenticated user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "maria", DisplayName: "Maria"})
		require.NoError(t, err)
		ctx := WithUser(context.Background(), created)
		created.DisplayName = "Maria Silva"

		// when
		updated, err := service.UpdateUser(ctx, created)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Maria Silva", updated.DisplayName)
		stored, err := service.GetUser(ctx, created.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Maria Silva", stored.DisplayName)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.UpdateUser(context.Background(), User{Username: "maria"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestUserServiceImpl_DeleteUser(t *testing.T) {
	t.Run("should delete a user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateUser(context.Background(), User{Username: "maria"})
		require.NoError(t, err)

		// when
		err = service.DeleteUser(context.Background(), created.Id)

		// then
		assert.NoError(t, err)
		_, err = service.GetUser(context.Background(), created.Id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
