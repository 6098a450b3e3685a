package repository

import (
	"context"
	"testing"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/snapchallan/rewards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateUser(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("creates user with wallet account", func(t *testing.T) {
		setupTestData(t, testDB)

		user := &models.User{
			PhoneNumber: "+919876543210",
			Password:    "fakehash",
			Role:        models.RoleCitizen,
		}
		require.NoError(t, r.CreateUser(ctx, user))
		assert.NotZero(t, user.ID)

		var balance int64
		var frozen bool
		require.NoError(t, testDB.QueryRow(`
			SELECT balance, frozen FROM accounts WHERE user_id = $1
		`, user.ID).Scan(&balance, &frozen))
		assert.Equal(t, int64(0), balance)
		assert.False(t, frozen)
	})

	t.Run("duplicate phone number", func(t *testing.T) {
		setupTestData(t, testDB)

		user := &models.User{
			PhoneNumber: "+911111111111",
			Password:    "fakehash",
			Role:        models.RoleCitizen,
		}
		err := r.CreateUser(ctx, user)
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestUserRepo_GetUserByPhone(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("existing user", func(t *testing.T) {
		user, err := r.GetUserByPhone(ctx, "+913333333333")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, models.RoleOfficer, user.Role)
	})

	t.Run("unknown phone number", func(t *testing.T) {
		_, err := r.GetUserByPhone(ctx, "+910000000000")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
