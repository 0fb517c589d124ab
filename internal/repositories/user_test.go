package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/saeedpay/wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserCreateAndGet(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(conn, nil)
	reader := NewUserReadRepository(conn)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		PhoneNumber:  "09125000001",
		PasswordHash: "hash",
	}
	assert.NoError(t, writer.Create(ctx, user))

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := reader.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)

		missing, err := reader.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetByPhone", func(t *testing.T) {
		got, err := reader.GetByPhone(ctx, "09125000001")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := reader.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
	})
}

func TestUserCreateDuplicate(t *testing.T) {
	conn, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(conn, nil)

	assert.NoError(t, writer.Create(ctx, &models.UserDB{
		UserID:       uuid.New(),
		Username:     "bob",
		PhoneNumber:  "09125000002",
		PasswordHash: "hash",
	}))

	err := writer.Create(ctx, &models.UserDB{
		UserID:       uuid.New(),
		Username:     "bob",
		PhoneNumber:  "09125000003",
		PasswordHash: "hash",
	})
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	err = writer.Create(ctx, &models.UserDB{
		UserID:       uuid.New(),
		Username:     "bob2",
		PhoneNumber:  "09125000002",
		PasswordHash: "hash",
	})
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
