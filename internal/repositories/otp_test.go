package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestOTPRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewOTPRepository(rdb, 2*time.Second)

	t.Run("Set and Get", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "09126000001", "payment", "12345"))

		code, err := repo.Get(ctx, "09126000001", "payment")
		assert.NoError(t, err)
		assert.Equal(t, "12345", code)
	})

	t.Run("Purposes are isolated", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "09126000002", "payment", "11111"))

		_, err := repo.Get(ctx, "09126000002", "transfer")
		assert.ErrorIs(t, err, ErrOTPNotFound)
	})

	t.Run("Resend replaces the code", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "09126000003", "payment", "11111"))
		assert.NoError(t, repo.Set(ctx, "09126000003", "payment", "22222"))

		code, err := repo.Get(ctx, "09126000003", "payment")
		assert.NoError(t, err)
		assert.Equal(t, "22222", code)
	})

	t.Run("Delete makes the code single use", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "09126000004", "payment", "12345"))
		assert.NoError(t, repo.Delete(ctx, "09126000004", "payment"))

		_, err := repo.Get(ctx, "09126000004", "payment")
		assert.ErrorIs(t, err, ErrOTPNotFound)
	})

	t.Run("Expired code vanishes", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "09126000005", "payment", "12345"))
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, "09126000005", "payment")
		assert.ErrorIs(t, err, ErrOTPNotFound)
	})
}
