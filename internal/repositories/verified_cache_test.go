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

func TestVerifiedCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
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

	repo := NewVerifiedCacheRepository(rdb, 2*time.Second)

	t.Run("miss before set", func(t *testing.T) {
		verified, ok, err := repo.Get(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, verified)
	})

	t.Run("set and get", func(t *testing.T) {
		err := repo.Set(ctx, "john@example.com", true)
		assert.NoError(t, err)

		verified, ok, err := repo.Get(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, verified)
	})

	t.Run("entry expires", func(t *testing.T) {
		err := repo.Set(ctx, "jane@example.com", true)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, ok, err := repo.Get(ctx, "jane@example.com")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
