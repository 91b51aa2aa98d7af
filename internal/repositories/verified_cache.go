package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
)

// VerifiedCacheRepository caches positive verification lookups in Redis so the
// access gate does not hit the database on every request. Only verified=true is
// cached: the flag flips exactly once, so a true entry can never go stale.
type VerifiedCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewVerifiedCacheRepository creates a new repository instance with the given TTL.
func NewVerifiedCacheRepository(client *redis.Client, expiration time.Duration) *VerifiedCacheRepository {
	return &VerifiedCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func verifiedKey(email string) string {
	return fmt.Sprintf("user_verified:%s", email)
}

// Get reports whether a cached verified flag exists for the email.
// The second return value is false on a cache miss.
func (r *VerifiedCacheRepository) Get(ctx context.Context, email string) (bool, bool, error) {
	key := verifiedKey(email)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		logger.Log.Errorw("verified cache get failed", "key", key, "error", err)
		return false, false, err
	}

	logger.Log.Infow("verified cache hit", "key", key, "value", val)
	return val == "1", true, nil
}

// Set caches the verified flag for the email.
func (r *VerifiedCacheRepository) Set(ctx context.Context, email string, verified bool) error {
	key := verifiedKey(email)

	val := "0"
	if verified {
		val = "1"
	}

	err := r.client.Set(ctx, key, val, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("verified cache set failed", "key", key, "error", err)
	}
	return err
}
