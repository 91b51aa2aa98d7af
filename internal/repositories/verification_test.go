package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVerificationRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewVerificationWriteRepository(db)
	readRepo := NewVerificationReadRepository(db)
	ctx := context.Background()

	user, err := userRepo.Save(ctx, "John", "Doe", "john@example.com", "hashed-password")
	assert.NoError(t, err)

	token := uuid.New()
	expiry := time.Now().Add(30 * time.Minute).UTC()

	t.Run("save and get", func(t *testing.T) {
		err := writeRepo.Save(ctx, token, user.UserID, expiry)
		assert.NoError(t, err)

		verification, err := readRepo.GetByToken(ctx, token)
		assert.NoError(t, err)
		assert.NotNil(t, verification)
		assert.Equal(t, token, verification.Token)
		assert.Equal(t, user.UserID, verification.UserID)
		assert.False(t, verification.Verified)
		assert.WithinDuration(t, expiry, verification.ExpiryTime, time.Second)
	})

	t.Run("unknown token returns nil", func(t *testing.T) {
		verification, err := readRepo.GetByToken(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, verification)
	})

	t.Run("mark verified flips token and user", func(t *testing.T) {
		err := writeRepo.MarkVerified(ctx, token, user.UserID)
		assert.NoError(t, err)

		verification, err := readRepo.GetByToken(ctx, token)
		assert.NoError(t, err)
		assert.NotNil(t, verification)
		assert.True(t, verification.Verified)

		updated, err := NewUserReadRepository(db).GetByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.True(t, updated.Verified)
	})
}
