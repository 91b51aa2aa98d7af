package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrNotificationFailed is returned when the verification message could not be
// handed to the notification topic.
var ErrNotificationFailed = errors.New("failed to publish verification message")

// VerificationReader defines read-only operations for verification tokens.
type VerificationReader interface {
	GetByToken(ctx context.Context, token uuid.UUID) (*models.VerificationDB, error)
}

// VerificationWriter defines write operations for verification tokens.
type VerificationWriter interface {
	Save(ctx context.Context, token, userID uuid.UUID, expiryTime time.Time) error
	MarkVerified(ctx context.Context, token, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VerificationMetrics is the slice of the metrics collector this service records to.
type VerificationMetrics interface {
	ObserveDBOperation(d time.Duration)
}

// VerificationService owns the token lifecycle: issuance, expiry check and
// single-use consumption.
type VerificationService struct {
	reader      VerificationReader
	writer      VerificationWriter
	kafkaWriter KafkaWriter
	expiry      time.Duration
	metrics     VerificationMetrics
	consuming   *keyedMutex
}

// NewVerificationService creates a new VerificationService. Tokens expire
// after the given duration.
func NewVerificationService(reader VerificationReader, writer VerificationWriter, kafkaWriter KafkaWriter, expiry time.Duration, metrics VerificationMetrics) *VerificationService {
	return &VerificationService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		expiry:      expiry,
		metrics:     metrics,
		consuming:   newKeyedMutex(),
	}
}

// IssueToken creates a pending token for the user and publishes the
// verification message. Persistence and publish failures are logged and
// surface as a single error; there are no retries. A previously issued token
// is not revoked.
func (svc *VerificationService) IssueToken(ctx context.Context, user *models.UserDB) error {
	token := uuid.New()
	expiryTime := time.Now().Add(svc.expiry)

	if err := svc.writer.Save(ctx, token, user.UserID, expiryTime); err != nil {
		logger.Log.Errorw("failed to save verification token", "email", user.Email, "err", err)
		return err
	}

	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping verification message", "email", user.Email)
		return nil
	}

	data, err := json.Marshal(models.VerificationMessage{
		Email:             user.Email,
		FirstName:         user.FirstName,
		VerificationToken: token.String(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal verification message", "email", user.Email, "err", err)
		return ErrNotificationFailed
	}

	msg := kafka.Message{
		Key:   []byte(user.Email),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish verification message", "email", user.Email, "err", err)
		return ErrNotificationFailed
	}

	logger.Log.Infow("verification message published", "email", user.Email)
	return nil
}

// ConsumeToken attempts to consume a verification token. It returns true only
// when the token exists, has not been consumed before and has not expired; on
// success the user's and the token's verified flags flip together. The checks
// run in this order: existence, already-consumed, expiry. All failure causes
// collapse to false for the caller; the cause is logged.
func (svc *VerificationService) ConsumeToken(ctx context.Context, token string) bool {
	id, err := uuid.Parse(token)
	if err != nil {
		logger.Log.Errorw("malformed verification token", "token", token)
		return false
	}

	svc.consuming.lock(id.String())
	defer svc.consuming.unlock(id.String())

	verification, err := svc.reader.GetByToken(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read verification token", "token", token, "err", err)
		return false
	}
	if verification == nil {
		logger.Log.Errorw("unknown verification token", "token", token)
		return false
	}

	if verification.Verified {
		logger.Log.Errorw("verification token already consumed", "token", token)
		return false
	}

	if time.Now().After(verification.ExpiryTime) {
		logger.Log.Errorw("verification token expired", "token", token, "expiry_time", verification.ExpiryTime)
		return false
	}

	start := time.Now()
	if err := svc.writer.MarkVerified(ctx, verification.Token, verification.UserID); err != nil {
		logger.Log.Errorw("failed to mark verified", "token", token, "err", err)
		return false
	}
	svc.metrics.ObserveDBOperation(time.Since(start))

	logger.Log.Infow("user verified", "user_id", verification.UserID)
	return true
}
