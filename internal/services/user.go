package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("user with this email already exists")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters long")
	ErrEmailImmutable         = errors.New("email cannot be changed")
	ErrUserNotFound           = errors.New("user not found")
)

const minPasswordLength = 8

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, firstName, lastName, email, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, email string, firstName, lastName, passwordHash *string) (*models.UserDB, error)
}

// VerificationIssuer issues an email verification token for a new user.
type VerificationIssuer interface {
	IssueToken(ctx context.Context, user *models.UserDB) error
}

// VerifiedCache caches positive verification lookups.
type VerifiedCache interface {
	Get(ctx context.Context, email string) (verified bool, ok bool, err error)
	Set(ctx context.Context, email string, verified bool) error
}

// UserMetrics is the slice of the metrics collector the user service records to.
type UserMetrics interface {
	IncUserCreations()
	ObserveDBOperation(d time.Duration)
}

// UserService handles account creation, lookup, update and verification checks.
type UserService struct {
	reader  UserReader
	writer  UserWriter
	issuer  VerificationIssuer
	cache   VerifiedCache
	metrics UserMetrics
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, issuer VerificationIssuer, cache VerifiedCache, metrics UserMetrics) *UserService {
	return &UserService{
		reader:  reader,
		writer:  writer,
		issuer:  issuer,
		cache:   cache,
		metrics: metrics,
	}
}

// CreateUser registers a new unverified account and issues a verification
// token for it. A token-issuance failure aborts the call; the persisted user
// is intentionally left in place (registration can be retried server-side
// without re-creating the account).
func (svc *UserService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*models.UserDB, error) {
	start := time.Now()

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	if len(password) < minPasswordLength {
		logger.Log.Errorw("password validation failed", "email", email)
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, firstName, lastName, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "err", err)
		return nil, err
	}

	if err := svc.issuer.IssueToken(ctx, user); err != nil {
		logger.Log.Errorw("failed to issue verification token", "email", email, "err", err)
		return nil, err
	}

	svc.metrics.IncUserCreations()
	svc.metrics.ObserveDBOperation(time.Since(start))

	return user, nil
}

// GetUserByEmail returns the user for the email or ErrUserNotFound.
func (svc *UserService) GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser changes first/last name and, when a password is supplied,
// re-validates and re-hashes it. The email is immutable after creation.
func (svc *UserService) UpdateUser(ctx context.Context, currentEmail, email string, firstName, lastName, password *string) (*models.UserDB, error) {
	start := time.Now()

	if email != currentEmail {
		logger.Log.Errorw("email change attempted", "email", currentEmail)
		return nil, ErrEmailImmutable
	}

	var passwordHash *string
	if password != nil {
		if len(*password) < minPasswordLength {
			logger.Log.Errorw("password validation failed", "email", currentEmail)
			return nil, ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		h := string(hashed)
		passwordHash = &h
	}

	user, err := svc.writer.Update(ctx, currentEmail, firstName, lastName, passwordHash)
	if err != nil {
		logger.Log.Errorw("failed to update user", "email", currentEmail, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	svc.metrics.ObserveDBOperation(time.Since(start))

	return user, nil
}

// IsUserVerified reports the verification status of the email. Unknown emails
// and lookup failures both report false; the access gate treats the answer as
// advisory, never as an error.
func (svc *UserService) IsUserVerified(ctx context.Context, email string) bool {
	if verified, ok, err := svc.cache.Get(ctx, email); err == nil && ok {
		return verified
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return false
	}

	if user.Verified {
		// Only a positive answer is cached: the flag flips once.
		if err := svc.cache.Set(ctx, email, true); err != nil {
			logger.Log.Errorw("failed to cache verified flag", "email", email, "err", err)
		}
	}
	return user.Verified
}
