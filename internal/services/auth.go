package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, email string) (string, error)
}

// AuthService authenticates accounts by email and password.
type AuthService struct {
	reader UserReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates the credentials and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := svc.Authenticate(ctx, email, password); err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate checks an email/password pair against the credential store.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return ErrInvalidCredentials
	}

	return nil
}
