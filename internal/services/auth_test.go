package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)},
			expectJWT: "token123",
		},
		{
			name:      "unknown email",
			email:     "ghost@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(mockReader, mockJWT)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().Generate(gomock.Any(), tt.email).Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed)}

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockJWTGenerator(ctrl))

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	assert.NoError(t, svc.Authenticate(context.Background(), "alice@example.com", "password123"))

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	assert.ErrorIs(t, svc.Authenticate(context.Background(), "alice@example.com", "nope"),
		services.ErrInvalidCredentials)
}
