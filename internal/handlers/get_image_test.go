package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/models"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

func newTestImage(userID uuid.UUID) *models.UserImageDB {
	return &models.UserImageDB{
		ImageID:     uuid.New(),
		UserID:      userID,
		FileName:    "avatar.png",
		ObjectKey:   "users/" + userID.String() + "/avatar.png",
		ContentType: "image/png",
		SizeBytes:   1024,
		UploadDate:  time.Now(),
		URL:         "bucket/users/" + userID.String() + "/avatar.png",
	}
}

func TestGetImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := newTestUser("john@example.com")

	tests := []struct {
		name          string
		mockSetup     func(users *MockUserGetter, images *MockImageGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(users *MockUserGetter, images *MockImageGetter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					GetImage(gomock.Any(), user.UserID).
					Return(newTestImage(user.UserID), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user not found",
			mockSetup: func(users *MockUserGetter, images *MockImageGetter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrUserNotFound.Error(),
		},
		{
			name: "image not found",
			mockSetup: func(users *MockUserGetter, images *MockImageGetter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					GetImage(gomock.Any(), user.UserID).
					Return(nil, services.ErrImageNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrImageNotFound.Error(),
		},
		{
			name: "internal server error",
			mockSetup: func(users *MockUserGetter, images *MockImageGetter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					GetImage(gomock.Any(), user.UserID).
					Return(nil, errors.New("s3 down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := NewMockUserGetter(ctrl)
			mockImages := NewMockImageGetter(ctrl)
			tt.mockSetup(mockUsers, mockImages)

			handler := NewGetImageHandler(mockUsers, mockImages)

			req := httptest.NewRequest(http.MethodGet, "/v1/user/self/pic", nil)
			req = req.WithContext(middlewares.SetEmailToContext(req.Context(), "john@example.com"))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp ImageResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "avatar.png", resp.FileName)
				assert.Equal(t, "image/png", resp.ContentType)
				assert.NotEmpty(t, resp.URL)
			}
		})
	}
}
