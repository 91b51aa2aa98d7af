package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

func TestDeleteImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := newTestUser("john@example.com")

	tests := []struct {
		name          string
		mockSetup     func(users *MockUserGetter, images *MockImageDeleter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(users *MockUserGetter, images *MockImageDeleter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					DeleteImage(gomock.Any(), user.UserID).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "image not found",
			mockSetup: func(users *MockUserGetter, images *MockImageDeleter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					DeleteImage(gomock.Any(), user.UserID).
					Return(services.ErrImageNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrImageNotFound.Error(),
		},
		{
			name: "user not found",
			mockSetup: func(users *MockUserGetter, images *MockImageDeleter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrUserNotFound.Error(),
		},
		{
			name: "internal server error",
			mockSetup: func(users *MockUserGetter, images *MockImageDeleter) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					DeleteImage(gomock.Any(), user.UserID).
					Return(errors.New("s3 down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := NewMockUserGetter(ctrl)
			mockImages := NewMockImageDeleter(ctrl)
			tt.mockSetup(mockUsers, mockImages)

			handler := NewDeleteImageHandler(mockUsers, mockImages)

			req := httptest.NewRequest(http.MethodDelete, "/v1/user/self/pic", nil)
			req = req.WithContext(middlewares.SetEmailToContext(req.Context(), "john@example.com"))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
