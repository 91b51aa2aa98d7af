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

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mockSetup     func(m *MockUserGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(newTestUser("john@example.com"), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "user not found",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrUserNotFound.Error(),
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/v1/user/self", nil)
			req = req.WithContext(middlewares.SetEmailToContext(req.Context(), "john@example.com"))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp UserResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "john@example.com", resp.Email)
			}
		})
	}
}
