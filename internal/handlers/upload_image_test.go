package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"
)

func newMultipartBody(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := newTestUser("john@example.com")
	content := []byte("png bytes")

	tests := []struct {
		name          string
		fieldName     string
		mockSetup     func(users *MockUserGetter, images *MockImageUploader)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "success",
			fieldName: "file",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					UploadImage(gomock.Any(), user, "avatar.png", "image/png", int64(len(content)), gomock.Any()).
					Return(newTestImage(user.UserID), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:      "wrong field name",
			fieldName: "upload",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing file field",
		},
		{
			name:      "unsupported type",
			fieldName: "file",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					UploadImage(gomock.Any(), user, "avatar.png", "image/png", int64(len(content)), gomock.Any()).
					Return(nil, services.ErrInvalidFileType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: services.ErrInvalidFileType.Error(),
		},
		{
			name:      "duplicate image",
			fieldName: "file",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					UploadImage(gomock.Any(), user, "avatar.png", "image/png", int64(len(content)), gomock.Any()).
					Return(nil, services.ErrDuplicateImage)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: services.ErrDuplicateImage.Error(),
		},
		{
			name:      "user not found",
			fieldName: "file",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: services.ErrUserNotFound.Error(),
		},
		{
			name:      "internal server error",
			fieldName: "file",
			mockSetup: func(users *MockUserGetter, images *MockImageUploader) {
				users.EXPECT().
					GetUserByEmail(gomock.Any(), "john@example.com").
					Return(user, nil)
				images.EXPECT().
					UploadImage(gomock.Any(), user, "avatar.png", "image/png", int64(len(content)), gomock.Any()).
					Return(nil, errors.New("s3 down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := NewMockUserGetter(ctrl)
			mockImages := NewMockImageUploader(ctrl)
			tt.mockSetup(mockUsers, mockImages)

			handler := NewUploadImageHandler(mockUsers, mockImages)

			body, contentType := newMultipartBody(t, tt.fieldName, "avatar.png", "image/png", content)

			req := httptest.NewRequest(http.MethodPost, "/v1/user/self/pic", body)
			req.Header.Set("Content-Type", contentType)
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
			}
		})
	}
}
