package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestImageObjectRepository_Put(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockS3Client(ctrl)
	repo := NewImageObjectRepository(mockClient, "avatars")
	ctx := context.Background()

	body := strings.NewReader("png bytes")

	t.Run("success", func(t *testing.T) {
		mockClient.EXPECT().
			PutObject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				assert.Equal(t, "avatars", *params.Bucket)
				assert.Equal(t, "users/u1/img1.png", *params.Key)
				assert.Equal(t, "image/png", *params.ContentType)
				assert.Equal(t, int64(9), *params.ContentLength)
				return &s3.PutObjectOutput{}, nil
			})

		err := repo.Put(ctx, "users/u1/img1.png", "image/png", 9, body)
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		mockClient.EXPECT().
			PutObject(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("bucket unavailable"))

		err := repo.Put(ctx, "users/u1/img1.png", "image/png", 9, body)
		assert.Error(t, err)
	})
}

func TestImageObjectRepository_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockS3Client(ctrl)
	repo := NewImageObjectRepository(mockClient, "avatars")
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockClient.EXPECT().
			DeleteObject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
				assert.Equal(t, "avatars", *params.Bucket)
				assert.Equal(t, "users/u1/img1.png", *params.Key)
				return &s3.DeleteObjectOutput{}, nil
			})

		err := repo.Delete(ctx, "users/u1/img1.png")
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		mockClient.EXPECT().
			DeleteObject(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("bucket unavailable"))

		err := repo.Delete(ctx, "users/u1/img1.png")
		assert.Error(t, err)
	})
}

func TestImageObjectRepository_Bucket(t *testing.T) {
	repo := NewImageObjectRepository(nil, "avatars")
	assert.Equal(t, "avatars", repo.Bucket())
}
