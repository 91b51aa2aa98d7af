package repositories

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
)

// S3Client is the subset of the S3 API the image object repository needs.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewS3Client builds an S3 client from static credentials. An empty endpoint
// leaves the SDK default in place; a non-empty one points the client at an
// S3-compatible store such as minio.
func NewS3Client(ctx context.Context, region, accessKey, secretKey, endpoint string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// ImageObjectRepository stores image bytes in a single S3 bucket.
type ImageObjectRepository struct {
	client S3Client
	bucket string
}

// NewImageObjectRepository creates a new ImageObjectRepository.
func NewImageObjectRepository(client S3Client, bucket string) *ImageObjectRepository {
	return &ImageObjectRepository{client: client, bucket: bucket}
}

// Put writes the object under the given key with content type and length metadata.
func (r *ImageObjectRepository) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})

	logger.Log.Infow("object put",
		"bucket", r.bucket,
		"key", key,
		"size", size,
		"error", err,
	)

	return err
}

// Delete removes the object under the given key.
func (r *ImageObjectRepository) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})

	logger.Log.Infow("object delete",
		"bucket", r.bucket,
		"key", key,
		"error", err,
	)

	return err
}

// Bucket returns the bucket name, used to build externally resolvable locations.
func (r *ImageObjectRepository) Bucket() string {
	return r.bucket
}
