// Package storage uploads public media (class, teacher and news images).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/dance-school/internal/config"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

type S3Store struct {
	client *s3.Client
	bucket string
	urls   urlBuilder
}

// NewS3Store returns ErrNotConfigured when no bucket is set.
func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if !cfg.UploadsEnabled() {
		return nil, ErrNotConfigured
	}

	opts := s3.Options{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)
	}
	// S3-compatible stores (MinIO, R2) want path-style addressing.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Store{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
		urls: urlBuilder{
			publicBase: cfg.S3PublicBaseURL,
			endpoint:   cfg.S3Endpoint,
			bucket:     cfg.S3Bucket,
			region:     cfg.S3Region,
		},
	}, nil
}

func (s *S3Store) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body io.Reader,
	size int64,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.urls.objectURL(key), nil
}

type urlBuilder struct {
	publicBase string
	endpoint   string
	bucket     string
	region     string
}

func (u urlBuilder) objectURL(key string) string {
	key = strings.TrimLeft(key, "/")
	switch {
	case u.publicBase != "":
		return strings.TrimRight(u.publicBase, "/") + "/" + key
	case u.endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.endpoint, "/"), u.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	}
}

var _ Uploader = (*S3Store)(nil)
