package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dance-school/internal/config"
)

func TestNewS3StoreRequiresBucket(t *testing.T) {
	_, err := NewS3Store(&config.Config{S3Region: "us-east-1"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewS3Store(t *testing.T) {
	store, err := NewS3Store(&config.Config{
		S3Bucket:          "media",
		S3Region:          "eu-central-1",
		S3Endpoint:        "http://localhost:9000",
		S3AccessKeyID:     "key",
		S3SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/media/news/a.png", store.urls.objectURL("news/a.png"))
}

func TestObjectURL(t *testing.T) {
	cases := []struct {
		name string
		u    urlBuilder
		want string
	}{
		{
			name: "public base wins",
			u:    urlBuilder{publicBase: "https://cdn.example/", endpoint: "http://minio:9000", bucket: "b"},
			want: "https://cdn.example/img/x.jpg",
		},
		{
			name: "custom endpoint is path style",
			u:    urlBuilder{endpoint: "http://minio:9000/", bucket: "b"},
			want: "http://minio:9000/b/img/x.jpg",
		},
		{
			name: "aws virtual host",
			u:    urlBuilder{bucket: "b", region: "us-east-1"},
			want: "https://b.s3.us-east-1.amazonaws.com/img/x.jpg",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.u.objectURL("/img/x.jpg"))
		})
	}
}
