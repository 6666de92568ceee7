package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/config"
)

type recordingS3 struct {
	s3iface.S3API
	deleted []string
}

func (f *recordingS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestKeyForURLLocal(t *testing.T) {
	storage := &StorageService{config: &config.Config{
		Storage: config.StorageConfig{PublicURL: "http://localhost:8080/"},
	}}

	key, ok := storage.KeyForURL("http://localhost:8080/uploads/products/20240301_ab12cd34.png")
	assert.True(t, ok)
	assert.Equal(t, "products/20240301_ab12cd34.png", key)

	for _, u := range []string{
		"https://images.example.com/uploads/products/tote.png",
		"http://localhost:8080/uploads/",
		"http://localhost:8080/uploads/../config.yaml",
		"http://localhost:8080/uploads/products/../../config.yaml",
		"http://localhost:8080/static/x.jpg",
	} {
		_, ok := storage.KeyForURL(u)
		assert.False(t, ok, u)
	}
}

func TestKeyForURLS3(t *testing.T) {
	storage := &StorageService{
		s3Client: &recordingS3{},
		config:   &config.Config{AWS: config.AWSConfig{S3Bucket: "catalog", Region: "us-east-1"}},
	}

	key, ok := storage.KeyForURL("https://catalog.s3.us-east-1.amazonaws.com/products/a.png")
	assert.True(t, ok)
	assert.Equal(t, "products/a.png", key)

	_, ok = storage.KeyForURL("https://other.s3.us-east-1.amazonaws.com/products/a.png")
	assert.False(t, ok)

	storage.config.AWS.CloudFrontURL = "https://cdn.example.com"
	key, ok = storage.KeyForURL("https://cdn.example.com/products/a.png")
	assert.True(t, ok)
	assert.Equal(t, "products/a.png", key)
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := &StorageService{config: &config.Config{
		Storage: config.StorageConfig{UploadDir: dir, PublicURL: "http://localhost:8080"},
	}}
	ctx := context.Background()

	result, err := storage.uploadToLocal([]byte("img"), "products/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/products/a.png", result.URL)
	require.NoError(t, storage.DeleteFile(ctx, "products/a.png"))
	_, err = os.Stat(filepath.Join(dir, "products", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, storage.DeleteFile(ctx, "../outside.png"), apperror.ErrValidation)

	fake := &recordingS3{}
	storage.s3Client = fake
	require.NoError(t, storage.DeleteFile(ctx, "products/b.png"))
	assert.Equal(t, []string{"products/b.png"}, fake.deleted)
}
