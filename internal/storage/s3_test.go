package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/minio"
)

// setupMinio starts a MinIO container and returns an S3 service bound to a fresh bucket
func setupMinio(t *testing.T) S3Service {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		minio.WithUsername("minioadmin"),
		minio.WithPassword("minioadmin"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	bucket := "signalbench-test-" + uuid.New().String()[:8]
	require.NoError(t, createBucket(ctx, endpoint, bucket))

	svc, err := NewS3Service(ctx, S3Config{
		Bucket:    bucket,
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		URLExpiry: 10 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func createBucket(ctx context.Context, endpoint, bucket string) error {
	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  miniocreds.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		return err
	}
	return client.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{})
}

func TestNewS3Service_RequiresBucket(t *testing.T) {
	_, err := NewS3Service(context.Background(), S3Config{})
	assert.Error(t, err)
}

func TestNewS3Service_DefaultExpiry(t *testing.T) {
	svc, err := NewS3Service(context.Background(), S3Config{
		Bucket:    "bucket",
		Endpoint:  "localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.URLExpiry())
}

func TestUploadFile_RejectsContentType(t *testing.T) {
	svc, err := NewS3Service(context.Background(), S3Config{
		Bucket:    "bucket",
		Endpoint:  "localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	err = svc.UploadFile(context.Background(), "profiles/x.json", "text/csv", []byte("a,b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}

func TestS3Service_Integration(t *testing.T) {
	svc := setupMinio(t)
	ctx := context.Background()

	key := "profiles/" + uuid.New().String() + ".json"
	body := []byte(`{"version":1}`)

	require.NoError(t, svc.UploadFile(ctx, key, "application/json", body))

	got, err := svc.DownloadFile(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	url, err := svc.GenerateDownloadURL(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, url, key)

	require.NoError(t, svc.DeleteFile(ctx, key))

	_, err = svc.DownloadFile(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
