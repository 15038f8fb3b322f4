package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repo-reconciler/core/storage"
	"repo-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "exports/highway_demos.csv", storage.ObjectKey("exports", "data/highway_demos.csv"))
	assert.Equal(t, "highway_demos.csv", storage.ObjectKey("", "highway_demos.csv"))
	assert.Equal(t, "a/b/out.csv", storage.ObjectKey("a/b/", "/tmp/out.csv"))
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	dest := filepath.Join(t.TempDir(), "highway_demos.csv")

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		body := io.NopCloser(strings.NewReader("id,git\n1,acme/widget\n"))
		mockClient.On("GetObject", mock.Anything, "bucket", "exports/highway_demos.csv", mock.Anything).Return(body, nil)

		n, err := storage.Download(ctx, mockClient, "bucket", "exports/highway_demos.csv", dest)
		require.NoError(t, err)
		assert.Equal(t, int64(21), n)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "id,git\n1,acme/widget\n", string(data))
		mockClient.AssertExpectations(t)
	})

	t.Run("GetError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "bucket", "missing.csv", mock.Anything).Return(nil, errors.New("no such key"))

		_, err := storage.Download(ctx, mockClient, "bucket", "missing.csv", dest)
		assert.ErrorContains(t, err, "no such key")
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	src := filepath.Join(t.TempDir(), "matched_pairs.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n1,2\n"), 0o644))

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "bucket", "reports/matched_pairs.csv", mock.Anything, int64(8),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/csv" }),
		).Return(minio.UploadInfo{}, nil)

		n, err := storage.Upload(ctx, mockClient, "bucket", "reports/matched_pairs.csv", src)
		require.NoError(t, err)
		assert.Equal(t, int64(8), n)
		mockClient.AssertExpectations(t)
	})

	t.Run("MissingFile", func(t *testing.T) {
		mockClient := new(mocks.Client)
		_, err := storage.Upload(ctx, mockClient, "bucket", "x", filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PutError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "bucket", "x", mock.Anything, int64(8), mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

		_, err := storage.Upload(ctx, mockClient, "bucket", "x", src)
		assert.ErrorContains(t, err, "denied")
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "present").Return(true, nil)
	mockClient.On("BucketExists", mock.Anything, "absent").Return(false, nil)
	mockClient.On("BucketExists", mock.Anything, "broken").Return(false, errors.New("timeout"))

	assert.NoError(t, storage.EnsureBucket(ctx, mockClient, "present"))
	assert.ErrorContains(t, storage.EnsureBucket(ctx, mockClient, "absent"), "does not exist")
	assert.ErrorContains(t, storage.EnsureBucket(ctx, mockClient, "broken"), "timeout")
}
