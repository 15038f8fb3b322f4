package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// ObjectKey returns the object name for a local file under prefix.
// Only the base name of the local path is kept.
func ObjectKey(prefix, localPath string) string {
	name := filepath.Base(localPath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Download copies an object into a local file, replacing it.
func Download(ctx context.Context, client Client, bucket, objectName, localPath string) (int64, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	n, err := io.Copy(f, obj)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("failed to download %s: %w", objectName, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", localPath, err)
	}
	return n, nil
}

// Upload copies a local file into an object.
func Upload(ctx context.Context, client Client, bucket, objectName, localPath string) (int64, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	_, err = client.PutObject(ctx, bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return info.Size(), nil
}

// EnsureBucket fails when the bucket is missing or unreachable.
func EnsureBucket(ctx context.Context, client Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
