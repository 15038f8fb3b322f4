// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so CSV exports can be pulled from, and reports
// pushed to, an S3-compatible bucket. This works with both AWS S3 and
// self-hosted MinIO instances. The exchange is optional; local files remain
// the source of truth for a run.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - EnsureBucket: Verifies access to the target bucket.
//   - Download: Copies an object into a local file.
//   - Upload: Copies a local file into an object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	_, err = storage.Download(ctx, client, "reconcile", "exports/highway_demos.csv", "highway_demos.csv")
package storage
