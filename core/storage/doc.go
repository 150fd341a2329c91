// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, or alternatively the AWS SDK, behind a small
// interface covering exactly what a sync run needs: a bucket liveness check,
// page-at-a-time listing, file-based upload and download, and single-object delete.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
// Clients are constructed explicitly with NewClient and handed to the code that
// needs them; nothing in this package keeps a process-wide connection.
//
// # Drivers
//
//   - minio: github.com/minio/minio-go/v7 (default, works against S3 and MinIO)
//   - s3: github.com/aws/aws-sdk-go-v2/service/s3
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjectsPage: One ListObjectsV2 page with truncation flag and continuation token.
//   - FPutObject: Uploads a local file.
//   - FGetObject: Downloads an object into a local file.
//   - RemoveObject: Deletes one object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "sync")
package storage
