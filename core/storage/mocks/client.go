package mocks

import (
	"context"

	"bucket-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) ListObjectsPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (storage.ListPage, error) {
	args := m.Called(ctx, bucketName, prefix, continuationToken, maxKeys)
	if page, ok := args.Get(0).(storage.ListPage); ok {
		return page, args.Error(1)
	}
	return storage.ListPage{}, args.Error(1)
}

func (m *Client) FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, filePath, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *Client) FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, filePath, opts)
	return args.Error(0)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}
