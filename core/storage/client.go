package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ListPage is a single page of an object listing.
type ListPage struct {
	// Objects holds the entries returned in this page, possibly fewer than requested.
	Objects []minio.ObjectInfo
	// IsTruncated reports whether more pages follow.
	IsTruncated bool
	// NextContinuationToken resumes the listing after this page.
	NextContinuationToken string
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// ListObjectsPage lists up to maxKeys objects under prefix, continuing after continuationToken.
	ListObjectsPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (ListPage, error)
	// FPutObject uploads the local file at filePath as objectName.
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// FGetObject downloads objectName into the local file at filePath.
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// NewClient creates a storage client for the configured driver.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverMinio:
		return newMinioClient(cfg)
	case DriverS3:
		return newS3Client(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newMinioClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(cfg.TimeoutSeconds),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{Client: minioClient}, nil
}

// newTransport builds an HTTP transport with strict connection timeouts.
func newTransport(timeoutSeconds int) *http.Transport {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

type minioClientWrapper struct {
	*minio.Client
}

// ListObjectsPage issues a single ListObjectsV2 request through the core API so
// pagination stays under the caller's control.
//
// Core.ListObjectsV2 takes no context, so a request already in flight runs to
// completion. ctx is checked before the request and again before the page is
// returned, which bounds a cancelled listing to one extra page.
func (c *minioClientWrapper) ListObjectsPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (ListPage, error) {
	if err := ctx.Err(); err != nil {
		return ListPage{}, err
	}

	core := minio.Core{Client: c.Client}
	res, err := core.ListObjectsV2(bucketName, prefix, "", continuationToken, "", maxKeys)
	if err != nil {
		return ListPage{}, err
	}
	if err := ctx.Err(); err != nil {
		return ListPage{}, err
	}

	return ListPage{
		Objects:               res.Contents,
		IsTruncated:           res.IsTruncated,
		NextContinuationToken: res.NextContinuationToken,
	}, nil
}
