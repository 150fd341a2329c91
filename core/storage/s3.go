package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/minio-go/v7"
)

const defaultRegion = "us-east-1"

// s3Client implements Client on top of the AWS SDK.
type s3Client struct {
	api *s3.Client
}

func newS3Client(cfg Config) (Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithHTTPClient(newHTTPClient(cfg.TimeoutSeconds)),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)
	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Client{api: api}, nil
}

// newHTTPClient applies the newTransport timeouts to the SDK's buildable client.
// The SDK only accepts a buildable client when it has to add AWS_CA_BUNDLE roots.
func newHTTPClient(timeoutSeconds int) *awshttp.BuildableClient {
	base := newTransport(timeoutSeconds)
	return awshttp.NewBuildableClient().
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = base.TLSHandshakeTimeout
			d.KeepAlive = 30 * time.Second
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.Proxy = base.Proxy
			tr.ForceAttemptHTTP2 = base.ForceAttemptHTTP2
			tr.MaxIdleConns = base.MaxIdleConns
			tr.IdleConnTimeout = base.IdleConnTimeout
			tr.TLSHandshakeTimeout = base.TLSHandshakeTimeout
			tr.ExpectContinueTimeout = base.ExpectContinueTimeout
			tr.ResponseHeaderTimeout = base.ResponseHeaderTimeout
		})
}

// endpointURL adds a scheme to endpoints configured in the minio host:port form.
func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func (c *s3Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)})
	if err == nil {
		return true, nil
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

func (c *s3Client) ListObjectsPage(ctx context.Context, bucketName, prefix, continuationToken string, maxKeys int) (ListPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucketName),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(int32(maxKeys)),
	}
	if continuationToken != "" {
		input.ContinuationToken = aws.String(continuationToken)
	}

	out, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		return ListPage{}, err
	}

	page := ListPage{
		Objects:               make([]minio.ObjectInfo, 0, len(out.Contents)),
		IsTruncated:           aws.ToBool(out.IsTruncated),
		NextContinuationToken: aws.ToString(out.NextContinuationToken),
	}
	for _, obj := range out.Contents {
		page.Objects = append(page.Objects, minio.ObjectInfo{
			Key:          aws.ToString(obj.Key),
			ETag:         aws.ToString(obj.ETag),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
		})
	}
	return page, nil
}

func (c *s3Client) FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return minio.UploadInfo{}, err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectName),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	out, err := c.api.PutObject(ctx, input)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	return minio.UploadInfo{
		Bucket:    bucketName,
		Key:       objectName,
		ETag:      strings.Trim(aws.ToString(out.ETag), `"`),
		Size:      info.Size(),
		VersionID: aws.ToString(out.VersionId),
	}, nil
}

func (c *s3Client) FGetObject(ctx context.Context, bucketName, objectName, filePath string, _ minio.GetObjectOptions) error {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	// Write to a sibling file first so an interrupted transfer never leaves a truncated target.
	partPath := filePath + ".part"
	f, err := os.Create(partPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, out.Body); err != nil {
		f.Close()
		os.Remove(partPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(partPath)
		return err
	}
	return os.Rename(partPath, filePath)
}

func (c *s3Client) RemoveObject(ctx context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	})
	return err
}
