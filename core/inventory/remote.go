package inventory

import (
	"context"
	"errors"
	"fmt"

	"bucket-sync/core/digest"
	"bucket-sync/core/storage"
	"bucket-sync/core/utils"

	"go.uber.org/zap"
)

// PageSize is the number of keys requested per listing call.
const PageSize = 100

// ErrMissingContinuation is returned when the store reports more pages but
// provides no token to fetch them.
var ErrMissingContinuation = errors.New("listing truncated without continuation token")

// BuildRemote lists every object under prefix and indexes those passing filter.
// Pagination continues until the store clears the truncated flag; short pages do
// not end the listing on their own.
func BuildRemote(ctx context.Context, client storage.Client, bucket, prefix string, filter Filter, logger *zap.Logger) (*Remote, error) {
	inv := NewRemote(prefix)

	var (
		token string
		pages int
	)
	for {
		page, err := client.ListObjectsPage(ctx, bucket, prefix, token, PageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in bucket %s under %q: %w", bucket, prefix, err)
		}
		pages++

		for _, obj := range page.Objects {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list objects in bucket %s under %q: %w", bucket, prefix, obj.Err)
			}
			if utils.IsDirMarker(obj.Key) {
				continue
			}
			ro := RemoteObject{Key: obj.Key, ETag: digest.Normalize(obj.ETag), Size: obj.Size}
			if !filter.Match(ro) {
				logger.Debug("Filtered remote object", zap.String("key", ro.Key), zap.Int64("size", ro.Size))
				continue
			}
			inv.Add(ro)
		}

		if !page.IsTruncated {
			break
		}
		if page.NextContinuationToken == "" {
			return nil, fmt.Errorf("bucket %s page %d: %w", bucket, pages, ErrMissingContinuation)
		}
		token = page.NextContinuationToken
	}

	logger.Info("Remote files listed", zap.Int("count", inv.Len()), zap.Int("pages", pages))
	return inv, nil
}
