package mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bucket-sync/core/executor"
	"bucket-sync/core/inventory"
	"bucket-sync/core/reconcile"
	"bucket-sync/core/report"
	"bucket-sync/core/storage"
	"bucket-sync/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrAbsoluteTarget is returned when the target path is absolute.
	ErrAbsoluteTarget = errors.New("target path must be relative to the root")
	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)

// Service runs sync flows between a local tree and a bucket.
type Service struct {
	client   storage.Client
	bucket   string
	cfg      Config
	executor *executor.Executor
	logger   *zap.Logger
}

// NewService creates a new mirror service.
func NewService(client storage.Client, bucket string, cfg Config, exec *executor.Executor, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		executor: exec,
		logger:   logger,
	}
}

// Upload pushes new and changed local files to the bucket.
func (s *Service) Upload(ctx context.Context) (executor.Result, error) {
	if err := s.prepare(ctx); err != nil {
		return executor.Result{}, err
	}
	s.logger.Info("Uploading/Updating started", zap.String("bucket", s.bucket), zap.String("prefix", s.prefix()))

	// Deduplication must see every stored object under the prefix, so no filter here.
	remote, err := inventory.BuildRemote(ctx, s.client, s.bucket, s.prefix(), inventory.Filter{}, s.logger)
	if err != nil {
		return executor.Result{}, err
	}
	local, err := s.buildLocal(ctx)
	if err != nil {
		return executor.Result{}, err
	}

	plan := reconcile.PlanUpload(local, remote)
	s.logSummary("Upload plan ready", plan)

	res, err := s.executor.ApplyUpload(ctx, plan)
	s.logger.Info("Uploading/Updating finished",
		zap.Int("uploaded", res.Uploaded),
		zap.Int("updated", res.Updated),
		zap.Int("declined", res.Skipped),
	)
	return res, err
}

// Download fetches every remote object whose local copy is missing or different.
func (s *Service) Download(ctx context.Context) (executor.Result, error) {
	filter, err := s.filter()
	if err != nil {
		return executor.Result{}, err
	}
	if err := s.prepare(ctx); err != nil {
		return executor.Result{}, err
	}
	s.logger.Info("Downloading started", zap.String("bucket", s.bucket), zap.String("prefix", s.prefix()))

	remote, err := inventory.BuildRemote(ctx, s.client, s.bucket, s.prefix(), filter, s.logger)
	if err != nil {
		return executor.Result{}, err
	}
	local, err := s.buildLocal(ctx)
	if err != nil {
		return executor.Result{}, err
	}

	plan := reconcile.PlanDownload(remote, local)
	s.logSummary("Download plan ready", plan)

	res, err := s.executor.ApplyDownload(ctx, plan)
	s.logger.Info("Downloading finished", zap.Int("downloaded", res.Downloaded))
	return res, err
}

// List writes a summary of the filtered remote objects under the target prefix.
func (s *Service) List(ctx context.Context, w io.Writer, verbose bool) (report.Listing, error) {
	filter, err := s.filter()
	if err != nil {
		return report.Listing{}, err
	}
	if err := s.prepare(ctx); err != nil {
		return report.Listing{}, err
	}

	remote, err := inventory.BuildRemote(ctx, s.client, s.bucket, s.prefix(), filter, s.logger)
	if err != nil {
		return report.Listing{}, err
	}

	listing := report.Summarize(remote, report.PreviewSize)
	if err := report.WriteListing(w, listing, verbose); err != nil {
		return listing, fmt.Errorf("failed to write listing: %w", err)
	}
	return listing, nil
}

// Delete removes the filtered remote objects under the target prefix after
// explicit confirmation.
func (s *Service) Delete(ctx context.Context) (executor.Result, error) {
	filter, err := s.filter()
	if err != nil {
		return executor.Result{}, err
	}
	if err := s.prepare(ctx); err != nil {
		return executor.Result{}, err
	}

	remote, err := inventory.BuildRemote(ctx, s.client, s.bucket, s.prefix(), filter, s.logger)
	if err != nil {
		return executor.Result{}, err
	}

	plan := reconcile.PlanDelete(remote)
	s.logSummary("Delete plan ready", plan)

	res, err := s.executor.ApplyDelete(ctx, plan)
	if res.Cancelled {
		s.logger.Info("Delete cancelled by user")
		return res, err
	}
	s.logger.Info("Deleting finished", zap.Int("deleted", res.Deleted), zap.Int("failed", res.Failed))
	return res, err
}

// prepare validates the configuration and checks the bucket before any inventory is built.
func (s *Service) prepare(ctx context.Context) error {
	if filepath.IsAbs(s.cfg.Target) || strings.HasPrefix(filepath.ToSlash(s.cfg.Target), "/") {
		return fmt.Errorf("%w: %s", ErrAbsoluteTarget, s.cfg.Target)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, s.bucket)
	}
	return nil
}

func (s *Service) prefix() string {
	return utils.NormalizeKey(s.cfg.Target)
}

func (s *Service) filter() (inventory.Filter, error) {
	return inventory.NewFilter(s.cfg.MinSize, s.cfg.MaxSize, s.cfg.Name, s.cfg.Glob)
}

func (s *Service) buildLocal(ctx context.Context) (*inventory.Local, error) {
	return inventory.BuildLocal(ctx, inventory.LocalOptions{
		Root:    s.cfg.Root,
		Target:  s.cfg.Target,
		Ignore:  inventory.NewIgnoreList(s.cfg.Ignore...),
		Workers: s.cfg.HashWorkers,
	}, s.logger)
}

func (s *Service) logSummary(msg string, plan *reconcile.Plan) {
	sum := plan.Summary()
	s.logger.Info(msg,
		zap.Int("upload", sum.Uploads),
		zap.Int("update", sum.Updates),
		zap.Int("skip", sum.Skips),
		zap.Int("download", sum.Downloads),
		zap.Int("delete", sum.Deletes),
		zap.String("upload_size", report.FormatSize(sum.UploadBytes+sum.UpdateBytes)),
		zap.String("download_size", report.FormatSize(sum.DownloadBytes)),
	)
}
