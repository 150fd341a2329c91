package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bucket-sync/core/reconcile"
	"bucket-sync/core/report"
	"bucket-sync/core/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DeleteConfirmation is the exact answer that authorises a delete batch.
const DeleteConfirmation = "YES"

const defaultContentType = "application/octet-stream"

var (
	// ErrTransferFailed wraps any put or get failure. It always halts the run.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrDeleteFailed is returned after a confirmed batch in which some deletes failed.
	ErrDeleteFailed = errors.New("delete failed")
)

// Options controls execution behaviour.
type Options struct {
	// Policy gates overwrites of existing keys.
	Policy Policy
	// DryRun logs planned actions without executing them.
	DryRun bool
}

// Result counts what was executed.
type Result struct {
	Uploaded   int
	Updated    int
	Downloaded int
	Deleted    int
	// Skipped counts overwrites declined by policy or by the operator.
	Skipped int
	// Failed counts deletes that failed in a best-effort batch.
	Failed int
	// Cancelled is set when the operator declined a delete batch.
	Cancelled bool
}

// Executor applies plans against a bucket, one object at a time.
type Executor struct {
	client   storage.Client
	bucket   string
	prompter *Prompter
	out      io.Writer
	logger   *zap.Logger
	opts     Options
}

// New creates an executor. Prompts and previews are written to out.
func New(client storage.Client, bucket string, prompter *Prompter, out io.Writer, logger *zap.Logger, opts Options) *Executor {
	return &Executor{
		client:   client,
		bucket:   bucket,
		prompter: prompter,
		out:      out,
		logger:   logger,
		opts:     opts,
	}
}

// ApplyUpload executes the update entries under the overwrite policy, then every
// upload entry. The first failed transfer stops the run.
func (e *Executor) ApplyUpload(ctx context.Context, plan *reconcile.Plan) (Result, error) {
	var res Result

	for _, a := range plan.Skip {
		e.logger.Debug("Identical content already stored",
			zap.String("key", a.Key),
			zap.String("duplicate_of", a.DuplicateOf),
		)
	}

	if e.opts.DryRun {
		e.logPlanned("Would update", plan.Update)
		e.logPlanned("Would upload", plan.Upload)
		return res, nil
	}

	total := len(plan.Update)
	for i, a := range plan.Update {
		proceed, err := e.confirmOverwrite(a)
		if err != nil {
			return res, err
		}
		if !proceed {
			res.Skipped++
			continue
		}

		e.logger.Info("Updating old file",
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, total)),
			zap.String("key", a.Key),
			zap.String("size", report.FormatSize(a.Size)),
		)
		if err := e.put(ctx, a); err != nil {
			return res, err
		}
		res.Updated++
	}

	total = len(plan.Upload)
	for i, a := range plan.Upload {
		e.logger.Info("Uploading new file",
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, total)),
			zap.String("key", a.Key),
			zap.String("size", report.FormatSize(a.Size)),
		)
		if err := e.put(ctx, a); err != nil {
			return res, err
		}
		res.Uploaded++
	}

	return res, nil
}

// ApplyDownload fetches every download entry, creating parent directories first.
// The first failed transfer stops the run.
func (e *Executor) ApplyDownload(ctx context.Context, plan *reconcile.Plan) (Result, error) {
	var res Result

	for _, a := range plan.Skip {
		e.logger.Info("File exists", zap.String("key", a.Key))
	}

	if e.opts.DryRun {
		e.logPlanned("Would download", plan.Download)
		return res, nil
	}

	total := len(plan.Download)
	for i, a := range plan.Download {
		e.logger.Info("Downloading",
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, total)),
			zap.String("key", a.Key),
			zap.String("size", report.FormatSize(a.Size)),
		)

		if err := os.MkdirAll(filepath.Dir(a.LocalPath), 0o755); err != nil {
			return res, fmt.Errorf("%w: download %s: %w", ErrTransferFailed, a.Key, err)
		}
		if err := e.client.FGetObject(ctx, e.bucket, a.Key, a.LocalPath, minio.GetObjectOptions{}); err != nil {
			e.logger.Error("Download failed", zap.String("key", a.Key), zap.Error(err))
			return res, fmt.Errorf("%w: download %s: %w", ErrTransferFailed, a.Key, err)
		}
		res.Downloaded++
	}

	return res, nil
}

// ApplyDelete previews the batch and deletes it only after the operator types
// DeleteConfirmation exactly. Any other answer cancels the whole batch. Once
// confirmed, deletes are best-effort: failures are logged and reported together
// after every key was attempted.
func (e *Executor) ApplyDelete(ctx context.Context, plan *reconcile.Plan) (Result, error) {
	var res Result

	if len(plan.Delete) == 0 {
		e.logger.Info("Nothing to delete")
		return res, nil
	}

	keys := reconcile.Keys(plan.Delete)
	head, tail := report.Preview(keys, report.PreviewSize)
	if _, err := fmt.Fprintln(e.out, "The following objects will be deleted:"); err != nil {
		return res, err
	}
	if err := report.WritePreview(e.out, head, tail, len(keys)); err != nil {
		return res, err
	}

	if e.opts.DryRun {
		e.logPlanned("Would delete", plan.Delete)
		return res, nil
	}

	confirmed, err := e.prompter.ConfirmLiteral("Delete every object listed above?", DeleteConfirmation)
	if err != nil {
		return res, err
	}
	if !confirmed {
		res.Cancelled = true
		return res, nil
	}

	var errs []error
	total := len(plan.Delete)
	for i, a := range plan.Delete {
		e.logger.Info("Deleting",
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, total)),
			zap.String("key", a.Key),
		)
		if err := e.client.RemoveObject(ctx, e.bucket, a.Key, minio.RemoveObjectOptions{}); err != nil {
			e.logger.Error("Delete failed", zap.String("key", a.Key), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", a.Key, err))
			res.Failed++
			continue
		}
		res.Deleted++
	}

	if len(errs) > 0 {
		return res, fmt.Errorf("%w: %d of %d objects: %w", ErrDeleteFailed, len(errs), total, errors.Join(errs...))
	}
	return res, nil
}

// confirmOverwrite applies the overwrite policy to one update entry.
func (e *Executor) confirmOverwrite(a reconcile.Action) (bool, error) {
	switch e.opts.Policy {
	case PolicyForceYes:
		return true, nil
	case PolicyForceNo:
		e.logger.Info("Skipped update", zap.String("key", a.Key), zap.String("policy", e.opts.Policy.String()))
		return false, nil
	}

	ok, err := e.prompter.AskYesNo(fmt.Sprintf("Do you want to update %s?", a.Key))
	if err != nil {
		return false, fmt.Errorf("failed to confirm update of %s: %w", a.Key, err)
	}
	if !ok {
		e.logger.Info("Skipped by user", zap.String("key", a.Key))
	}
	return ok, nil
}

func (e *Executor) put(ctx context.Context, a reconcile.Action) error {
	contentType := defaultContentType
	if mt, err := mimetype.DetectFile(a.LocalPath); err == nil {
		contentType = mt.String()
	}

	_, err := e.client.FPutObject(ctx, e.bucket, a.Key, a.LocalPath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		e.logger.Error("Upload failed", zap.String("key", a.Key), zap.String("path", a.LocalPath), zap.Error(err))
		return fmt.Errorf("%w: upload %s: %w", ErrTransferFailed, a.Key, err)
	}
	return nil
}

func (e *Executor) logPlanned(msg string, actions []reconcile.Action) {
	for _, a := range actions {
		e.logger.Info(msg, zap.String("key", a.Key), zap.String("size", report.FormatSize(a.Size)))
	}
}
