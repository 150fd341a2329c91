package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"bucket-sync/core/digest"
	"bucket-sync/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LocalOptions controls how the local tree is scanned.
type LocalOptions struct {
	// Root is the directory object keys are relative to.
	Root string
	// Target is the sub-path of Root to scan. Empty scans the whole root.
	Target string
	// Ignore filters files and directories. Nil ignores nothing.
	Ignore *IgnoreList
	// Workers bounds the number of files hashed concurrently.
	Workers int
}

// BuildLocal walks Root/Target and hashes every non-ignored regular file.
// A missing path yields an empty inventory rather than an error.
func BuildLocal(ctx context.Context, opts LocalOptions, logger *zap.Logger) (*Local, error) {
	inv := NewLocal(opts.Root)
	resolved := utils.LocalPath(opts.Root, opts.Target)

	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("Local path does not exist, starting from an empty inventory", zap.String("path", resolved))
		return inv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", resolved, err)
	}

	if !info.IsDir() {
		key := utils.NormalizeKey(opts.Target)
		if key == "" {
			key = filepath.Base(resolved)
		}
		sum, err := digest.File(resolved)
		if err != nil {
			return nil, err
		}
		inv.Objects[key] = LocalObject{Key: key, Path: resolved, Digest: sum, Size: info.Size()}
		logger.Info("Local files scanned", zap.Int("count", 1))
		return inv, nil
	}

	pending, err := walkTree(ctx, opts.Root, resolved, opts.Ignore, logger)
	if err != nil {
		return nil, err
	}

	if err := hashAll(ctx, pending, opts.Workers, inv); err != nil {
		return nil, err
	}

	logger.Info("Local files scanned", zap.Int("count", inv.Len()))
	return inv, nil
}

// walkTree collects the regular files below dir, keyed relative to root.
func walkTree(ctx context.Context, root, dir string, ignore *IgnoreList, logger *zap.Logger) ([]LocalObject, error) {
	var files []LocalObject

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", p, err)
		}
		key := utils.NormalizeKey(rel)

		if d.IsDir() {
			if p != dir && ignore.ShouldIgnore(key) {
				logger.Info("Ignored directory", zap.String("path", p))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug("Skipping non-regular file", zap.String("path", p))
			return nil
		}

		if ignore.ShouldIgnore(key) {
			logger.Info("Ignored file", zap.String("path", p))
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}
		files = append(files, LocalObject{Key: key, Path: p, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dir, err)
	}

	return files, nil
}

// hashAll digests files with at most workers running at once. The first error wins.
func hashAll(ctx context.Context, files []LocalObject, workers int, inv *Local) error {
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := digest.File(f.Path)
			if err != nil {
				return err
			}
			f.Digest = sum

			mu.Lock()
			inv.Objects[f.Key] = f
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
