// Package cleaner implements the scan and disposition pipeline: walk a
// directory tree, select files matching a glob that are older than a cutoff,
// then report or delete them.
package cleaner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"logsweep/pkg/domain"
	"logsweep/pkg/logger"
	"logsweep/pkg/serrors"
)

// Options configure the cleaner. The zero value uses the real clock and the
// real filesystem.
type Options struct {
	// Now supplies the current time used to compute the age cutoff.
	// Defaults to time.Now.
	Now func() time.Time
	// Remove deletes a single file. Defaults to os.Remove.
	Remove func(path string) error
}

// cleaner is the concrete implementation of the Cleaner interface.
type cleaner struct {
	now    func() time.Time
	remove func(path string) error
}

// New creates a new Cleaner configured with the given options.
func New(options Options) Cleaner {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Remove == nil {
		options.Remove = os.Remove
	}

	return &cleaner{
		now:    options.Now,
		remove: options.Remove,
	}
}

// Scan recursively enumerates files under req.Root whose base name matches
// req.Pattern and whose last-modified time is strictly before the cutoff
// (now minus req.MaxAgeDays days). Entries whose metadata cannot be read are
// skipped with a warning; the scan never aborts on a single bad entry.
func (c *cleaner) Scan(ctx context.Context, req domain.Request) ([]domain.Candidate, error) {
	// Reject malformed globs before touching the filesystem. filepath.Match
	// only reports ErrBadPattern, so the name argument is irrelevant here.
	if _, err := filepath.Match(req.Pattern, ""); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid pattern %q", req.Pattern)
	}

	info, err := os.Stat(req.Root)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "not a directory: %s", req.Root)
	}
	if !info.IsDir() {
		return nil, serrors.With(serrors.ErrNotFound, "not a directory: %s", req.Root)
	}

	cutoff := c.now().Add(-time.Duration(req.MaxAgeDays) * 24 * time.Hour)
	logger.Debug(ctx, "scanning for stale files",
		zap.String("root", req.Root),
		zap.String("pattern", req.Pattern),
		zap.Time("cutoff", cutoff))

	var candidates []domain.Candidate
	walkErr := filepath.WalkDir(req.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or vanished entry; keep walking.
			logger.Warn(ctx, "skipping unreadable entry", zap.String("path", path), zap.Error(err))

			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(req.Pattern, d.Name()); !ok {
			return nil
		}

		// Stat instead of d.Info so a symlink to a regular file qualifies
		// by the target's metadata. A broken link fails here and is skipped.
		fi, err := os.Stat(path)
		if err != nil {
			logger.Warn(ctx, "skipping entry, could not read metadata", zap.String("path", path), zap.Error(err))

			return nil
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		if !fi.ModTime().Before(cutoff) {
			return nil
		}

		logger.Debug(ctx, "found stale file",
			zap.String("path", path),
			zap.Time("modified", fi.ModTime()),
			zap.Int64("bytes", fi.Size()))
		candidates = append(candidates, domain.Candidate{
			Path:    path,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("could not walk %s: %w", req.Root, walkErr)
	}

	return candidates, nil
}

// Dispose processes candidates in order. In dry-run mode it only reports what
// would be deleted. In delete mode it removes each file and stops at the
// first failure, leaving the remaining candidates untouched.
func (c *cleaner) Dispose(ctx context.Context, candidates []domain.Candidate, remove bool) error {
	if len(candidates) == 0 {
		logger.Info(ctx, "no matching files found, nothing to do")

		return nil
	}

	var reclaimed int64
	for _, candidate := range candidates {
		if !remove {
			logger.Info(ctx, "would delete",
				zap.String("path", candidate.Path),
				zap.Time("modified", candidate.ModTime),
				zap.Int64("bytes", candidate.Size))
			reclaimed += candidate.Size

			continue
		}

		if err := c.remove(candidate.Path); err != nil {
			logger.Error(ctx, "could not delete file", zap.String("path", candidate.Path), zap.Error(err))

			return serrors.Wrap(serrors.ErrIO, err, "could not delete %s", candidate.Path)
		}
		logger.Info(ctx, "deleted", zap.String("path", candidate.Path), zap.Int64("bytes", candidate.Size))
		reclaimed += candidate.Size
	}

	if remove {
		logger.Info(ctx, "cleanup complete",
			zap.Int("files", len(candidates)),
			zap.Int64("bytesReclaimed", reclaimed))
	} else {
		logger.Info(ctx, "dry-run complete, pass --delete to apply",
			zap.Int("files", len(candidates)),
			zap.Int64("bytesReclaimable", reclaimed))
	}

	return nil
}
