package cleaner

import (
	"context"
	"logsweep/pkg/domain"
)

// Cleaner finds stale files under a directory tree and disposes of them.
type Cleaner interface {
	// Scan walks the request's root directory and returns, in traversal
	// order, every regular file that matches the request's pattern and is
	// older than its age threshold. It fails when the root does not exist
	// or is not a directory.
	Scan(ctx context.Context, req domain.Request) ([]domain.Candidate, error)

	// Dispose reports each candidate (dry-run) or deletes it. In delete
	// mode the first failed removal stops processing immediately; the
	// remaining candidates are left untouched.
	Dispose(ctx context.Context, candidates []domain.Candidate, remove bool) error
}
