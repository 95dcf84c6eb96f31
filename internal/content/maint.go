// maint.go implements statistics and maintenance for the Service layer.

package content

import (
	"context"

	"github.com/jpl-au/xsearch/internal/store"
)

// Stats returns aggregate counts.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx)
}

// Checkpoint flushes the WAL to the main database file. Removes the -wal and
// -shm files from the filesystem, useful before backup operations or when
// copying the database elsewhere.
func (s *Service) Checkpoint(ctx context.Context) error {
	return s.store.Checkpoint(ctx)
}
