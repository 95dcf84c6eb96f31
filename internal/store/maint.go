// maint.go implements aggregate statistics and WAL maintenance.
//
// Separated to collect "read-only, aggregate" operations distinct from CRUD,
// plus the checkpoint used on graceful shutdown.

package store

import (
	"context"
	"fmt"
)

// Stats returns aggregate counts across the content tables.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	t := s.tables
	queries := []struct {
		dest *int64
		sql  string
	}{
		{&st.Posts, `SELECT COUNT(*) FROM ` + t.Posts},
		{&st.Published, `SELECT COUNT(*) FROM ` + t.Posts + ` WHERE post_status = '` + StatusPublish + `'`},
		{&st.MetaRows, `SELECT COUNT(*) FROM ` + t.PostMeta},
		{&st.MetaKeys, `SELECT COUNT(DISTINCT meta_key) FROM ` + t.PostMeta},
		{&st.Terms, `SELECT COUNT(*) FROM ` + t.Terms},
		{&st.Taxonomies, `SELECT COUNT(DISTINCT taxonomy) FROM ` + t.TaxonomyTypes},
	}
	for _, q := range queries {
		if err := s.q.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}
	return &st, nil
}

// Checkpoint writes all WAL data back to the main database file and truncates
// the WAL, removing the -wal and -shm files. TRUNCATE mode is used because a
// clean shutdown is preferred over crash recovery speed.
func (s *SQLiteStore) Checkpoint(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}
