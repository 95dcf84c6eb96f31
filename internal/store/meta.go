// meta.go implements key-value post metadata.
//
// Separated from posts.go because metadata has its own lifecycle: rows are
// added and replaced independently of the post body. A post may carry
// several rows for one key, which is why search joins against this table
// must de-duplicate.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpl-au/xsearch/internal/validate"
)

// AddMeta appends a metadata row for key.
func (s *SQLiteStore) AddMeta(ctx context.Context, postID int64, key, value string) error {
	if err := validate.MetaKey(key); err != nil {
		return err
	}
	if err := s.postExists(ctx, s.q, postID); err != nil {
		return err
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO `+s.tables.PostMeta+` (post_id, meta_key, meta_value) VALUES (?, ?, ?)`,
		postID, key, value)
	if err != nil {
		return fmt.Errorf("add meta %s: %w", key, err)
	}
	return nil
}

// SetMeta replaces every row for key with a single row holding value.
func (s *SQLiteStore) SetMeta(ctx context.Context, postID int64, key, value string) error {
	if err := validate.MetaKey(key); err != nil {
		return err
	}
	return s.Tx(ctx, func(tx *sql.Tx) error {
		if err := s.postExists(ctx, tx, postID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM `+s.tables.PostMeta+` WHERE post_id = ? AND meta_key = ?`,
			postID, key); err != nil {
			return fmt.Errorf("clear meta %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+s.tables.PostMeta+` (post_id, meta_key, meta_value) VALUES (?, ?, ?)`,
			postID, key, value); err != nil {
			return fmt.Errorf("set meta %s: %w", key, err)
		}
		return nil
	})
}

// Meta returns every metadata row for a post in insertion order.
func (s *SQLiteStore) Meta(ctx context.Context, postID int64) ([]MetaEntry, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT meta_key, meta_value FROM `+s.tables.PostMeta+` WHERE post_id = ? ORDER BY meta_id`,
		postID)
	if err != nil {
		return nil, fmt.Errorf("list meta: %w", err)
	}
	defer rows.Close()

	var entries []MetaEntry
	for rows.Next() {
		var e MetaEntry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("scan meta: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
