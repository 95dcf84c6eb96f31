// posts.go implements post creation and lookup.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/xsearch/internal/validate"
)

// InsertPost stores a new post and returns its ID. Empty Type defaults to
// "post", empty Status to "publish", zero Date to now.
func (s *SQLiteStore) InsertPost(ctx context.Context, p Post) (int64, error) {
	if p.Type == "" {
		p.Type = "post"
	}
	if p.Status == "" {
		p.Status = StatusPublish
	}
	if p.Date == 0 {
		p.Date = time.Now().Unix()
	}
	if err := validate.Title(p.Title); err != nil {
		return 0, err
	}
	if err := validate.PostType(p.Type); err != nil {
		return 0, err
	}
	if err := validate.Status(p.Status); err != nil {
		return 0, err
	}
	if err := validate.Content(p.Content, validate.MaxContent); err != nil {
		return 0, err
	}

	res, err := s.q.ExecContext(ctx,
		`INSERT INTO `+s.tables.Posts+` (post_title, post_content, post_type, post_status, post_date)
		VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Content, p.Type, p.Status, p.Date)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

// Post retrieves a single post by ID.
func (s *SQLiteStore) Post(ctx context.Context, id int64) (*Post, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT ID, post_title, post_content, post_type, post_status, post_date
		FROM `+s.tables.Posts+` WHERE ID = ?`, id)
	return scanOne(row)
}

// Posts returns every post ordered by ID.
func (s *SQLiteStore) Posts(ctx context.Context) ([]Post, error) {
	return s.QueryPosts(ctx,
		`SELECT ID, post_title, post_content, post_type, post_status, post_date
		FROM `+s.tables.Posts+` ORDER BY ID`)
}

// QueryPosts executes an assembled listing query. The statement is built by
// the query runner from trusted fragments; values that originate from users
// are quoted by the fragment builders before they reach this point.
func (s *SQLiteStore) QueryPosts(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

// postExists reports whether a post row exists.
func (s *SQLiteStore) postExists(ctx context.Context, q dbtx, id int64) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM `+s.tables.Posts+` WHERE ID = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("lookup post %d: %w", id, err)
	}
	return nil
}
