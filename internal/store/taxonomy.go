// taxonomy.go implements the taxonomy registry and term assignment.
//
// Separated from meta.go because taxonomies are categorical, not key-value:
// a term lives once in the terms table, is scoped to a taxonomy through
// term_taxonomy, and is attached to posts through term_relationships.
//
// Design: The registry (taxonomy_types) is ordered by insertion id so that
// discovery returns taxonomies in the order they were registered, the same
// order an operator sees them configured.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/xsearch/internal/validate"
)

// RegisterTaxonomy attaches taxonomy to each of postTypes.
func (s *SQLiteStore) RegisterTaxonomy(ctx context.Context, taxonomy string, postTypes []string) error {
	if err := validate.Taxonomy(taxonomy); err != nil {
		return err
	}
	if len(postTypes) == 0 {
		return fmt.Errorf("register %s: %w", taxonomy, validate.ErrInvalidPostType)
	}
	for _, pt := range postTypes {
		if err := validate.PostType(pt); err != nil {
			return err
		}
	}

	return s.Tx(ctx, func(tx *sql.Tx) error {
		for _, pt := range postTypes {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO `+s.tables.TaxonomyTypes+` (taxonomy, post_type) VALUES (?, ?)`,
				taxonomy, pt); err != nil {
				return fmt.Errorf("register %s for %s: %w", taxonomy, pt, err)
			}
		}
		return nil
	})
}

// ObjectTaxonomies returns the distinct taxonomies attached to any of
// postTypes, ordered by first registration. Nil postTypes returns nil.
func (s *SQLiteStore) ObjectTaxonomies(ctx context.Context, postTypes []string) ([]string, error) {
	if len(postTypes) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(postTypes)), ", ")
	args := make([]any, len(postTypes))
	for i, pt := range postTypes {
		args[i] = pt
	}

	rows, err := s.q.QueryContext(ctx,
		`SELECT taxonomy FROM `+s.tables.TaxonomyTypes+`
		WHERE post_type IN (`+placeholders+`)
		GROUP BY taxonomy
		ORDER BY MIN(id)`, args...)
	if err != nil {
		return nil, fmt.Errorf("object taxonomies: %w", err)
	}
	defer rows.Close()

	var taxonomies []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan taxonomy: %w", err)
		}
		taxonomies = append(taxonomies, t)
	}
	return taxonomies, rows.Err()
}

// Registrations returns each registered taxonomy with its post types. Both
// levels follow registration order.
func (s *SQLiteStore) Registrations(ctx context.Context) ([]Registration, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT taxonomy, post_type FROM `+s.tables.TaxonomyTypes+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("registrations: %w", err)
	}
	defer rows.Close()

	var regs []Registration
	index := map[string]int{}
	for rows.Next() {
		var taxonomy, postType string
		if err := rows.Scan(&taxonomy, &postType); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		i, ok := index[taxonomy]
		if !ok {
			i = len(regs)
			index[taxonomy] = i
			regs = append(regs, Registration{Taxonomy: taxonomy})
		}
		regs[i].PostTypes = append(regs[i].PostTypes, postType)
	}
	return regs, rows.Err()
}

// AssignTerm attaches the term name within taxonomy to a post. The term and
// its taxonomy row are created when missing; assigning twice is a no-op.
func (s *SQLiteStore) AssignTerm(ctx context.Context, postID int64, taxonomy, name string) error {
	if err := validate.Taxonomy(taxonomy); err != nil {
		return err
	}
	if err := validate.Term(name); err != nil {
		return err
	}

	return s.Tx(ctx, func(tx *sql.Tx) error {
		if err := s.postExists(ctx, tx, postID); err != nil {
			return err
		}
		ttID, err := s.termTaxonomyID(ctx, tx, taxonomy, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO `+s.tables.TermRelationships+` (object_id, term_taxonomy_id) VALUES (?, ?)`,
			postID, ttID); err != nil {
			return fmt.Errorf("assign term %s: %w", name, err)
		}
		return nil
	})
}

// termTaxonomyID finds or creates the term_taxonomy row for name in taxonomy.
func (s *SQLiteStore) termTaxonomyID(ctx context.Context, tx *sql.Tx, taxonomy, name string) (int64, error) {
	var ttID int64
	err := tx.QueryRowContext(ctx,
		`SELECT tt.term_taxonomy_id
		FROM `+s.tables.TermTaxonomy+` tt
		JOIN `+s.tables.Terms+` t ON t.term_id = tt.term_id
		WHERE tt.taxonomy = ? AND t.name = ?`, taxonomy, name).Scan(&ttID)
	if err == nil {
		return ttID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup term %s: %w", name, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO `+s.tables.Terms+` (name, slug) VALUES (?, ?)`, name, slugify(name))
	if err != nil {
		return 0, fmt.Errorf("insert term %s: %w", name, err)
	}
	termID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert term %s: %w", name, err)
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO `+s.tables.TermTaxonomy+` (term_id, taxonomy) VALUES (?, ?)`, termID, taxonomy)
	if err != nil {
		return 0, fmt.Errorf("insert term taxonomy %s: %w", taxonomy, err)
	}
	return res.LastInsertId()
}

// Terms returns the terms attached to a post.
func (s *SQLiteStore) Terms(ctx context.Context, postID int64) ([]Term, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT t.term_id, t.name, t.slug, tt.taxonomy
		FROM `+s.tables.TermRelationships+` tr
		JOIN `+s.tables.TermTaxonomy+` tt ON tt.term_taxonomy_id = tr.term_taxonomy_id
		JOIN `+s.tables.Terms+` t ON t.term_id = tt.term_id
		WHERE tr.object_id = ?
		ORDER BY tt.taxonomy, t.name`, postID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Taxonomy); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// slugify lowercases name and collapses runs of non-alphanumerics to "-".
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
