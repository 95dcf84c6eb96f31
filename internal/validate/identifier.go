// identifier.go validates the identifier-shaped inputs: post types,
// taxonomies, meta keys and the table prefix.
//
// Separated from term.go because identifiers are interpolated into SQL
// (quoted, but still) and into table names, so they follow a strict
// character set. Terms are display labels and only need minimal checks.

package validate

import (
	"fmt"
	"strings"
)

// maxIdentifier bounds identifier length. Matches the widest column the
// store declares for these values.
const maxIdentifier = 191

// PostType validates a post type slug such as "post" or "product".
func PostType(s string) error {
	return identifier(s, ErrInvalidPostType, false)
}

// Taxonomy validates a taxonomy name such as "category" or "product_cat".
func Taxonomy(s string) error {
	return identifier(s, ErrInvalidTaxonomy, false)
}

// MetaKey validates a metadata key. Leading underscores are common for
// hidden keys ("_sku"), so they are allowed.
func MetaKey(s string) error {
	return identifier(s, ErrInvalidMetaKey, false)
}

// TablePrefix validates a table name prefix. Empty is allowed and means
// unprefixed tables.
func TablePrefix(s string) error {
	if s == "" {
		return nil
	}
	return identifier(s, ErrInvalidPrefix, true)
}

// identifier checks s against [A-Za-z0-9_-] (no hyphen when strict, since
// table names are not quoted).
func identifier(s string, sentinel error, strict bool) error {
	if s == "" {
		return fmt.Errorf("%w: empty", sentinel)
	}
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("%w: null byte", sentinel)
	}
	if len(s) > maxIdentifier {
		return fmt.Errorf("%w: longer than %d bytes", sentinel, maxIdentifier)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		case r == '-' && !strict:
		default:
			return fmt.Errorf("%w: %q contains %q", sentinel, s, r)
		}
	}
	return nil
}
