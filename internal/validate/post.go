// post.go implements validation of the post fields that are not
// identifiers: title, status and content.
//
// Design: Content is only checked for size. Posts can hold any UTF-8 text,
// and the limit exists to stop an accidental pipe of a huge file from
// bloating the database. Status is held to the identifier shape because
// it is quoted into the listing query's WHERE clause.

package validate

import (
	"fmt"
	"strings"
)

// MaxContent is the largest post body accepted, in bytes.
const MaxContent = 16 << 20

// Title validates a post title.
func Title(t string) error {
	if strings.TrimSpace(t) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidPost)
	}
	if strings.ContainsRune(t, 0) {
		return fmt.Errorf("%w: null byte in title", ErrInvalidPost)
	}
	return nil
}

// Status validates a post status such as "publish" or "draft".
func Status(s string) error {
	return identifier(s, ErrInvalidStatus, false)
}

// Content validates post content size. A maxLen of 0 means no limit.
func Content(content string, maxLen int64) error {
	if maxLen > 0 && int64(len(content)) > maxLen {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrContentTooLarge, len(content), maxLen)
	}
	return nil
}
