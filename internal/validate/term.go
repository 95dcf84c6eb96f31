// term.go implements term name validation.
//
// Separated from identifier.go because term names are labels shown to
// readers ("Wireless Accessories"), not identifiers. Only clearly dangerous
// inputs (empty, null bytes) are rejected.

package validate

import (
	"fmt"
	"strings"
)

// Term validates a term name.
func Term(t string) error {
	if strings.TrimSpace(t) == "" {
		return fmt.Errorf("%w: empty term", ErrInvalidTerm)
	}
	if strings.ContainsRune(t, 0) {
		return fmt.Errorf("%w: null byte in term", ErrInvalidTerm)
	}
	return nil
}
