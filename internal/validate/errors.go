// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category.
//
// Design: Sentinel errors (not error types) because validation failures
// don't carry additional context beyond the category. Detailed messages
// are provided by wrapping these with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrInvalidPostType = errors.New("invalid post type")
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")
	ErrInvalidMetaKey  = errors.New("invalid meta key")
	ErrInvalidTerm     = errors.New("invalid term")
	ErrInvalidPrefix   = errors.New("invalid table prefix")
	ErrInvalidPost     = errors.New("invalid post")
	ErrInvalidStatus   = errors.New("invalid post status")
	ErrContentTooLarge = errors.New("content too large")
)
