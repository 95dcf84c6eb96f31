// Package validate provides input validation for xsearch's domain types.
//
// This package enforces data integrity rules at the boundary between user
// input and the storage layer. Each validation function returns nil on
// success or a descriptive error on failure.
//
// # Design Philosophy
//
// Post types, meta keys and taxonomy names end up inside generated SQL
// (IN lists, JOIN conditions), so they are held to an identifier shape.
// Term names and meta values are free text and only reject clearly
// dangerous input (empty, null bytes).
//
// # Validation Functions
//
// PostType, Taxonomy and MetaKey validate identifiers.
// TablePrefix validates the configurable table name prefix.
// Term validates term names (labels, not identifiers).
// Title, Status and Content validate the remaining post fields.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidPostType, ErrInvalidTaxonomy, etc.). Use errors.Is() for
// type-safe error checking:
//
//	if errors.Is(err, validate.ErrInvalidTaxonomy) {
//	    // skip malformed registry entry
//	}
package validate
