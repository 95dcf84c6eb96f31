// Package search widens the default keyword search so that it also matches
// post metadata values and taxonomy term names.
//
// The host builds its listing query from three fragments: JOIN, WHERE and
// DISTINCT. When a request's main query is a search, the Gate attaches a
// Rewriter to the request's filter bus. The Rewriter then:
//
//   - extends JOIN with LEFT JOINs onto postmeta and the taxonomy chain,
//   - replaces the host's title/content clause in WHERE with an OR of the
//     body, meta and taxonomy predicates, and
//   - forces DISTINCT, because the joins are one-to-many.
//
// The WHERE stage releases the registration before it returns, so later
// queries on the same request are built without the rewrite.
//
// Predicate construction (Predicates) is pure and independent of the
// substitution into the host's clause (replaceBodyClause). Pipeline runs
// the three stages in order without a host, which is how most tests drive
// the Rewriter.
package search
