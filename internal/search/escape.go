// escape.go renders user input as SQL literals.
//
// Everything the rewriter puts into a fragment passes through here. The
// phrase is escaped for LIKE first (backslash is the escape character and
// every LIKE the rewriter emits declares it) and then quoted. Identifiers
// in IN lists are quoted the same way.

package search

import "strings"

// escapeChar is declared on every LIKE the rewriter emits.
const escapeChar = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes the LIKE wildcards and the escape character itself.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Quote renders s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// LikeLiteral returns the quoted substring pattern for phrase.
func LikeLiteral(phrase string) string {
	return Quote("%" + EscapeLike(phrase) + "%")
}

// inList renders items as a parenthesised list of quoted literals.
func inList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = Quote(it)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}
