// replace.go substitutes the combined predicate into the host's clause.
//
// The host emits its search clause as
//
//	(posts.post_title LIKE '<lit>') OR (posts.post_content LIKE '<lit>')
//
// Only that shape is recognised. Anything else is left alone and the
// search falls back to the host's own behaviour.

package search

import (
	"regexp"
)

// bodyClausePattern matches the host's two-field clause for the posts
// table. Literals may contain doubled quotes.
func bodyClausePattern(posts string) *regexp.Regexp {
	p := regexp.QuoteMeta(posts)
	lit := `'(?:[^']|'')*'`
	return regexp.MustCompile(
		`\(\s*` + p + `\.post_title\s+LIKE\s*` + lit + `\s*\)` +
			`\s+OR\s+` +
			`\(\s*` + p + `\.post_content\s+LIKE\s*` + lit + `\s*\)`)
}

// replaceBodyClause replaces the first match of re in where with
// "(" + combined + ")". It reports whether a match was found.
func replaceBodyClause(re *regexp.Regexp, where, combined string) (string, bool) {
	loc := re.FindStringIndex(where)
	if loc == nil {
		return where, false
	}
	return where[:loc[0]] + "(" + combined + ")" + where[loc[1]:], true
}
