package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauses(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "top level only",
			in:   "SELECT p.* FROM p WHERE 1=1 AND (a = 1 AND b = 2) ORDER BY d DESC LIMIT 10",
			want: "SELECT p.* FROM p\nWHERE 1=1\nAND (a = 1 AND b = 2)\nORDER BY d DESC\nLIMIT 10",
		},
		{
			name: "keywords inside literals",
			in:   "SELECT p.* FROM p WHERE 1=1 AND p.t LIKE '% AND %'",
			want: "SELECT p.* FROM p\nWHERE 1=1\nAND p.t LIKE '% AND %'",
		},
		{
			name: "doubled quotes",
			in:   "SELECT p.* FROM p LEFT JOIN m ON 1=1 WHERE p.t = 'it''s' AND x",
			want: "SELECT p.* FROM p\nLEFT JOIN m ON 1=1\nWHERE p.t = 'it''s'\nAND x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clauses(tt.in))
		})
	}
}

func TestSQL(t *testing.T) {
	oldSQL := "SELECT p.* FROM p WHERE 1=1 AND (a LIKE 'x') ORDER BY d LIMIT 10"
	newSQL := "SELECT DISTINCT p.* FROM p LEFT JOIN m ON 1=1 WHERE 1=1 AND (a LIKE 'x' OR m.v LIKE 'x') ORDER BY d LIMIT 10"

	r := SQL(oldSQL, newSQL)
	assert.True(t, r.Changed())
	assert.Contains(t, r.Diff, "- SELECT p.* FROM p\n")
	assert.Contains(t, r.Diff, "+ SELECT DISTINCT p.* FROM p\n")
	assert.Contains(t, r.Diff, "+ LEFT JOIN m ON 1=1\n")
	assert.Contains(t, r.Diff, "  WHERE 1=1\n")
	assert.Contains(t, r.Diff, "  ORDER BY d\n")

	same := SQL(oldSQL, oldSQL)
	assert.False(t, same.Changed())
}

func TestFormat(t *testing.T) {
	r := Compute("a\nb\n", "a\nc\n", "default", "rewritten")

	plain := r.Format(false)
	assert.True(t, strings.HasPrefix(plain, "--- default\n+++ rewritten\n"))
	assert.Contains(t, plain, "- b\n")
	assert.Contains(t, plain, "+ c\n")

	coloured := r.Format(true)
	assert.Contains(t, coloured, "\033[31m- b\033[0m")
	assert.Contains(t, coloured, "\033[32m+ c\033[0m")
}

func TestFormat_CollapsesLongEqualRuns(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	oldText := strings.Join(lines, "\n") + "\nold\n"
	newText := strings.Join(lines, "\n") + "\nnew\n"

	r := Compute(oldText, newText, "a", "b")
	assert.Contains(t, r.Diff, "  ...\n")
	assert.NotContains(t, r.Diff, "  4\n")
}
