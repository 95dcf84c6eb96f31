// repo_gitignore.go marks databases as local by listing them in
// .xsearch/.gitignore.
//
// Separated from repo.go to isolate gitignore manipulation. Existing lines
// and formatting are preserved; local databases are appended under a
// single header comment.

package repo

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const localDBHeader = "# Local databases (not committed)"

// gitignoreLines returns the trimmed lines of dir/.gitignore and its raw
// content. An empty dir is discovered from the working directory.
func gitignoreLines(dir string) (path, raw string, lines []string, err error) {
	if dir == "" {
		if dir, err = DiscoverDir(); err != nil {
			return "", "", nil, err
		}
	}
	path = filepath.Join(dir, ".gitignore")
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", nil, err
	}
	raw = string(content)
	for _, line := range strings.Split(raw, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return path, raw, lines, nil
}

// IgnoreDB adds a database to the gitignore (marks as local).
func IgnoreDB(name, dir string) error {
	path, raw, lines, err := gitignoreLines(dir)
	if err != nil {
		return err
	}

	dbFile := DBFileName(name)
	if slices.Contains(lines, dbFile) {
		return nil
	}
	if !slices.Contains(lines, localDBHeader) {
		raw += "\n" + localDBHeader + "\n"
	}
	return os.WriteFile(path, []byte(raw+dbFile+"\n"), 0644)
}

// IsIgnored reports whether a database is listed in the gitignore.
func IsIgnored(name, dir string) (bool, error) {
	_, _, lines, err := gitignoreLines(dir)
	if err != nil {
		return false, err
	}
	return slices.Contains(lines, DBFileName(name)), nil
}
