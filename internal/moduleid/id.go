package moduleid

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// FromURI computes the id for uri relative to root. Both must be absolute.
func FromURI(root, uri string) (string, error) {
	path, query := SplitQuery(uri)
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("cannot make %q relative to %q: %w", uri, root, err)
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	if query != "" {
		rel += "?" + query
	}
	return rel, nil
}

// SplitQuery splits `path?query` into its parts. The query is returned
// without the '?'.
func SplitQuery(uri string) (path, query string) {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		return uri[:i], uri[i+1:]
	}
	return uri, ""
}

// segmentRegex matches one path segment of an id, without the query. File
// names may contain spaces; control characters are rejected.
var segmentRegex = regexp.MustCompile(`^[^/\x00-\x1f\x7f]+$`)

// Validate checks that id has the canonical shape produced by FromURI.
func Validate(id string) error {
	if id == "" {
		return fmt.Errorf("module id cannot be empty")
	}
	path, _ := SplitQuery(id)
	if !strings.HasPrefix(path, "./") && !strings.HasPrefix(path, "../") {
		return fmt.Errorf("module id %q must start with ./ or ../", id)
	}
	segments := strings.Split(path, "/")
	for _, s := range segments[1:] {
		if s == "" {
			return fmt.Errorf("module id %q contains an empty segment", id)
		}
		if s != ".." && !segmentRegex.MatchString(s) {
			return fmt.Errorf("invalid segment %q in module id %q", s, id)
		}
	}
	if last := segments[len(segments)-1]; last == "." || last == ".." {
		return fmt.Errorf("module id %q does not name a file", id)
	}
	return nil
}
