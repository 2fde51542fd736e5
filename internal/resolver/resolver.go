// Package resolver turns import specifiers into canonical module locations.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/moduleid"
)

// Resolver resolves a specifier written in importer (a uri; empty for
// entries) to the uri of the target module.
//
// ok is false when the specifier cannot be resolved; that is an expected
// outcome reported by the caller, not an error. err is reserved for
// failures of the underlying storage.
type Resolver interface {
	Resolve(ctx context.Context, importer, specifier string) (uri string, ok bool, err error)
}

// FSResolver resolves relative and absolute specifiers against the local
// filesystem. Bare specifiers (package names) are never resolved.
type FSResolver struct {
	root       string
	extensions []string
}

// NewFSResolver creates a resolver for entries relative to root, probing
// extensions in order when a specifier omits one.
func NewFSResolver(root string, extensions []string) *FSResolver {
	return &FSResolver{root: root, extensions: extensions}
}

// Resolve implements Resolver.
func (r *FSResolver) Resolve(ctx context.Context, importer, specifier string) (string, bool, error) {
	logger := ctxlog.FromContext(ctx)

	path, query := moduleid.SplitQuery(specifier)
	var candidate string
	switch {
	case filepath.IsAbs(path):
		candidate = path
	case strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") || path == "." || path == "..":
		base := r.root
		if importer != "" {
			importerPath, _ := moduleid.SplitQuery(importer)
			base = filepath.Dir(importerPath)
		}
		candidate = filepath.Join(base, filepath.FromSlash(path))
	default:
		logger.Debug("Bare specifier left unresolved.", "specifier", specifier, "importer", importer)
		return "", false, nil
	}

	resolved, ok, err := r.lookup(candidate)
	if err != nil || !ok {
		return "", false, err
	}
	if query != "" {
		resolved += "?" + query
	}
	logger.Debug("Specifier resolved.", "specifier", specifier, "uri", resolved)
	return resolved, true, nil
}

// lookup tries the path as is, then with each extension, then as a
// directory containing an index file.
func (r *FSResolver) lookup(candidate string) (string, bool, error) {
	tries := []string{candidate}
	for _, ext := range r.extensions {
		tries = append(tries, candidate+ext)
	}
	for _, ext := range r.extensions {
		tries = append(tries, filepath.Join(candidate, "index"+ext))
	}

	for _, p := range tries {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return "", false, fmt.Errorf("error accessing %s: %w", p, err)
		}
		if !info.IsDir() {
			return filepath.Clean(p), true, nil
		}
	}
	return "", false, nil
}
