package resolver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("//"), 0644))
	}
	return root
}

func TestFSResolver_Resolve(t *testing.T) {
	root := writeTree(t,
		"src/index.js",
		"src/util.ts",
		"src/components/index.jsx",
		"src/logo.svg",
		"lib/shared.js",
	)
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := NewFSResolver(root, []string{".js", ".jsx", ".ts"})
	importer := filepath.Join(root, "src", "index.js")

	testCases := []struct {
		name      string
		importer  string
		specifier string
		expectOK  bool
		expected  string
	}{
		{"entry relative to root", "", "./src/index.js", true, "src/index.js"},
		{"extension probing", importer, "./util", true, "src/util.ts"},
		{"directory index", importer, "./components", true, "src/components/index.jsx"},
		{"parent directory", importer, "../lib/shared", true, "lib/shared.js"},
		{"query is preserved", importer, "./logo.svg?inline", true, "src/logo.svg?inline"},
		{"missing file", importer, "./nope", false, ""},
		{"bare specifier", importer, "react", false, ""},
		{"path below a file", importer, "./util.ts/x", false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uri, ok, err := r.Resolve(ctx, tc.importer, tc.specifier)
			require.NoError(t, err)
			require.Equal(t, tc.expectOK, ok)
			if ok {
				assert.Equal(t, filepath.Join(root, filepath.FromSlash(tc.expected)), uri)
			}
		})
	}

	abs := filepath.Join(root, "lib", "shared.js")
	uri, ok, err := r.Resolve(ctx, importer, abs)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, abs, uri)
}
