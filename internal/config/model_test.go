package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Merge(t *testing.T) {
	base := Defaults()
	base.Context = "/a"
	base.Entries = []*Entry{{Name: "main", Import: "./a.js"}}

	base.Merge(&Options{
		Entries: []*Entry{{Name: "admin", Import: "./admin.js"}},
		Resolve: ResolveOptions{Extensions: []string{".ts"}},
		CSS:     CSSOptions{EmitJSStub: true},
	})

	assert.Equal(t, "/a", base.Context, "unset context keeps the previous value")
	require.Len(t, base.Entries, 2)
	assert.Equal(t, "admin", base.Entries[1].Name)
	assert.Equal(t, []string{".ts"}, base.Resolve.Extensions)
	assert.Equal(t, DefaultDataURLMaxSize, base.Module.Parser.DataURLCondition.Limit())
	assert.True(t, base.CSS.EmitJSStub)
}

func TestDataURLCondition_KeepsExplicitZero(t *testing.T) {
	assert.Equal(t, DefaultDataURLMaxSize, DataURLCondition{}.Limit())

	o := &Options{Module: ModuleOptions{Parser: ParserOptions{
		DataURLCondition: DataURLCondition{MaxSize: SizeLimit(0)},
	}}}
	o.ApplyDefaults()
	assert.Equal(t, 0, o.Module.Parser.DataURLCondition.Limit())

	base := Defaults()
	base.Merge(o)
	assert.Equal(t, 0, base.Module.Parser.DataURLCondition.Limit(), "an explicit zero overrides the default")

	base.Merge(&Options{})
	assert.Equal(t, 0, base.Module.Parser.DataURLCondition.Limit(), "an unset limit keeps the previous value")
}

func TestApplyDefaults_DoesNotAliasDefaults(t *testing.T) {
	o := Defaults()
	o.Resolve.Extensions[0] = ".changed"
	assert.Equal(t, ".js", DefaultExtensions[0])
}

func TestOptions_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		opts      *Options
		expectErr []string
	}{
		{
			name: "valid",
			opts: &Options{Context: "/p", Entries: []*Entry{{Name: "main", Import: "./index.js"}}},
		},
		{
			name:      "missing context and entries",
			opts:      &Options{},
			expectErr: []string{"context is not set", "at least one entry is required"},
		},
		{
			name: "relative context and duplicate entries",
			opts: &Options{Context: "p", Entries: []*Entry{
				{Name: "main", Import: "./a.js"},
				{Name: "main", Import: "./b.js"},
			}},
			expectErr: []string{`context "p" is not an absolute path`, `entry "main" is declared more than once`},
		},
		{
			name: "bad extension",
			opts: &Options{Context: "/p", Entries: []*Entry{{Name: "main", Import: "./a.js"}},
				Resolve: ResolveOptions{Extensions: []string{"js"}}},
			expectErr: []string{`resolve extension "js" must start with a dot`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if len(tc.expectErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tc.expectErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
