package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sheet = `@import "./reset.css";
@import url('theme.css') screen;
/* url(./ignored.png) */
.logo { background: url("./logo.png") no-repeat; }
.icon { background: url(data:image/png;base64,AAAA); }
.remote { background: url(https://cdn.example.com/x.png); }
`

func TestScan(t *testing.T) {
	var got []string
	for _, d := range scan(sheet) {
		got = append(got, d.String())
		assert.Equal(t, d.Specifier, sheet[d.Span.Start:d.Span.End])
	}
	expected := []string{
		`at-import "./reset.css"`,
		`at-import "theme.css"`,
		`url-token "./logo.png"`,
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_IgnoresNonReferences(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "url text inside a string",
			src:      `.a::after { content: "url(./fake.png)"; }`,
			expected: nil,
		},
		{
			name:     "trailing comment after a rule",
			src:      `.a { color: red; } /* @import "./old.css"; */`,
			expected: nil,
		},
		{
			name:     "case-insensitive at-rule and function",
			src:      `@IMPORT "./a.css"; .b { background: URL( "./b.png" ); }`,
			expected: []string{`at-import "./a.css"`, `url-token "./b.png"`},
		},
		{
			name:     "other at-rules",
			src:      `@font-face { src: url(./font.woff2) format("woff2"); } @media print { .c { background: url('./c.png'); } }`,
			expected: []string{`url-token "./font.woff2"`, `url-token "./c.png"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, d := range scan(tc.src) {
				got = append(got, d.String())
				assert.Equal(t, d.Specifier, tc.src[d.Span.Start:d.Span.End])
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("scan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModule_SourceTypesFollowOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := New("/p/a.css", sheet)

	plain := mocks.NewMockCompilation(ctrl)
	plain.EXPECT().Options().Return(config.Defaults()).AnyTimes()
	assert.Equal(t, []module.SourceType{module.SourceCSS}, m.SourceTypes(nil, plain))

	withStub := config.Defaults()
	withStub.CSS.EmitJSStub = true
	stub := mocks.NewMockCompilation(ctrl)
	stub.EXPECT().Options().Return(withStub).AnyTimes()
	assert.Equal(t, []module.SourceType{module.SourceCSS, module.SourceJavaScript}, m.SourceTypes(nil, stub))
}

func TestModule_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := New("/p/a.css", sheet)
	deps := m.Dependencies()
	require.Len(t, deps, 3)

	node := module.NewGraphModule("", "./a.css", "/p/a.css", m, nil)
	logo := module.NewGraphModule("", "./img/logo.png", "/p/img/logo.png", New("/p/img/logo.png", ""), nil)

	lookup := mocks.NewMockLookup(ctrl)
	lookup.EXPECT().ModuleByDependency(dependency.New("/p/a.css", deps[2])).Return(logo, true)
	lookup.EXPECT().ModuleByDependency(gomock.Any()).Return(nil, false).AnyTimes()

	c := mocks.NewMockCompilation(ctrl)
	c.EXPECT().Options().Return(config.Defaults()).AnyTimes()
	c.EXPECT().Graph().Return(lookup).AnyTimes()

	res, err := node.Render(module.SourceCSS, c)
	require.NoError(t, err)
	text, ok := res.CSS()
	require.True(t, ok)
	assert.Contains(t, text, "/* ./a.css */")
	assert.Contains(t, text, `url("./img/logo.png")`)
	assert.Contains(t, text, `@import "./reset.css";`)

	res, err = node.Render(module.SourceJavaScript, c)
	require.NoError(t, err)
	assert.Nil(t, res, "no script companion unless configured")

	res, err = node.Render(module.SourceAsset, c)
	require.NoError(t, err)
	assert.Nil(t, res)
}
