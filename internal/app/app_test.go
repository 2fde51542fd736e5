package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modgraph/internal/compilation"
	"github.com/specialistvlad/modgraph/internal/hcl_adapter"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/testutil"
	"github.com/specialistvlad/modgraph/internal/yaml_adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// setupAppTest creates a new app over files for system testing. Set
// MODGRAPH_TEST_LOGS=true to print the captured logs.
func setupAppTest(t *testing.T, files map[string]string, cfg Config, modules ...registry.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	root := testutil.WriteTree(t, files)
	cfg.ConfigPath = filepath.Join(root, cfg.ConfigPath)
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := NewApp(out, logs, appConfig, LoaderForPath(appConfig.ConfigPath), modules...)

	t.Cleanup(func() {
		if os.Getenv("MODGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}

var project = map[string]string{
	"modgraph.hcl": `
entry "main" {
  import = "./src/index.js"
}
`,
	"src/index.js": "import \"./app.css\";\nimport(\"./page\");\n",
	"src/app.css":  "body { color: red; }\n",
	"src/page.js":  "export default 1;\n",
}

func TestApp_RunText(t *testing.T) {
	a, out, logs := setupAppTest(t, project, Config{ConfigPath: "modgraph.hcl"})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), `./src/index.js (entry "main") [js]`)
	assert.Contains(t, out.String(), "    -> ./src/app.css")
	assert.Contains(t, out.String(), "split points: ./src/page.js")
	assert.Contains(t, logs.String(), "Build finished.")
}

func TestApp_RunJSONAndYAML(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			a, out, _ := setupAppTest(t, project, Config{ConfigPath: "modgraph.hcl", Format: format})
			require.NoError(t, a.Run(context.Background()))

			var report compilation.Report
			if format == FormatJSON {
				require.NoError(t, json.Unmarshal(out.Bytes(), &report))
			} else {
				require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
			}
			require.Len(t, report.Modules, 3)
			assert.Equal(t, "main", report.Modules[0].Entry)
			assert.Equal(t, []string{"./src/page.js"}, report.SplitPoints)
		})
	}
}

func TestApp_RunReportsRenderFailures(t *testing.T) {
	files := map[string]string{
		"modgraph.yaml": "entries:\n  - name: main\n    import: ./index.js\n",
		"index.js":      "import data from \"./data.json\";\n",
		"data.json":     "{",
	}
	a, out, _ := setupAppTest(t, files, Config{ConfigPath: "modgraph.yaml"})

	err := a.Run(context.Background())
	var failed *ErrBuildFailed
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, err.Error(), "./data.json")
	assert.Contains(t, out.String(), "error: failed to render module", "the report is still written")
}

func TestApp_ContextOverride(t *testing.T) {
	files := map[string]string{
		"conf/modgraph.hcl": "entry \"main\" {\n  import = \"./index.js\"\n}\n",
		"index.js":          "export default 1;\n",
	}
	root := testutil.WriteTree(t, files)
	appConfig, err := NewConfig(Config{ConfigPath: filepath.Join(root, "conf"), Context: root})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &testutil.SafeBuffer{}, appConfig, hcl_adapter.NewLoader())
	assert.Equal(t, root, a.Options().Context)
	require.NoError(t, a.Run(context.Background()))
}

func TestNewApp_PanicsOnBadConfig(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"modgraph.hcl": `entry "main" {`})
	appConfig, err := NewConfig(Config{ConfigPath: filepath.Join(root, "modgraph.hcl")})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, &testutil.SafeBuffer{}, appConfig, hcl_adapter.NewLoader())
	})
}

func TestNewApp_DefaultModules(t *testing.T) {
	a, _, _ := setupAppTest(t, project, Config{ConfigPath: "modgraph.hcl"})
	assert.Len(t, a.Registry().Types(), 10)
}

func TestLoaderForPath(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"hcl/a.hcl":   "",
		"yaml/a.yaml": "",
		"mixed/a.hcl": "",
		"mixed/b.yml": "",
	})

	testCases := []struct {
		path     string
		expected any
	}{
		{filepath.Join(root, "hcl"), &hcl_adapter.Loader{}},
		{filepath.Join(root, "yaml"), &yaml_adapter.Loader{}},
		{filepath.Join(root, "mixed"), &hcl_adapter.Loader{}},
		{filepath.Join(root, "x.yml"), &yaml_adapter.Loader{}},
		{filepath.Join(root, "x.hcl"), &hcl_adapter.Loader{}},
	}
	for _, tc := range testCases {
		t.Run(filepath.Base(tc.path), func(t *testing.T) {
			assert.IsType(t, tc.expected, LoaderForPath(tc.path))
		})
	}
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{ConfigPath: "x", Format: "xml"})
	assert.EqualError(t, err, `unknown report format "xml"`)

	cfg, err := NewConfig(Config{ConfigPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 1, cfg.Workers)
}
