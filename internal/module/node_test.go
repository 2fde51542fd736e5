package module_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubModule is a script-like module with no behaviour of its own.
type stubModule struct {
	module.NoDependencies
	typ module.ModuleType
}

func (s *stubModule) ModuleType() module.ModuleType { return s.typ }

func (s *stubModule) SourceTypes(*module.GraphModule, module.Compilation) []module.SourceType {
	return []module.SourceType{module.SourceJavaScript}
}

func (s *stubModule) Render(st module.SourceType, n *module.GraphModule, _ module.Compilation) (*module.RenderResult, error) {
	if st != module.SourceJavaScript {
		return nil, nil
	}
	return module.JavaScriptResult("// " + n.ID()), nil
}

// mapLookup resolves records by specifier only.
type mapLookup map[string]*module.GraphModule

func (m mapLookup) ModuleByDependency(dep dependency.Dependency) (*module.GraphModule, bool) {
	n, ok := m[dep.Detail.Specifier]
	return n, ok
}

func record(importer, specifier string, kind dependency.ResolveKind) dependency.Dependency {
	return dependency.New(importer, dependency.ModuleDependency{Specifier: specifier, Kind: kind})
}

func newNode(id string, deps ...dependency.Dependency) *module.GraphModule {
	return module.NewGraphModule("", id, "/p/"+id, &stubModule{typ: module.TypeJS}, deps)
}

func ids(nodes []*module.GraphModule) []string {
	out := []string{}
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}

func TestDependedModules_StaticAndDynamicSplit(t *testing.T) {
	b := newNode("b")
	c := newNode("c")
	a := newNode("a",
		record("/p/a", "b", dependency.Import),
		record("/p/a", "c", dependency.DynamicImport),
	)
	g := mapLookup{"b": b, "c": c}

	assert.Equal(t, []*module.GraphModule{b}, a.DependedModules(g))
	assert.Equal(t, []*module.GraphModule{c}, a.DynamicDependedModules(g))
}

func TestDependedModules_UnresolvedRecordIsOmitted(t *testing.T) {
	b := newNode("b")
	a := newNode("a",
		record("/p/a", "D", dependency.Import),
		record("/p/a", "b", dependency.Require),
		record("/p/a", "D", dependency.DynamicImport),
	)
	g := mapLookup{"b": b}

	for i := 0; i < 2; i++ {
		assert.Equal(t, []string{"b"}, ids(a.DependedModules(g)))
		assert.Empty(t, a.DynamicDependedModules(g))
	}
	assert.Len(t, g, 1, "traversal must not touch the graph")
	assert.Len(t, a.Dependencies(), 3)
}

func TestDependedModules_CycleResolvesByLookup(t *testing.T) {
	g := mapLookup{}
	a := newNode("a", record("/p/a", "b", dependency.Import))
	b := newNode("b", record("/p/b", "a", dependency.Import))
	g["a"] = a
	g["b"] = b

	assert.Equal(t, []*module.GraphModule{b}, a.DependedModules(g))
	assert.Equal(t, []*module.GraphModule{a}, b.DependedModules(g))
}

func TestDependedModules_PartitionAndOrder(t *testing.T) {
	kinds := []dependency.ResolveKind{
		dependency.Import, dependency.DynamicImport, dependency.Require,
		dependency.AtImport, dependency.DynamicImport, dependency.URLToken,
		dependency.ModuleHotAccept, dependency.Import,
	}
	g := mapLookup{}
	var deps []dependency.Dependency
	var wantStatic, wantDynamic, wantAll []string
	for i, k := range kinds {
		spec := string(rune('a' + i))
		deps = append(deps, record("/p/root", spec, k))
		if i == 3 {
			continue // left unresolved
		}
		g[spec] = newNode(spec)
		wantAll = append(wantAll, spec)
		if k.IsDynamic() {
			wantDynamic = append(wantDynamic, spec)
		} else {
			wantStatic = append(wantStatic, spec)
		}
	}
	root := newNode("root", deps...)

	static := ids(root.DependedModules(g))
	dynamic := ids(root.DynamicDependedModules(g))

	if diff := cmp.Diff(wantStatic, static); diff != "" {
		t.Errorf("static order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantDynamic, dynamic); diff != "" {
		t.Errorf("dynamic order mismatch (-want +got):\n%s", diff)
	}

	seen := map[string]bool{}
	for _, id := range static {
		seen[id] = true
	}
	for _, id := range dynamic {
		require.False(t, seen[id], "%s appears in both views", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(wantAll))
}

func TestDependedModules_OnlyQueriesMatchingRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockLookup(ctrl)

	static := record("/p/a", "./b", dependency.Import)
	dynamic := record("/p/a", "./c", dependency.DynamicImport)
	a := newNode("a", static, dynamic)
	b := newNode("b")

	lookup.EXPECT().ModuleByDependency(static).Return(b, true).Times(1)
	lookup.EXPECT().ModuleByDependency(dynamic).Return(nil, false).Times(1)

	assert.Equal(t, []*module.GraphModule{b}, a.DependedModules(lookup))
	assert.Empty(t, a.DynamicDependedModules(lookup))
}

func TestNewGraphModule_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mod := mocks.NewMockModule(ctrl)
	mod.EXPECT().ModuleType().Return(module.TypeCSS).Times(1)

	deps := []dependency.Dependency{record("/p/main.css", "./reset.css", dependency.AtImport)}
	n := module.NewGraphModule("main", "./main.css", "/p/main.css", mod, deps)
	deps[0].Detail.Specifier = "mutated"

	name, isEntry := n.Name()
	assert.True(t, isEntry)
	assert.Equal(t, "main", name)
	assert.Equal(t, "./main.css", n.ID())
	assert.Equal(t, "/p/main.css", n.URI())
	assert.Equal(t, module.TypeCSS, n.ModuleType(), "type is cached from the module once")
	assert.Equal(t, "./reset.css", n.Dependencies()[0].Detail.Specifier)
	assert.Same(t, mod, n.Module())

	_, isEntry = newNode("x").Name()
	assert.False(t, isEntry)
}

func TestGraphModule_RenderWrapsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mod := mocks.NewMockModule(ctrl)
	mod.EXPECT().ModuleType().Return(module.TypeJS)
	n := module.NewGraphModule("", "./a.js", "/p/a.js", mod, nil)

	cause := errors.New("codegen fault")
	mod.EXPECT().Render(module.SourceJavaScript, n, nil).Return(nil, cause)

	_, err := n.Render(module.SourceJavaScript, nil)
	require.Error(t, err)

	var ce *module.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "./a.js", ce.ModuleID)
	assert.Equal(t, "/p/a.js", ce.URI)
	assert.Equal(t, module.SourceJavaScript, ce.SourceType)
	assert.ErrorIs(t, err, cause)
}

func TestGraphModule_RenderOutsideSourceTypesIsNoOutput(t *testing.T) {
	n := newNode("a")
	for _, st := range []module.SourceType{module.SourceCSS, module.SourceAsset} {
		require.False(t, module.ContainsSourceType(n.SourceTypes(nil), st))
		res, err := n.Render(st, nil)
		require.NoError(t, err)
		assert.Nil(t, res)
	}
	res, err := n.Render(module.SourceJavaScript, nil)
	require.NoError(t, err)
	code, ok := res.JavaScript()
	require.True(t, ok)
	assert.Equal(t, "// a", code)
}
