// Package javascript implements the script module kinds (js, jsx, ts, tsx)
// and json.
package javascript

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Kind implements the registry.Module interface for this package.
type Kind struct{}

// Register registers the script and json factories and their extensions.
func (Kind) Register(r *registry.Registry) {
	for _, typ := range []module.ModuleType{module.TypeJS, module.TypeJSX, module.TypeTS, module.TypeTSX, module.TypeJSON} {
		typ := typ
		r.RegisterFactory(typ, func(uri string, content []byte) (module.Module, error) {
			return New(typ, uri, string(content)), nil
		})
	}
	r.RegisterExtension(".js", module.TypeJS)
	r.RegisterExtension(".mjs", module.TypeJS)
	r.RegisterExtension(".cjs", module.TypeJS)
	r.RegisterExtension(".jsx", module.TypeJSX)
	r.RegisterExtension(".ts", module.TypeTS)
	r.RegisterExtension(".tsx", module.TypeTSX)
	r.RegisterExtension(".json", module.TypeJSON)
}

// Module is a script or json module.
type Module struct {
	typ    module.ModuleType
	uri    string
	source string
	deps   []dependency.ModuleDependency
}

// New creates a module from its source text.
func New(typ module.ModuleType, uri, source string) *Module {
	return &Module{typ: typ, uri: uri, source: source}
}

func (m *Module) ModuleType() module.ModuleType { return m.typ }

// SourceTypes is always script output.
func (m *Module) SourceTypes(*module.GraphModule, module.Compilation) []module.SourceType {
	return []module.SourceType{module.SourceJavaScript}
}

// Dependencies scans the source. Json has no edges.
func (m *Module) Dependencies() []dependency.ModuleDependency {
	if m.typ.IsJSLike() {
		m.deps = scan(m.source)
	} else {
		m.deps = []dependency.ModuleDependency{}
	}
	return append([]dependency.ModuleDependency(nil), m.deps...)
}

// Render wraps the module in a definition keyed by its id. Specifiers that
// resolve in the graph are rewritten to the target's id.
func (m *Module) Render(requested module.SourceType, node *module.GraphModule, c module.Compilation) (*module.RenderResult, error) {
	if requested != module.SourceJavaScript {
		return nil, nil
	}

	body := m.source
	if !m.typ.IsJSLike() {
		if !json.Valid([]byte(m.source)) {
			return nil, fmt.Errorf("invalid json in %s", m.uri)
		}
		body = "module.exports = " + strings.TrimSpace(m.source) + ";"
	} else if c != nil && c.Graph() != nil {
		var err error
		if body, err = m.rewrite(node.URI(), c.Graph()); err != nil {
			return nil, err
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s\n", node.ID())
	fmt.Fprintf(&sb, "__modgraph_define__(%q, function (module, exports, require) {\n", node.ID())
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString("});\n")
	return module.JavaScriptResult(sb.String()), nil
}

func (m *Module) rewrite(importer string, g module.Lookup) (string, error) {
	type edit struct {
		span dependency.Span
		id   string
	}
	var edits []edit
	for _, d := range m.deps {
		if d.Span.Start < 0 || d.Span.End > len(m.source) || d.Span.Start > d.Span.End {
			return "", fmt.Errorf("%w: span %d..%d outside source of %d bytes", module.ErrInvariant, d.Span.Start, d.Span.End, len(m.source))
		}
		if target, ok := g.ModuleByDependency(dependency.New(importer, d)); ok {
			edits = append(edits, edit{span: d.Span, id: target.ID()})
		}
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].span.Start > edits[j].span.Start })

	out := m.source
	for _, e := range edits {
		out = out[:e.span.Start] + e.id + out[e.span.End:]
	}
	return out, nil
}
