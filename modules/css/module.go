// Package css implements the stylesheet module kind.
package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Kind implements the registry.Module interface for this package.
type Kind struct{}

// Register registers the css factory and extension.
func (Kind) Register(r *registry.Registry) {
	r.RegisterFactory(module.TypeCSS, func(uri string, content []byte) (module.Module, error) {
		return New(uri, string(content)), nil
	})
	r.RegisterExtension(".css", module.TypeCSS)
}

// Module is a stylesheet.
type Module struct {
	uri    string
	source string
	deps   []dependency.ModuleDependency
}

// New creates a stylesheet module from its text.
func New(uri, source string) *Module {
	return &Module{uri: uri, source: source}
}

func (m *Module) ModuleType() module.ModuleType { return module.TypeCSS }

// SourceTypes is css, plus a script companion when the compilation asks
// stylesheets to emit one.
func (m *Module) SourceTypes(_ *module.GraphModule, c module.Compilation) []module.SourceType {
	if c != nil && c.Options() != nil && c.Options().CSS.EmitJSStub {
		return []module.SourceType{module.SourceCSS, module.SourceJavaScript}
	}
	return []module.SourceType{module.SourceCSS}
}

func (m *Module) Dependencies() []dependency.ModuleDependency {
	m.deps = scan(m.source)
	return append([]dependency.ModuleDependency(nil), m.deps...)
}

// Render emits the stylesheet with resolved references rewritten to module
// ids, or the script companion.
func (m *Module) Render(requested module.SourceType, node *module.GraphModule, c module.Compilation) (*module.RenderResult, error) {
	if !module.ContainsSourceType(m.SourceTypes(node, c), requested) {
		return nil, nil
	}

	if requested == module.SourceJavaScript {
		return module.JavaScriptResult(fmt.Sprintf(
			"// %s\n__modgraph_define__(%q, function (module, exports, require) {\n  // extracted stylesheet\n});\n",
			node.ID(), node.ID())), nil
	}

	body := m.source
	if c != nil && c.Graph() != nil {
		body = m.rewrite(node.URI(), c.Graph())
	}
	return module.CSSResult(fmt.Sprintf("/* %s */\n%s", node.ID(), strings.TrimRight(body, "\n")+"\n")), nil
}

func (m *Module) rewrite(importer string, g module.Lookup) string {
	type edit struct {
		span dependency.Span
		id   string
	}
	var edits []edit
	for _, d := range m.deps {
		if target, ok := g.ModuleByDependency(dependency.New(importer, d)); ok {
			edits = append(edits, edit{span: d.Span, id: target.ID()})
		}
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].span.Start > edits[j].span.Start })

	out := m.source
	for _, e := range edits {
		out = out[:e.span.Start] + e.id + out[e.span.End:]
	}
	return out
}
