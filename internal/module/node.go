package module

import (
	"github.com/specialistvlad/modgraph/internal/dependency"
)

// GraphModule is one vertex of the module graph.
type GraphModule struct {
	// name is set only for user-declared entry points.
	name string
	id   string
	uri  string
	// module is owned by the node and only reached through the interface.
	module Module
	// moduleType mirrors module.ModuleType() for filtering without a call.
	moduleType   ModuleType
	dependencies []dependency.Dependency
}

// NewGraphModule builds a node. name is empty for anything but entries.
// deps is copied; the node's edge list never changes afterwards.
func NewGraphModule(name, id, uri string, mod Module, deps []dependency.Dependency) *GraphModule {
	return &GraphModule{
		name:         name,
		id:           id,
		uri:          uri,
		module:       mod,
		moduleType:   mod.ModuleType(),
		dependencies: append([]dependency.Dependency(nil), deps...),
	}
}

// Name returns the entry name and whether the module is an entry.
func (n *GraphModule) Name() (string, bool) {
	return n.name, n.name != ""
}

// ID returns the stable identity used to address the module in output.
func (n *GraphModule) ID() string { return n.id }

// URI returns the canonical resolved location, unique across the graph.
func (n *GraphModule) URI() string { return n.uri }

// Module returns the owned module.
func (n *GraphModule) Module() Module { return n.module }

// ModuleType returns the cached kind of the owned module.
func (n *GraphModule) ModuleType() ModuleType { return n.moduleType }

// Dependencies returns a copy of the records in source order.
func (n *GraphModule) Dependencies() []dependency.Dependency {
	return append([]dependency.Dependency(nil), n.dependencies...)
}

// DependedModules returns the resolved targets of every non-dynamic record,
// in source order. Records that do not resolve are left out.
func (n *GraphModule) DependedModules(g Lookup) []*GraphModule {
	return n.resolve(g, func(d dependency.Dependency) bool { return !d.IsDynamic() })
}

// DynamicDependedModules returns the resolved targets of dynamic-import
// records, in source order. Records that do not resolve are left out.
func (n *GraphModule) DynamicDependedModules(g Lookup) []*GraphModule {
	return n.resolve(g, dependency.Dependency.IsDynamic)
}

func (n *GraphModule) resolve(g Lookup, keep func(dependency.Dependency) bool) []*GraphModule {
	var out []*GraphModule
	for _, dep := range n.dependencies {
		if !keep(dep) {
			continue
		}
		if target, ok := g.ModuleByDependency(dep); ok {
			out = append(out, target)
		}
	}
	return out
}

// SourceTypes forwards to the owned module.
func (n *GraphModule) SourceTypes(c Compilation) []SourceType {
	return n.module.SourceTypes(n, c)
}

// Render forwards to the owned module and attaches the node's identity to
// any failure that does not already carry it.
func (n *GraphModule) Render(requested SourceType, c Compilation) (*RenderResult, error) {
	res, err := n.module.Render(requested, n, c)
	if err != nil {
		return nil, NewCompileError(n, requested, err)
	}
	return res, nil
}
