//go:generate mockgen -source=$GOFILE -destination=../testutil/mocks/module.go -package=mocks

package module

import (
	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/dependency"
)

// Module is the capability every module kind implements.
//
// Implementations must treat SourceTypes and Render as read-only: once the
// graph is sealed they are called concurrently, for the same module, from
// several workers.
type Module interface {
	// ModuleType returns the declared kind. It must not have side effects.
	ModuleType() ModuleType

	// SourceTypes returns, in a fixed order, the output kinds this module can
	// currently render to. The node and compilation are passed even when a
	// kind ignores them.
	SourceTypes(node *GraphModule, c Compilation) []SourceType

	// Render produces the output for one requested source type.
	//
	// It returns (nil, nil) when the module has no output for that kind,
	// which is always the case for kinds outside SourceTypes. A non-nil
	// error is a hard failure and should be a *CompileError.
	Render(requested SourceType, node *GraphModule, c Compilation) (*RenderResult, error)

	// Dependencies returns the edges found in the module's content, in
	// source order. It is called once, during discovery, by the single
	// owner of the module, and may mutate it.
	Dependencies() []dependency.ModuleDependency
}

// Compilation is the shared, read-only context handed to module kinds.
type Compilation interface {
	Options() *config.Options
	// Graph answers dependency lookups for kinds that need to reference
	// their neighbours while rendering.
	Graph() Lookup
}

// Lookup resolves a dependency record to the node it points at.
//
// A missing node is reported with false, never with an error: unresolved
// specifiers are diagnosed by the resolver, not by graph consumers.
type Lookup interface {
	ModuleByDependency(dep dependency.Dependency) (*GraphModule, bool)
}

// NoDependencies can be embedded by leaf kinds that never have edges.
type NoDependencies struct{}

// Dependencies always returns an empty, non-nil slice.
func (NoDependencies) Dependencies() []dependency.ModuleDependency {
	return []dependency.ModuleDependency{}
}
