package graph

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
)

// Reader is the read side of the module graph used by render and
// reporting stages.
type Reader interface {
	module.Lookup

	// ModuleByURI returns the node at the canonical location uri.
	ModuleByURI(uri string) (*module.GraphModule, bool)

	// ModuleByID returns the node with the given stable id.
	ModuleByID(id string) (*module.GraphModule, bool)

	// Modules returns every node in insertion order. The slice is a
	// snapshot owned by the caller.
	Modules() []*module.GraphModule

	// Entries returns the named entry nodes in insertion order.
	Entries() []*module.GraphModule

	// Len returns the number of nodes.
	Len() int
}

// Writer is the discovery-phase side of the module graph.
type Writer interface {
	// AddModule inserts a node. The node's uri and id must both be unused.
	AddModule(ctx context.Context, n *module.GraphModule) error

	// AddDependency records that dep resolves to the node at uri. The node
	// must already be in the graph.
	AddDependency(ctx context.Context, dep dependency.Dependency, uri string) error

	// Seal ends the discovery phase. It is idempotent.
	Seal(ctx context.Context)
}
