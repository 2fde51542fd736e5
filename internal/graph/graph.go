package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/moduleid"
)

// ModuleGraph owns all module nodes of one compilation, keyed by uri.
type ModuleGraph struct {
	mu     sync.RWMutex
	sealed bool

	order   []*module.GraphModule
	byURI   map[string]*module.GraphModule
	byID    map[string]*module.GraphModule
	resolve map[dependency.Dependency]string // record -> target uri
}

var (
	_ Reader = (*ModuleGraph)(nil)
	_ Writer = (*ModuleGraph)(nil)
)

// New creates an empty, unsealed module graph.
func New() *ModuleGraph {
	return &ModuleGraph{
		byURI:   make(map[string]*module.GraphModule),
		byID:    make(map[string]*module.GraphModule),
		resolve: make(map[dependency.Dependency]string),
	}
}

// AddModule inserts n. It fails if the graph is sealed, if n's id is not a
// canonical module id, or if its uri or id is already taken.
func (g *ModuleGraph) AddModule(ctx context.Context, n *module.GraphModule) error {
	if err := moduleid.Validate(n.ID()); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return ErrSealed
	}
	if _, exists := g.byURI[n.URI()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateURI, n.URI())
	}
	if _, exists := g.byID[n.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID())
	}
	g.order = append(g.order, n)
	g.byURI[n.URI()] = n
	g.byID[n.ID()] = n

	ctxlog.FromContext(ctx).Debug("Module added to graph.", "module_id", n.ID(), "type", n.ModuleType())
	return nil
}

// AddDependency records the resolution of dep to the node at uri.
// Recording the same record twice overwrites the earlier target.
func (g *ModuleGraph) AddDependency(ctx context.Context, dep dependency.Dependency, uri string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return ErrSealed
	}
	if _, exists := g.byURI[uri]; !exists {
		return fmt.Errorf("%w: %s (from %s in %q)", ErrModuleNotFound, uri, dep.Detail, dep.Importer)
	}
	g.resolve[dep] = uri
	return nil
}

// Seal ends the discovery phase.
func (g *ModuleGraph) Seal(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.sealed {
		g.sealed = true
		ctxlog.FromContext(ctx).Debug("Module graph sealed.", "modules", len(g.order), "edges", len(g.resolve))
	}
}

// Sealed reports whether Seal has been called.
func (g *ModuleGraph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sealed
}

// ModuleByDependency implements module.Lookup.
func (g *ModuleGraph) ModuleByDependency(dep dependency.Dependency) (*module.GraphModule, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	uri, ok := g.resolve[dep]
	if !ok {
		return nil, false
	}
	n, ok := g.byURI[uri]
	return n, ok
}

func (g *ModuleGraph) ModuleByURI(uri string) (*module.GraphModule, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.byURI[uri]
	return n, ok
}

func (g *ModuleGraph) ModuleByID(id string) (*module.GraphModule, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.byID[id]
	return n, ok
}

func (g *ModuleGraph) Modules() []*module.GraphModule {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*module.GraphModule(nil), g.order...)
}

func (g *ModuleGraph) Entries() []*module.GraphModule {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var entries []*module.GraphModule
	for _, n := range g.order {
		if _, ok := n.Name(); ok {
			entries = append(entries, n)
		}
	}
	return entries
}

func (g *ModuleGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}
