package compilation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/segmentio/ksuid"
	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/specialistvlad/modgraph/internal/graph"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/moduleid"
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/internal/resolver"
)

var (
	// ErrNotBuilt is returned by Render before Build has sealed the graph.
	ErrNotBuilt = errors.New("compilation has not been built")
	// ErrNoEntries is returned by Build when no entry is configured.
	ErrNoEntries = errors.New("no entries configured")
)

// Compilation holds everything one build needs.
type Compilation struct {
	// ID uniquely identifies this build in logs and reports.
	ID string

	options  *config.Options
	graph    *graph.ModuleGraph
	registry *registry.Registry
	resolver resolver.Resolver
	ids      *moduleid.Allocator
	workers  int

	// loaders records the loader chain of the rule that matched each
	// module, by uri, in the order the loaders apply.
	loaders map[string][]string

	Diagnostics *Diagnostics
}

var _ module.Compilation = (*Compilation)(nil)

// New creates a compilation over an empty graph. workers below one means one.
func New(opts *config.Options, reg *registry.Registry, res resolver.Resolver, workers int) *Compilation {
	if workers < 1 {
		workers = 1
	}
	return &Compilation{
		ID:          ksuid.New().String(),
		options:     opts,
		graph:       graph.New(),
		registry:    reg,
		resolver:    res,
		ids:         moduleid.NewAllocator(opts.Context),
		workers:     workers,
		loaders:     make(map[string][]string),
		Diagnostics: &Diagnostics{},
	}
}

// Options implements module.Compilation.
func (c *Compilation) Options() *config.Options { return c.options }

// Graph implements module.Compilation.
func (c *Compilation) Graph() module.Lookup { return c.graph }

// ModuleGraph exposes the full graph for reporting.
func (c *Compilation) ModuleGraph() *graph.ModuleGraph { return c.graph }

type pending struct {
	uri  string
	name string
}

type edge struct {
	dep    dependency.Dependency
	target string
}

// Build discovers every module reachable from the entries and seals the
// graph. Each entry is reachable through its dependency.Entry record. A
// module that cannot be loaded is recorded as an error and skipped; Build
// itself only fails on entry resolution, resolver errors or cancellation.
func (c *Compilation) Build(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("build_id", c.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	defer c.graph.Seal(ctx)

	if len(c.options.Entries) == 0 {
		return ErrNoEntries
	}

	queue := make([]pending, 0, len(c.options.Entries))
	queued := make(map[string]struct{})
	var edges []edge
	for _, e := range c.options.Entries {
		uri, ok, err := c.resolver.Resolve(ctx, "", e.Import)
		if err != nil {
			return fmt.Errorf("failed to resolve entry %q: %w", e.Name, err)
		}
		if !ok {
			return fmt.Errorf("entry %q: cannot resolve %q", e.Name, e.Import)
		}
		edges = append(edges, edge{dep: dependency.Entry(e.Import), target: uri})
		if _, dup := queued[uri]; dup {
			logger.Warn("Entry points at a module that is already an entry.", "entry", e.Name, "uri", uri)
			continue
		}
		queued[uri] = struct{}{}
		queue = append(queue, pending{uri: uri, name: e.Name})
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := queue[0]
		queue = queue[1:]

		node, err := c.discover(ctx, p)
		if err != nil {
			logger.Error("Module could not be loaded.", "uri", p.uri, "error", err)
			c.Diagnostics.AddError(err)
			continue
		}

		for _, dep := range node.Dependencies() {
			target, ok, err := c.resolver.Resolve(ctx, node.URI(), dep.Detail.Specifier)
			if err != nil {
				return fmt.Errorf("failed to resolve %s in %s: %w", dep.Detail, node.ID(), err)
			}
			if !ok {
				c.Diagnostics.AddWarning(Warning{ModuleID: node.ID(), Dependency: dep.Detail, Message: "cannot resolve specifier"})
				continue
			}
			edges = append(edges, edge{dep: dep, target: target})
			if _, seen := queued[target]; !seen {
				queued[target] = struct{}{}
				queue = append(queue, pending{uri: target})
			}
		}
	}

	for _, e := range edges {
		if _, ok := c.graph.ModuleByURI(e.target); !ok {
			continue // target failed to load and is already reported
		}
		if err := c.graph.AddDependency(ctx, e.dep, e.target); err != nil {
			return err
		}
	}

	logger.Info("Module graph built.", "modules", c.graph.Len(), "edges", len(edges),
		"errors", len(c.Diagnostics.Errors()), "warnings", len(c.Diagnostics.Warnings()))
	return nil
}

// discover loads one module and inserts its node. It is the only place a
// module is accessed mutably.
func (c *Compilation) discover(ctx context.Context, p pending) (*module.GraphModule, error) {
	logger := ctxlog.FromContext(ctx)
	path, query := moduleid.SplitQuery(p.uri)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	typ, rule, err := c.moduleType(path, query)
	if err != nil {
		return nil, err
	}
	if rule != nil && len(rule.Uses) > 0 {
		c.loaders[p.uri] = rule.LoaderChain()
	}
	mod, err := c.registry.Create(typ, p.uri, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s module for %s: %w", typ, p.uri, err)
	}

	records := mod.Dependencies()
	deps := make([]dependency.Dependency, 0, len(records))
	for _, r := range records {
		deps = append(deps, dependency.New(p.uri, r))
	}

	id, err := c.ids.Assign(p.uri)
	if err != nil {
		return nil, fmt.Errorf("failed to assign an id to %s: %w", p.uri, err)
	}
	node := module.NewGraphModule(p.name, id, p.uri, mod, deps)
	if err := c.graph.AddModule(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to add %s to the graph: %w", p.uri, err)
	}
	logger.Debug("Module discovered.", "module_id", id, "type", typ, "dependencies", len(deps))
	return node, nil
}

// moduleType picks the type from the first matching rule, falling back to
// the registry's extension table. The matched rule, if any, is returned.
func (c *Compilation) moduleType(path, query string) (module.ModuleType, *config.ModuleRule, error) {
	rule, matched := c.options.Module.Rules.Match(path, query)
	if matched && rule.Type != "" {
		typ, err := module.ParseModuleType(rule.Type)
		return typ, rule, err
	}
	if typ, ok := c.registry.TypeForPath(path); ok {
		return typ, rule, nil
	}
	return "", nil, fmt.Errorf("no module type for %s: add a module rule with a type", path)
}
