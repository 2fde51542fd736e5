package graph

import (
	"context"

	"github.com/specialistvlad/modgraph/internal/module"
)

// WalkFunc is called once per reachable node. Returning false stops the walk.
type WalkFunc func(n *module.GraphModule) bool

// Walk visits every node statically reachable from the given roots,
// breadth first, each node exactly once. Dynamic edges are not followed.
// Cycles terminate because visited nodes are never enqueued again.
func Walk(ctx context.Context, g module.Lookup, roots []*module.GraphModule, fn WalkFunc) error {
	visited := make(map[string]struct{}, len(roots))
	queue := make([]*module.GraphModule, 0, len(roots))
	for _, r := range roots {
		if _, seen := visited[r.URI()]; !seen {
			visited[r.URI()] = struct{}{}
			queue = append(queue, r)
		}
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := queue[0]
		queue = queue[1:]
		if !fn(n) {
			return nil
		}
		for _, next := range n.DependedModules(g) {
			if _, seen := visited[next.URI()]; seen {
				continue
			}
			visited[next.URI()] = struct{}{}
			queue = append(queue, next)
		}
	}
	return nil
}

// SplitPoints returns the targets of dynamic edges found among the nodes
// statically reachable from roots, in discovery order, without duplicates.
// These are the candidates for separately loaded units.
func SplitPoints(ctx context.Context, g module.Lookup, roots []*module.GraphModule) ([]*module.GraphModule, error) {
	var points []*module.GraphModule
	seen := make(map[string]struct{})
	err := Walk(ctx, g, roots, func(n *module.GraphModule) bool {
		for _, d := range n.DynamicDependedModules(g) {
			if _, dup := seen[d.URI()]; dup {
				continue
			}
			seen[d.URI()] = struct{}{}
			points = append(points, d)
		}
		return true
	})
	return points, err
}
