package compilation

import (
	"context"
	"sync"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/module"
)

// RenderedModule is every output produced for one node.
type RenderedModule struct {
	ID      string
	URI     string
	Outputs map[module.SourceType]*module.RenderResult
}

// Render renders every node of the sealed graph for each of its source
// types using the configured number of workers. Results follow graph
// insertion order. Render failures are added to Diagnostics and the
// failing output is left out; the returned error is only set when ctx is
// done or the graph has not been built.
func (c *Compilation) Render(ctx context.Context) ([]*RenderedModule, error) {
	if !c.graph.Sealed() {
		return nil, ErrNotBuilt
	}
	logger := ctxlog.FromContext(ctx).With("build_id", c.ID)

	nodes := c.graph.Modules()
	results := make([]*RenderedModule, len(nodes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.renderWorker(ctx, workerID, nodes, results, jobs)
		}(w)
	}
	logger.Debug("Render workers started.", "workers", c.workers, "modules", len(nodes))

dispatch:
	for i := range nodes {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("Modules rendered.", "modules", len(nodes), "errors", len(c.Diagnostics.Errors()))
	return results, nil
}

// renderWorker is the processing loop of a single render worker. Each
// worker writes only the result slots of the indexes it receives.
func (c *Compilation) renderWorker(ctx context.Context, workerID int, nodes []*module.GraphModule, results []*RenderedModule, jobs <-chan int) {
	logger := ctxlog.FromContext(ctx)
	for i := range jobs {
		n := nodes[i]
		workerLogger := logger.With("workerID", workerID, "module_id", n.ID())

		rm := &RenderedModule{ID: n.ID(), URI: n.URI(), Outputs: make(map[module.SourceType]*module.RenderResult)}
		for _, st := range n.SourceTypes(c) {
			res, err := n.Render(st, c)
			if err != nil {
				workerLogger.Error("Module render failed.", "source_type", st, "error", err)
				c.Diagnostics.AddError(err)
				continue
			}
			if res == nil {
				continue
			}
			rm.Outputs[st] = res
		}
		workerLogger.Debug("Module rendered.", "outputs", len(rm.Outputs))
		results[i] = rm
	}
}
