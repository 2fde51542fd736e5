package compilation

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/graph"
	"github.com/specialistvlad/modgraph/internal/module"
)

// Report is a serializable summary of a build.
type Report struct {
	BuildID     string         `json:"build_id" yaml:"build_id"`
	Modules     []ModuleReport `json:"modules" yaml:"modules"`
	SplitPoints []string       `json:"split_points,omitempty" yaml:"split_points,omitempty"`
	Errors      []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings    []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ModuleReport describes one node and its rendered outputs.
type ModuleReport struct {
	ID      string   `json:"id" yaml:"id"`
	URI     string   `json:"uri" yaml:"uri"`
	Type    string   `json:"type" yaml:"type"`
	Entry   string   `json:"entry,omitempty" yaml:"entry,omitempty"`
	Static  []string `json:"static,omitempty" yaml:"static,omitempty"`
	Dynamic []string `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
	// Loaders is the matched loader chain in the order it applies.
	Loaders []string       `json:"loaders,omitempty" yaml:"loaders,omitempty"`
	Outputs []OutputReport `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// OutputReport is the size of one rendered source type.
type OutputReport struct {
	SourceType string `json:"source_type" yaml:"source_type"`
	Size       int    `json:"size" yaml:"size"`
}

// Report summarizes the graph and the given render results, which may be
// nil when rendering was skipped.
func (c *Compilation) Report(ctx context.Context, rendered []*RenderedModule) (*Report, error) {
	byID := make(map[string]*RenderedModule, len(rendered))
	for _, rm := range rendered {
		if rm != nil {
			byID[rm.ID] = rm
		}
	}

	r := &Report{BuildID: c.ID}
	for _, n := range c.graph.Modules() {
		mr := ModuleReport{
			ID:      n.ID(),
			URI:     n.URI(),
			Type:    n.ModuleType().String(),
			Static:  moduleIDs(n.DependedModules(c.graph)),
			Dynamic: moduleIDs(n.DynamicDependedModules(c.graph)),
			Loaders: c.loaders[n.URI()],
		}
		if name, ok := n.Name(); ok {
			mr.Entry = name
		}
		if rm, ok := byID[n.ID()]; ok {
			for _, st := range n.SourceTypes(c) {
				if res, ok := rm.Outputs[st]; ok {
					mr.Outputs = append(mr.Outputs, OutputReport{SourceType: st.String(), Size: res.Size()})
				}
			}
		}
		r.Modules = append(r.Modules, mr)
	}

	points, err := graph.SplitPoints(ctx, c.graph, c.graph.Entries())
	if err != nil {
		return nil, err
	}
	r.SplitPoints = moduleIDs(points)

	for _, err := range c.Diagnostics.Errors() {
		r.Errors = append(r.Errors, err.Error())
	}
	for _, w := range c.Diagnostics.Warnings() {
		r.Warnings = append(r.Warnings, w.String())
	}
	sort.Strings(r.Errors)
	return r, nil
}

func moduleIDs(nodes []*module.GraphModule) []string {
	var ids []string
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	return ids
}

// WriteText writes the report in a human-readable layout.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "build %s: %d modules\n", r.BuildID, len(r.Modules))
	for _, m := range r.Modules {
		label := m.ID
		if m.Entry != "" {
			label = fmt.Sprintf("%s (entry %q)", m.ID, m.Entry)
		}
		fmt.Fprintf(&sb, "  %s [%s]\n", label, m.Type)
		for _, s := range m.Static {
			fmt.Fprintf(&sb, "    -> %s\n", s)
		}
		for _, d := range m.Dynamic {
			fmt.Fprintf(&sb, "    ~> %s\n", d)
		}
		for _, o := range m.Outputs {
			fmt.Fprintf(&sb, "    %s: %d bytes\n", o.SourceType, o.Size)
		}
	}
	if len(r.SplitPoints) > 0 {
		fmt.Fprintf(&sb, "split points: %s\n", strings.Join(r.SplitPoints, ", "))
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&sb, "error: %s\n", e)
	}
	for _, wrn := range r.Warnings {
		fmt.Fprintf(&sb, "warning: %s\n", wrn)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
