package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/modgraph/internal/compilation"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/resolver"
	"gopkg.in/yaml.v3"
)

// ErrBuildFailed wraps the diagnostics of a build that completed with errors.
type ErrBuildFailed struct {
	Err error
}

func (e *ErrBuildFailed) Error() string { return fmt.Sprintf("build finished with errors: %v", e.Err) }
func (e *ErrBuildFailed) Unwrap() error { return e.Err }

// Run builds the module graph, renders every module and writes the report.
// The report is written even when some modules failed; those failures are
// then returned as an *ErrBuildFailed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res := resolver.NewFSResolver(a.options.Context, a.options.Resolve.Extensions)
	comp := compilation.New(a.options, a.registry, res, a.config.Workers)
	a.logger.Info("Starting build.", "build_id", comp.ID, "workers", a.config.Workers)

	if err := comp.Build(ctx); err != nil {
		return fmt.Errorf("failed to build module graph: %w", err)
	}
	rendered, err := comp.Render(ctx)
	if err != nil {
		return fmt.Errorf("failed to render modules: %w", err)
	}
	report, err := comp.Report(ctx, rendered)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := a.writeReport(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := comp.Diagnostics.Err(); err != nil {
		return &ErrBuildFailed{Err: err}
	}
	a.logger.Info("Build finished.", "build_id", comp.ID, "modules", len(report.Modules), "warnings", len(report.Warnings))
	return nil
}

func (a *App) writeReport(r *compilation.Report) error {
	switch a.config.Format {
	case FormatJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(a.outW)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.WriteText(a.outW)
	}
}
