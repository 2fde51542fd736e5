package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	options  *config.Options
	config   *Config
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. It panics when the configuration cannot be loaded or the
// module kinds are inconsistent, since the app cannot do anything useful in
// either case.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	opts, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if appConfig.Context != "" {
		abs, err := filepath.Abs(appConfig.Context)
		if err != nil {
			panic(fmt.Errorf("failed to resolve context %q: %w", appConfig.Context, err))
		}
		opts.Context = abs
	}
	logger.Debug("Configuration loaded.", "context", opts.Context, "entries", len(opts.Entries))

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All module kinds registered.", "count", len(modules), "types", reg.Types())

	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		options:  opts,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Options returns the loaded bundling options.
func (a *App) Options() *config.Options {
	return a.options
}
