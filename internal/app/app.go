package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"github.com/specialistvlad/appdescriptor/internal/hcl_adapter"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/specialistvlad/appdescriptor/internal/resolver"
	"github.com/specialistvlad/appdescriptor/internal/yaml_adapter"
)

// blockNames are the top-level descriptor blocks no plugin may contribute.
var blockNames = []string{"plugin", "android", "dependencies"}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	loaders  []config.Loader
}

// NewApp is the constructor for the main application. Resolved output goes
// to outW, logs to logW. It returns a fully initialized App instance,
// including its own isolated logger and registry.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules))

	reserved := append(append([]string(nil), resolver.ReservedNames...), blockNames...)
	if err := reg.ValidateRegistry(ctx, reserved...); err != nil {
		// This is a programmer error (mismatch between plugins), so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	extensions := reg.ExtensionBlocks()
	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loaders: []config.Loader{
			hcl_adapter.NewLoader(extensions...),
			yaml_adapter.NewLoader(extensions...),
		},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
