package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/fsutil"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/specialistvlad/appdescriptor/internal/render"
	"github.com/specialistvlad/appdescriptor/internal/resolver"
)

// descriptorExtensions are the file extensions searched for in a descriptor
// directory.
var descriptorExtensions = []string{".hcl", ".yaml", ".yml"}

// Run loads, resolves and renders the descriptor.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := render.Write(a.outW, res, a.config.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if a.config.FailOnRisk && len(res.Risks) > 0 {
		return &descriptor.RiskError{Risks: res.Risks}
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Resolve loads every descriptor file and resolves the merged model.
func (a *App) Resolve(ctx context.Context) (*descriptor.Resolved, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	model, err := a.Load(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := registry.LoadOverrides(a.config.PluginValuesPath)
	if err != nil {
		return nil, err
	}

	res, err := resolver.Resolve(ctx, model, a.registry, resolver.Options{
		BaseDir:         a.baseDir(),
		Overrides:       overrides,
		LastVersionCode: a.config.LastVersionCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve descriptor: %w", err)
	}
	a.logger.Info("Descriptor resolved.", "application_id", res.Target.ApplicationID, "dependencies", len(res.Dependencies), "risks", len(res.Risks))
	return res, nil
}

// Load reads every descriptor file under the configured path into a single
// merged model.
func (a *App) Load(ctx context.Context) (*config.Model, error) {
	files, err := fsutil.ResolvePaths(a.config.DescriptorPath, descriptorExtensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find descriptor files: %w", err)
	}
	a.logger.Debug("Descriptor files found.", "files", files)

	var model *config.Model
	for _, file := range files {
		loader := a.loaderFor(file)
		if loader == nil {
			return nil, fmt.Errorf("no loader supports descriptor file %s", file)
		}
		m, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		if model == nil {
			model = m
			continue
		}
		if err := model.Merge(m); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", file, err)
		}
	}
	a.logger.Debug("Descriptor loaded and translated into unified model.", "plugins", len(model.Plugins), "dependency_configurations", len(model.Dependencies))
	return model, nil
}

func (a *App) loaderFor(path string) config.Loader {
	for _, l := range a.loaders {
		if l.Supports(path) {
			return l
		}
	}
	return nil
}

func (a *App) baseDir() string {
	path := a.config.DescriptorPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
