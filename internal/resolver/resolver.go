package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/refscan"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Options tune a single resolution.
type Options struct {
	// BaseDir is where plugins look for their inputs. Defaults to the
	// directory of the first descriptor file.
	BaseDir string
	// Overrides are plugin value overrides keyed by namespace.
	Overrides map[string]map[string]any
	// LastVersionCode, when positive, is the version code of the previous
	// release; the descriptor's code must be strictly greater.
	LastVersionCode int
}

type resolver struct {
	ctx    context.Context
	logger *slog.Logger
	model  *config.Model
	reg    *registry.Registry
	opts   Options

	applied map[string]*registry.RegisteredPlugin
	envs    map[string]*registry.Env
	evalCtx *hcl.EvalContext

	out    *descriptor.Resolved
	used   map[string]string
	failed map[string]bool
	errs   *multierror.Error

	// brokenNamespaces are namespaces whose plugin failed to produce values.
	brokenNamespaces map[string]bool
}

// Resolve evaluates the model against the registered plugins. On success it
// returns the resolved descriptor, including any risks. On failure it
// returns a *multierror.Error whose entries are the typed errors of the
// descriptor package.
func Resolve(ctx context.Context, model *config.Model, reg *registry.Registry, opts Options) (*descriptor.Resolved, error) {
	if model == nil {
		return nil, fmt.Errorf("resolver: nil model")
	}
	if reg == nil {
		reg = registry.New()
	}
	if opts.BaseDir == "" && len(model.Files) > 0 {
		opts.BaseDir = filepath.Dir(model.Files[0])
	}

	r := &resolver{
		ctx:     ctx,
		logger:  ctxlog.FromContext(ctx),
		model:   model,
		reg:     reg,
		opts:    opts,
		applied: make(map[string]*registry.RegisteredPlugin),
		envs:    make(map[string]*registry.Env),
		out:     &descriptor.Resolved{},
		used:    make(map[string]string),
		failed:  make(map[string]bool),

		brokenNamespaces: make(map[string]bool),
	}
	return r.run()
}

func (r *resolver) run() (*descriptor.Resolved, error) {
	r.logger.Debug("Resolution started.", "files", r.model.Files)

	r.applyPlugins()
	r.checkOwnership()
	r.buildEvalContext()

	if r.model.Android == nil {
		r.fail(&descriptor.ConfigurationError{Subject: "descriptor", Message: "the android block is required"})
	} else {
		r.resolveAndroid(r.model.Android)
		r.resolveSigning(r.model.Android)
	}
	r.resolveDependencies()
	r.runPluginChecks()

	if len(r.used) > 0 {
		r.out.PluginValues = r.used
	}

	if err := r.errs.ErrorOrNil(); err != nil {
		r.logger.Debug("Resolution failed.", "error_count", len(r.errs.Errors))
		return nil, err
	}

	for _, risk := range r.out.Risks {
		r.logger.Warn("Descriptor risk.", "kind", risk.Kind, "subject", risk.Subject, "message", risk.Message)
	}
	r.logger.Debug("Resolution finished.",
		"application_id", r.out.Target.ApplicationID,
		"dependencies", len(r.out.Dependencies),
		"risks", len(r.out.Risks),
	)
	return r.out, nil
}

func (r *resolver) fail(err error) {
	r.errs = multierror.Append(r.errs, err)
}

func (r *resolver) warn(kind descriptor.RiskKind, subject, message string) {
	r.out.Risks = append(r.out.Risks, descriptor.Risk{Kind: kind, Subject: subject, Message: message})
}

// applyPlugins records which declared plugins are applied and known.
func (r *resolver) applyPlugins() {
	seen := make(map[string]hcl.Range)
	for _, p := range r.model.Plugins {
		if prev, dup := seen[p.ID]; dup {
			rng := p.DefRange
			r.fail(&descriptor.ConfigurationError{Subject: "plugin " + p.ID, Message: fmt.Sprintf("declared more than once, first at %s", prev), Range: &rng})
			continue
		}
		seen[p.ID] = p.DefRange

		if !p.Apply {
			r.logger.Debug("Plugin declared but not applied.", "plugin", p.ID)
			continue
		}
		r.out.Plugins = append(r.out.Plugins, p.ID)

		rp, ok := r.reg.Lookup(p.ID)
		if !ok {
			r.warn(descriptor.UnknownPluginRisk, "plugin "+p.ID, "plugin is not known; its values and checks are not available")
			continue
		}
		r.applied[p.ID] = rp
		r.logger.Debug("Plugin applied.", "plugin", p.ID, "namespace", rp.Namespace)
	}
	sort.Strings(r.out.Plugins)
}

// checkOwnership fails blocks whose owning plugin is not applied.
func (r *resolver) checkOwnership() {
	if a := r.model.Android; a != nil {
		r.requireOwner("android", a.DefRange)
		if a.KotlinOptions != nil {
			r.requireOwner("kotlin_options", a.KotlinOptions.DefRange)
		}
	}
	for _, name := range r.extensionNames() {
		r.requireOwner(name, r.model.Extensions[name].DefRange)
	}
}

func (r *resolver) requireOwner(block string, rng hcl.Range) {
	owner, ok := r.reg.OwnerOf(block)
	if !ok {
		return
	}
	if _, applied := r.applied[owner.ID]; !applied {
		r.fail(&descriptor.MissingPluginError{PluginID: owner.ID, Reference: block + " block", Range: &rng})
	}
}

func (r *resolver) extensionNames() []string {
	names := make([]string, 0, len(r.model.Extensions))
	for name := range r.model.Extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *resolver) appliedIDs() []string {
	ids := make([]string, 0, len(r.applied))
	for id := range r.applied {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// buildEvalContext asks every applied plugin for its values and adds the
// builtins.
func (r *resolver) buildEvalContext() {
	pluginVars := make(map[string]cty.Value)

	for _, id := range r.appliedIDs() {
		p := r.applied[id]
		env := &registry.Env{BaseDir: r.opts.BaseDir, Extension: r.extensionValues(p.Extension)}
		if p.Namespace != "" {
			env.Overrides = r.opts.Overrides[p.Namespace]
		}
		r.envs[id] = env

		if p.Namespace == "" || p.Values == nil {
			continue
		}
		values, err := p.Values(r.ctx, env)
		if err != nil {
			r.fail(&descriptor.ConfigurationError{Subject: "plugin " + id, Message: err.Error()})
			r.brokenNamespaces[p.Namespace] = true
			continue
		}
		if len(values) == 0 {
			pluginVars[p.Namespace] = cty.EmptyObjectVal
		} else {
			pluginVars[p.Namespace] = cty.ObjectVal(values)
		}
		r.logger.Debug("Plugin values loaded.", "plugin", id, "namespace", p.Namespace, "count", len(values))
	}

	r.evalCtx = newEvalContext(pluginVars, r.signingNames())

	if r.logger.Enabled(r.ctx, slog.LevelDebug) {
		c := refscan.NewCollector()
		for _, expr := range r.allExpressions() {
			c.Add(expr)
		}
		r.logger.Debug("Descriptor expressions scanned.", "expressions", c.Len(), "roots", c.RootNames(), "functions", c.CalledFunctions())
	}
}

// extensionValues evaluates the literal attributes of an extension block.
func (r *resolver) extensionValues(name string) map[string]cty.Value {
	ext, ok := r.model.Extensions[name]
	if !ok || name == "" {
		return nil
	}
	out := make(map[string]cty.Value, len(ext.Attributes))
	for attr, expr := range ext.Attributes {
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			r.fail(&descriptor.ConfigurationError{Subject: name + "." + attr, Message: "must be a literal value: " + diags.Error(), Range: expr.Range().Ptr()})
			continue
		}
		out[attr] = val
	}
	return out
}

// runPluginChecks lets applied plugins inspect the result. Checks are
// skipped once resolution has failed, as the result is incomplete.
func (r *resolver) runPluginChecks() {
	if r.errs.ErrorOrNil() != nil {
		return
	}
	for _, id := range r.appliedIDs() {
		p := r.applied[id]
		if p.Check == nil {
			continue
		}
		risks, err := p.Check(r.ctx, r.envs[id], r.out)
		r.out.Risks = append(r.out.Risks, risks...)
		if err != nil {
			r.fail(err)
		}
	}
}

func (r *resolver) allExpressions() []hcl.Expression {
	var exprs []hcl.Expression
	if a := r.model.Android; a != nil {
		exprs = append(exprs, a.Namespace, a.CompileSdk, a.NdkVersion)
		if dc := a.DefaultConfig; dc != nil {
			exprs = append(exprs, dc.ApplicationID, dc.MinSdk, dc.TargetSdk, dc.VersionCode, dc.VersionName)
		}
		if co := a.CompileOptions; co != nil {
			exprs = append(exprs, co.SourceCompatibility, co.TargetCompatibility)
		}
		if a.KotlinOptions != nil {
			exprs = append(exprs, a.KotlinOptions.JvmTarget)
		}
		if a.AaptOptions != nil {
			exprs = append(exprs, a.AaptOptions.NoCompress)
		}
		for _, bt := range a.BuildTypes {
			exprs = append(exprs, bt.SigningConfig, bt.MinifyEnabled, bt.Debuggable)
		}
	}
	for _, d := range r.model.Dependencies {
		exprs = append(exprs, d.Expr)
	}
	return exprs
}
