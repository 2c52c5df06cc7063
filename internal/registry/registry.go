package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all plugin packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// ValuesFunc computes the values a plugin exposes under its namespace.
type ValuesFunc func(ctx context.Context, env *Env) (map[string]cty.Value, error)

// CheckFunc inspects the resolved descriptor. Returned risks are surfaced as
// warnings, a returned error fails resolution.
type CheckFunc func(ctx context.Context, env *Env, res *descriptor.Resolved) ([]descriptor.Risk, error)

// RegisteredPlugin describes one build plugin.
type RegisteredPlugin struct {
	ID        string
	Namespace string   // variable name exposed to expressions, empty for none
	Extension string   // top-level block the plugin contributes, empty for none
	Owns      []string // other blocks that require this plugin
	Values    ValuesFunc
	Check     CheckFunc
}

// Registry holds all registered plugins for a single application instance.
type Registry struct {
	Plugins    map[string]*RegisteredPlugin
	namespaces map[string]string
	owners     map[string]string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Plugins:    make(map[string]*RegisteredPlugin),
		namespaces: make(map[string]string),
		owners:     make(map[string]string),
	}
}

// RegisterPlugin adds a plugin. Registering the same ID, namespace or owned
// block twice is a programmer error and panics.
func (r *Registry) RegisterPlugin(p *RegisteredPlugin) {
	if p == nil || p.ID == "" {
		panic("registry: plugin must have an ID")
	}
	if _, ok := r.Plugins[p.ID]; ok {
		panic(fmt.Sprintf("registry: plugin %q registered twice", p.ID))
	}
	if p.Namespace != "" {
		if other, ok := r.namespaces[p.Namespace]; ok {
			panic(fmt.Sprintf("registry: namespace %q of plugin %q already used by %q", p.Namespace, p.ID, other))
		}
		r.namespaces[p.Namespace] = p.ID
	}
	for _, block := range p.ownedBlocks() {
		if other, ok := r.owners[block]; ok {
			panic(fmt.Sprintf("registry: block %q of plugin %q already owned by %q", block, p.ID, other))
		}
		r.owners[block] = p.ID
	}
	r.Plugins[p.ID] = p
}

func (p *RegisteredPlugin) ownedBlocks() []string {
	blocks := append([]string(nil), p.Owns...)
	if p.Extension != "" {
		blocks = append(blocks, p.Extension)
	}
	return blocks
}

// Lookup returns the plugin registered under id.
func (r *Registry) Lookup(id string) (*RegisteredPlugin, bool) {
	p, ok := r.Plugins[id]
	return p, ok
}

// PluginForNamespace returns the plugin exposing the given namespace.
func (r *Registry) PluginForNamespace(ns string) (*RegisteredPlugin, bool) {
	id, ok := r.namespaces[ns]
	if !ok {
		return nil, false
	}
	return r.Plugins[id], true
}

// OwnerOf returns the plugin owning the given block name.
func (r *Registry) OwnerOf(block string) (*RegisteredPlugin, bool) {
	id, ok := r.owners[block]
	if !ok {
		return nil, false
	}
	return r.Plugins[id], true
}

// ExtensionBlocks returns the sorted names of all top-level extension blocks,
// for loaders that need to know which extra blocks to accept.
func (r *Registry) ExtensionBlocks() []string {
	var names []string
	for _, p := range r.Plugins {
		if p.Extension != "" {
			names = append(names, p.Extension)
		}
	}
	sort.Strings(names)
	return names
}

// IDs returns the sorted IDs of all registered plugins.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.Plugins))
	for id := range r.Plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
