package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	extensions []string
}

// NewLoader creates a new HCL descriptor loader. extensions lists the
// top-level plugin blocks (e.g. "flutter") the loader accepts besides the
// fixed ones.
func NewLoader(extensions ...string) *Loader {
	return &Loader{extensions: extensions}
}

// Supports reports whether path is an HCL file.
func (l *Loader) Supports(path string) bool {
	return filepath.Ext(path) == ".hcl"
}

// Load reads and translates a single HCL descriptor file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return l.LoadSource(ctx, path, src)
}

// LoadSource translates HCL source that was already read into memory.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	logger.Debug("HCL loader started.")

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.NewModel(filename)
	for _, p := range root.Plugins {
		model.Plugins = append(model.Plugins, translatePlugin(p))
	}
	if root.Android != nil {
		model.Android = translateAndroid(root.Android)
	}
	if root.Dependencies != nil {
		deps, err := translateDependencies(root.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("failed to decode dependencies in %s: %w", filename, err)
		}
		model.Dependencies = deps
	}

	exts, err := l.decodeExtensions(root.Remain)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
	}
	model.Extensions = exts

	logger.Debug("HCL loading complete.",
		"plugins", len(model.Plugins),
		"android", model.Android != nil,
		"extensions", len(model.Extensions),
		"dependency_configurations", len(model.Dependencies),
	)
	return model, nil
}

// decodeExtensions decodes the blocks gohcl left over. Anything that is not
// a known extension block is rejected here.
func (l *Loader) decodeExtensions(remain hcl.Body) (map[string]*config.Extension, error) {
	exts := make(map[string]*config.Extension)
	if remain == nil {
		return exts, nil
	}

	schema := &hcl.BodySchema{}
	for _, name := range l.extensions {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{Type: name})
	}

	content, diags := remain.Content(schema)
	if diags.HasErrors() {
		return nil, diags
	}

	for _, block := range content.Blocks {
		if prev, ok := exts[block.Type]; ok {
			return nil, fmt.Errorf("duplicate %s block at %s, first declared at %s", block.Type, block.DefRange, prev.DefRange)
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		ext := &config.Extension{
			Name:       block.Type,
			Attributes: make(map[string]hcl.Expression, len(attrs)),
			DefRange:   block.DefRange,
		}
		for name, attr := range attrs {
			ext.Attributes[name] = attr.Expr
		}
		exts[block.Type] = ext
	}
	return exts, nil
}
