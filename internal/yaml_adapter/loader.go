package yaml_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct {
	extensions map[string]struct{}
}

// NewLoader creates a new YAML descriptor loader accepting the given plugin
// extension keys at the top level.
func NewLoader(extensions ...string) *Loader {
	l := &Loader{extensions: make(map[string]struct{}, len(extensions))}
	for _, e := range extensions {
		l.extensions[e] = struct{}{}
	}
	return l
}

// Supports reports whether path is a YAML file.
func (l *Loader) Supports(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads and translates a single YAML descriptor file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return l.LoadSource(ctx, path, src)
}

// LoadSource translates YAML source that was already read into memory.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	logger.Debug("YAML loader started.")

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	model := config.NewModel(filename)
	if doc.Kind == 0 || len(doc.Content) == 0 {
		logger.Debug("YAML file is empty.")
		return model, nil
	}

	d := &decoder{filename: filename}
	if err := d.decodeRoot(doc.Content[0], model, l.extensions); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	logger.Debug("YAML loading complete.",
		"plugins", len(model.Plugins),
		"android", model.Android != nil,
		"extensions", len(model.Extensions),
		"dependency_configurations", len(model.Dependencies),
	)
	return model, nil
}
