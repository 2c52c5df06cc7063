package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Env is what a plugin sees of the descriptor it is applied to.
type Env struct {
	// BaseDir is the directory of the first descriptor file.
	BaseDir string
	// Extension holds the literal attributes of the plugin's extension block.
	Extension map[string]cty.Value
	// Overrides holds the plugin-values file section for the plugin's namespace.
	Overrides map[string]any
}

// ExtensionString returns a string attribute of the extension block, or def
// when it is absent or not a known string.
func (e *Env) ExtensionString(name, def string) string {
	if e == nil {
		return def
	}
	v, ok := e.Extension[name]
	if !ok || v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return def
	}
	return v.AsString()
}

// MergeValues merges the operator overrides over defaults and converts the
// result into cty values.
func (e *Env) MergeValues(defaults map[string]any) (map[string]cty.Value, error) {
	merged := make(map[string]any, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	if e != nil && len(e.Overrides) > 0 {
		if err := mergo.Merge(&merged, e.Overrides, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge plugin value overrides: %w", err)
		}
	}
	return ToCtyValues(merged)
}

// ToCtyValues converts a generic map into cty values. The map goes through
// JSON so numbers, strings, bools, lists and nested maps all map onto their
// cty equivalents.
func ToCtyValues(in map[string]any) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(in))
	for k, v := range in {
		buf, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", k, err)
		}
		ty, err := ctyjson.ImpliedType(buf)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", k, err)
		}
		val, err := ctyjson.Unmarshal(buf, ty)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}

// LoadOverrides reads a plugin-values file (YAML or JSON) keyed by plugin
// namespace, e.g.
//
//	flutter:
//	  minSdkVersion: 23
func LoadOverrides(path string) (map[string]map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin values file %s: %w", path, err)
	}
	var out map[string]map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse plugin values file %s: %w", path, err)
	}
	return out, nil
}
