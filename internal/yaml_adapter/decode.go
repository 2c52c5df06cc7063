package yaml_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	filename string
}

type entry struct {
	key   *yaml.Node
	value *yaml.Node
}

// entries returns the key/value pairs of a mapping node in source order,
// rejecting keys not listed in allowed (when allowed is non-nil) and keys
// that appear twice.
func (d *decoder) entries(node *yaml.Node, what string, allowed ...string) ([]entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, d.errorf(node, "%s must be a mapping", what)
	}
	allow := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allow[a] = struct{}{}
	}

	seen := make(map[string]struct{})
	out := make([]entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if len(allowed) > 0 {
			if _, ok := allow[k.Value]; !ok {
				return nil, d.errorf(k, "unsupported key %q in %s", k.Value, what)
			}
		}
		if _, dup := seen[k.Value]; dup {
			return nil, d.errorf(k, "duplicate key %q in %s", k.Value, what)
		}
		seen[k.Value] = struct{}{}
		out = append(out, entry{key: k, value: v})
	}
	return out, nil
}

func (d *decoder) decodeRoot(node *yaml.Node, model *config.Model, extensions map[string]struct{}) error {
	items, err := d.entries(node, "descriptor")
	if err != nil {
		return err
	}
	for _, it := range items {
		switch it.key.Value {
		case "plugins":
			plugins, err := d.decodePlugins(it.value)
			if err != nil {
				return err
			}
			model.Plugins = plugins
		case "android":
			android, err := d.decodeAndroid(it.key, it.value)
			if err != nil {
				return err
			}
			model.Android = android
		case "dependencies":
			deps, err := d.decodeDependencies(it.value)
			if err != nil {
				return err
			}
			model.Dependencies = deps
		default:
			if _, ok := extensions[it.key.Value]; !ok {
				return d.errorf(it.key, "unsupported top-level key %q", it.key.Value)
			}
			ext, err := d.decodeExtension(it.key, it.value)
			if err != nil {
				return err
			}
			model.Extensions[ext.Name] = ext
		}
	}
	return nil
}

func (d *decoder) decodePlugins(node *yaml.Node) ([]*config.PluginRef, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, d.errorf(node, "plugins must be a list")
	}
	var out []*config.PluginRef
	for _, item := range node.Content {
		ref := &config.PluginRef{Apply: true, DefRange: d.rangeOf(item)}
		switch item.Kind {
		case yaml.ScalarNode:
			ref.ID = item.Value
		case yaml.MappingNode:
			fields, err := d.entries(item, "plugin", "id", "version", "apply")
			if err != nil {
				return nil, err
			}
			for _, f := range fields {
				switch f.key.Value {
				case "id":
					ref.ID = f.value.Value
				case "version":
					ref.Version = f.value.Value
				case "apply":
					if err := f.value.Decode(&ref.Apply); err != nil {
						return nil, d.errorf(f.value, "apply must be a boolean")
					}
				}
			}
		default:
			return nil, d.errorf(item, "plugin entries must be an id or a mapping")
		}
		if ref.ID == "" {
			return nil, d.errorf(item, "plugin id is required")
		}
		out = append(out, ref)
	}
	return out, nil
}

func (d *decoder) decodeAndroid(key, node *yaml.Node) (*config.Android, error) {
	items, err := d.entries(node, "android",
		"namespace", "compileSdk", "ndkVersion", "defaultConfig", "compileOptions",
		"kotlinOptions", "aaptOptions", "signingConfigs", "buildTypes")
	if err != nil {
		return nil, err
	}

	out := &config.Android{DefRange: d.rangeOf(key)}
	for _, it := range items {
		switch it.key.Value {
		case "namespace":
			out.Namespace, err = d.expr(it.value)
		case "compileSdk":
			out.CompileSdk, err = d.expr(it.value)
		case "ndkVersion":
			out.NdkVersion, err = d.expr(it.value)
		case "defaultConfig":
			out.DefaultConfig, err = d.decodeDefaultConfig(it.key, it.value)
		case "compileOptions":
			out.CompileOptions, err = d.decodeCompileOptions(it.value)
		case "kotlinOptions":
			out.KotlinOptions, err = d.decodeKotlinOptions(it.key, it.value)
		case "aaptOptions":
			out.AaptOptions, err = d.decodeAaptOptions(it.value)
		case "signingConfigs":
			out.SigningConfigs, err = d.decodeSigningConfigs(it.value)
		case "buildTypes":
			out.BuildTypes, err = d.decodeBuildTypes(it.value)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *decoder) decodeDefaultConfig(key, node *yaml.Node) (*config.DefaultConfig, error) {
	items, err := d.entries(node, "defaultConfig", "applicationId", "minSdk", "targetSdk", "versionCode", "versionName")
	if err != nil {
		return nil, err
	}
	out := &config.DefaultConfig{DefRange: d.rangeOf(key)}
	targets := map[string]*hcl.Expression{
		"applicationId": &out.ApplicationID,
		"minSdk":        &out.MinSdk,
		"targetSdk":     &out.TargetSdk,
		"versionCode":   &out.VersionCode,
		"versionName":   &out.VersionName,
	}
	return out, d.assign(items, targets)
}

func (d *decoder) decodeCompileOptions(node *yaml.Node) (*config.CompileOptions, error) {
	items, err := d.entries(node, "compileOptions", "sourceCompatibility", "targetCompatibility")
	if err != nil {
		return nil, err
	}
	out := &config.CompileOptions{}
	return out, d.assign(items, map[string]*hcl.Expression{
		"sourceCompatibility": &out.SourceCompatibility,
		"targetCompatibility": &out.TargetCompatibility,
	})
}

func (d *decoder) decodeKotlinOptions(key, node *yaml.Node) (*config.KotlinOptions, error) {
	items, err := d.entries(node, "kotlinOptions", "jvmTarget")
	if err != nil {
		return nil, err
	}
	out := &config.KotlinOptions{DefRange: d.rangeOf(key)}
	return out, d.assign(items, map[string]*hcl.Expression{"jvmTarget": &out.JvmTarget})
}

func (d *decoder) decodeAaptOptions(node *yaml.Node) (*config.AaptOptions, error) {
	items, err := d.entries(node, "aaptOptions", "noCompress")
	if err != nil {
		return nil, err
	}
	out := &config.AaptOptions{}
	return out, d.assign(items, map[string]*hcl.Expression{"noCompress": &out.NoCompress})
}

func (d *decoder) decodeSigningConfigs(node *yaml.Node) ([]*config.SigningConfig, error) {
	items, err := d.entries(node, "signingConfigs")
	if err != nil {
		return nil, err
	}
	var out []*config.SigningConfig
	for _, it := range items {
		fields, err := d.entries(it.value, "signing config "+it.key.Value, "storeFile", "keyAlias")
		if err != nil {
			return nil, err
		}
		sc := &config.SigningConfig{Name: it.key.Value, DefRange: d.rangeOf(it.key)}
		if err := d.assign(fields, map[string]*hcl.Expression{
			"storeFile": &sc.StoreFile,
			"keyAlias":  &sc.KeyAlias,
		}); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func (d *decoder) decodeBuildTypes(node *yaml.Node) ([]*config.BuildType, error) {
	items, err := d.entries(node, "buildTypes")
	if err != nil {
		return nil, err
	}
	var out []*config.BuildType
	for _, it := range items {
		fields, err := d.entries(it.value, "build type "+it.key.Value, "signingConfig", "minifyEnabled", "debuggable")
		if err != nil {
			return nil, err
		}
		bt := &config.BuildType{Name: it.key.Value, DefRange: d.rangeOf(it.key)}
		if err := d.assign(fields, map[string]*hcl.Expression{
			"signingConfig": &bt.SigningConfig,
			"minifyEnabled": &bt.MinifyEnabled,
			"debuggable":    &bt.Debuggable,
		}); err != nil {
			return nil, err
		}
		out = append(out, bt)
	}
	return out, nil
}

func (d *decoder) decodeDependencies(node *yaml.Node) ([]*config.Dependency, error) {
	items, err := d.entries(node, "dependencies")
	if err != nil {
		return nil, err
	}
	var out []*config.Dependency
	for _, it := range items {
		if it.value.Kind != yaml.SequenceNode {
			return nil, d.errorf(it.value, "dependencies.%s must be a list", it.key.Value)
		}
		expr, err := d.expr(it.value)
		if err != nil {
			return nil, err
		}
		out = append(out, &config.Dependency{Configuration: it.key.Value, Expr: expr})
	}
	return out, nil
}

func (d *decoder) decodeExtension(key, node *yaml.Node) (*config.Extension, error) {
	ext := &config.Extension{
		Name:       key.Value,
		Attributes: make(map[string]hcl.Expression),
		DefRange:   d.rangeOf(key),
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return ext, nil
	}
	items, err := d.entries(node, key.Value)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		expr, err := d.expr(it.value)
		if err != nil {
			return nil, err
		}
		ext.Attributes[it.key.Value] = expr
	}
	return ext, nil
}

func (d *decoder) assign(items []entry, targets map[string]*hcl.Expression) error {
	for _, it := range items {
		expr, err := d.expr(it.value)
		if err != nil {
			return err
		}
		*targets[it.key.Value] = expr
	}
	return nil
}

func (d *decoder) errorf(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%s:%d,%d: %s", d.filename, node.Line, node.Column, fmt.Sprintf(format, args...))
}
