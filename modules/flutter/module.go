package flutter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// ID is the plugin identifier used in descriptors.
const ID = "dev.flutter.flutter-gradle-plugin"

const (
	defaultSource      = "../.."
	defaultVersionName = "1.0.0"
	defaultVersionCode = 1
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Defaults are the SDK values the Flutter toolchain supplies when nothing
// overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"compileSdkVersion": 35,
		"minSdkVersion":     21,
		"targetSdkVersion":  35,
		"ndkVersion":        "26.3.11579264",
		"versionName":       defaultVersionName,
		"versionCode":       defaultVersionCode,
	}
}

type pubspec struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Values exposes the flutter.* namespace. versionName and versionCode come
// from the project's pubspec.yaml when it has a version.
func Values(ctx context.Context, env *registry.Env) (map[string]cty.Value, error) {
	logger := ctxlog.FromContext(ctx).With("plugin", ID)
	defaults := Defaults()

	source := env.ExtensionString("source", defaultSource)
	path := filepath.Join(env.BaseDir, source, "pubspec.yaml")
	name, code, err := readPubspecVersion(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No pubspec.yaml found, using default version.", "path", path)
	case err != nil:
		return nil, err
	case name != "":
		defaults["versionName"] = name
		defaults["versionCode"] = code
		logger.Debug("Version read from pubspec.yaml.", "path", path, "version_name", name, "version_code", code)
	}

	return env.MergeValues(defaults)
}

// readPubspecVersion returns the build name and number of the pubspec
// `version: 1.2.3+4` field. A missing build number defaults to 1.
func readPubspecVersion(path string) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	var ps pubspec
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return "", 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if ps.Version == "" {
		return "", 0, nil
	}
	name, number, hasNumber := strings.Cut(ps.Version, "+")
	if !hasNumber {
		return name, defaultVersionCode, nil
	}
	code, err := strconv.Atoi(number)
	if err != nil {
		return "", 0, fmt.Errorf("%s: version %q has a non-numeric build number", path, ps.Version)
	}
	return name, code, nil
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(&registry.RegisteredPlugin{
		ID:        ID,
		Namespace: "flutter",
		Extension: "flutter",
		Values:    Values,
	})
}
