package google_services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/appdescriptor/internal/ctxlog"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// ID is the plugin identifier used in descriptors.
const ID = "com.google.gms.google-services"

// FileName is the backend configuration file the plugin reads from the
// descriptor directory.
const FileName = "google-services.json"

// Module implements the registry.Module interface for this package.
type Module struct{}

type servicesFile struct {
	ProjectInfo struct {
		ProjectNumber string `json:"project_number"`
		ProjectID     string `json:"project_id"`
		StorageBucket string `json:"storage_bucket"`
	} `json:"project_info"`
	Clients []struct {
		ClientInfo struct {
			AndroidClientInfo struct {
				PackageName string `json:"package_name"`
			} `json:"android_client_info"`
		} `json:"client_info"`
	} `json:"client"`
}

func (f *servicesFile) packageNames() []string {
	var names []string
	for _, c := range f.Clients {
		if n := c.ClientInfo.AndroidClientInfo.PackageName; n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// load reads the services file. A missing file returns nil without error.
func load(env *registry.Env) (*servicesFile, string, error) {
	path := filepath.Join(env.BaseDir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, path, nil
	}
	if err != nil {
		return nil, path, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f servicesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, path, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &f, path, nil
}

// Values exposes google_services.project_id, project_number and
// storage_bucket. Without a services file the namespace is empty.
func Values(ctx context.Context, env *registry.Env) (map[string]cty.Value, error) {
	f, path, err := load(env)
	if err != nil {
		return nil, err
	}
	if f == nil {
		ctxlog.FromContext(ctx).Debug("No services file found.", "plugin", ID, "path", path)
		return env.MergeValues(nil)
	}
	return env.MergeValues(map[string]any{
		"project_id":     f.ProjectInfo.ProjectID,
		"project_number": f.ProjectInfo.ProjectNumber,
		"storage_bucket": f.ProjectInfo.StorageBucket,
	})
}

// Check requires the services file to contain a client for the resolved
// application ID.
func Check(_ context.Context, env *registry.Env, res *descriptor.Resolved) ([]descriptor.Risk, error) {
	f, path, err := load(env)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return []descriptor.Risk{{
			Kind:    descriptor.PluginInputRisk,
			Subject: "plugin " + ID,
			Message: fmt.Sprintf("%s not found; backend services will not be initialised", path),
		}}, nil
	}
	names := f.packageNames()
	for _, n := range names {
		if n == res.Target.ApplicationID {
			return nil, nil
		}
	}
	return nil, &descriptor.ConfigurationError{
		Subject: "plugin " + ID,
		Message: fmt.Sprintf("%s has no client for application ID %q (found %v)", path, res.Target.ApplicationID, names),
	}
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(&registry.RegisteredPlugin{
		ID:        ID,
		Namespace: "google_services",
		Values:    Values,
		Check:     Check,
	})
}
