package android

import (
	"context"

	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/registry"
)

// ID is the plugin identifier used in descriptors.
const ID = "com.android.application"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Check flags build types that produce artifacts nobody can install.
func Check(_ context.Context, _ *registry.Env, res *descriptor.Resolved) ([]descriptor.Risk, error) {
	var risks []descriptor.Risk
	for _, bt := range res.BuildTypes {
		if bt.Signing.Name != "" {
			continue
		}
		risks = append(risks, descriptor.Risk{
			Kind:    descriptor.SigningConfigurationRisk,
			Subject: "buildTypes." + bt.Name,
			Message: "build type has no signing config; its artifact must be signed before it can be installed",
		})
	}
	return risks, nil
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(&registry.RegisteredPlugin{
		ID:    ID,
		Owns:  []string{"android"},
		Check: Check,
	})
}
