package kotlin

import (
	"context"
	"fmt"

	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/registry"
)

// ID is the plugin identifier used in descriptors.
const ID = "org.jetbrains.kotlin.android"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Check requires Kotlin to target the same JVM level as the Java sources.
func Check(_ context.Context, _ *registry.Env, res *descriptor.Resolved) ([]descriptor.Risk, error) {
	jvm, java := res.Android.JvmTarget, res.Android.TargetCompatibility
	if jvm == "" || java == "" || jvm == java {
		return nil, nil
	}
	return nil, &descriptor.ConfigurationError{
		Subject: "kotlinOptions.jvmTarget",
		Message: fmt.Sprintf("JVM target %s does not match compileOptions.targetCompatibility %s", jvm, java),
	}
}

// Register registers the plugin with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(&registry.RegisteredPlugin{
		ID:    ID,
		Owns:  []string{"kotlin_options"},
		Check: Check,
	})
}
