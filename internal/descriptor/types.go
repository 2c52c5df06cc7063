package descriptor

import "fmt"

// BuildTarget is the identity and SDK window of the application being built.
type BuildTarget struct {
	ApplicationID string `json:"applicationId" yaml:"applicationId" validate:"required,javapkg"`
	MinSdk        int    `json:"minSdk" yaml:"minSdk" validate:"min=1"`
	TargetSdk     int    `json:"targetSdk" yaml:"targetSdk" validate:"gtefield=MinSdk"`
	VersionCode   int    `json:"versionCode" yaml:"versionCode" validate:"min=1,max=2100000000"`
	VersionName   string `json:"versionName" yaml:"versionName" validate:"required"`
}

// SigningReference points at a signing identity declared in the descriptor.
// The implicit "debug" identity is always present.
type SigningReference struct {
	Name      string `json:"name" yaml:"name"`
	Debug     bool   `json:"debug" yaml:"debug"`
	StoreFile string `json:"storeFile,omitempty" yaml:"storeFile,omitempty"`
	KeyAlias  string `json:"keyAlias,omitempty" yaml:"keyAlias,omitempty"`
}

// BuildType is a resolved build type (e.g. release).
type BuildType struct {
	Name          string           `json:"name" yaml:"name"`
	Signing       SigningReference `json:"signing" yaml:"signing"`
	MinifyEnabled bool             `json:"minifyEnabled" yaml:"minifyEnabled"`
	Debuggable    bool             `json:"debuggable" yaml:"debuggable"`
}

// DependencyCoordinate is one entry of the flat dependency list handed to the
// external resolver. Exactly one of Version or ManagedBy is set for regular
// coordinates; platform (BOM) coordinates always carry a Version.
type DependencyCoordinate struct {
	Configuration string `json:"configuration" yaml:"configuration"`
	Group         string `json:"group" yaml:"group"`
	Artifact      string `json:"artifact" yaml:"artifact"`
	Version       string `json:"version,omitempty" yaml:"version,omitempty"`
	Platform      bool   `json:"platform,omitempty" yaml:"platform,omitempty"`
	ManagedBy     string `json:"managedBy,omitempty" yaml:"managedBy,omitempty"`
}

// Module returns the group:artifact identity used for deduplication.
func (d DependencyCoordinate) Module() string {
	return d.Group + ":" + d.Artifact
}

// String renders the coordinate in Maven notation.
func (d DependencyCoordinate) String() string {
	if d.Version == "" {
		return d.Module()
	}
	return fmt.Sprintf("%s:%s", d.Module(), d.Version)
}

// Android holds the resolved android block settings beyond the BuildTarget.
type Android struct {
	Namespace           string   `json:"namespace" yaml:"namespace" validate:"required,javapkg"`
	CompileSdk          int      `json:"compileSdk" yaml:"compileSdk" validate:"min=1"`
	NdkVersion          string   `json:"ndkVersion,omitempty" yaml:"ndkVersion,omitempty"`
	SourceCompatibility string   `json:"sourceCompatibility,omitempty" yaml:"sourceCompatibility,omitempty"`
	TargetCompatibility string   `json:"targetCompatibility,omitempty" yaml:"targetCompatibility,omitempty"`
	JvmTarget           string   `json:"jvmTarget,omitempty" yaml:"jvmTarget,omitempty"`
	NoCompress          []string `json:"noCompress,omitempty" yaml:"noCompress,omitempty"`
}

// Resolved is the complete output of one resolution.
type Resolved struct {
	Plugins      []string               `json:"plugins" yaml:"plugins"`
	Target       BuildTarget            `json:"target" yaml:"target"`
	Android      Android                `json:"android" yaml:"android"`
	BuildTypes   []BuildType            `json:"buildTypes" yaml:"buildTypes"`
	Dependencies []DependencyCoordinate `json:"dependencies" yaml:"dependencies"`
	PluginValues map[string]string      `json:"pluginValues,omitempty" yaml:"pluginValues,omitempty"`
	Risks        []Risk                 `json:"risks,omitempty" yaml:"risks,omitempty"`
}

// BuildType returns the named build type, if present.
func (r *Resolved) BuildType(name string) (BuildType, bool) {
	for _, bt := range r.BuildTypes {
		if bt.Name == name {
			return bt, true
		}
	}
	return BuildType{}, false
}
