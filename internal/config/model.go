package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a build
// descriptor. Expressions that were not written in the source are nil.
type Model struct {
	Files        []string
	Plugins      []*PluginRef
	Android      *Android
	Extensions   map[string]*Extension
	Dependencies []*Dependency
}

// NewModel returns an empty model ready to be populated by a loader.
func NewModel(files ...string) *Model {
	return &Model{
		Files:      files,
		Extensions: make(map[string]*Extension),
	}
}

// PluginRef is one entry of the plugins list.
type PluginRef struct {
	ID       string
	Version  string
	Apply    bool
	DefRange hcl.Range
}

// Android is the format-agnostic representation of the `android` block.
type Android struct {
	Namespace      hcl.Expression
	CompileSdk     hcl.Expression
	NdkVersion     hcl.Expression
	DefaultConfig  *DefaultConfig
	CompileOptions *CompileOptions
	KotlinOptions  *KotlinOptions
	AaptOptions    *AaptOptions
	SigningConfigs []*SigningConfig
	BuildTypes     []*BuildType
	DefRange       hcl.Range
}

// DefaultConfig holds the BuildTarget source expressions.
type DefaultConfig struct {
	ApplicationID hcl.Expression
	MinSdk        hcl.Expression
	TargetSdk     hcl.Expression
	VersionCode   hcl.Expression
	VersionName   hcl.Expression
	DefRange      hcl.Range
}

// CompileOptions holds Java language level settings.
type CompileOptions struct {
	SourceCompatibility hcl.Expression
	TargetCompatibility hcl.Expression
}

// KotlinOptions holds Kotlin compiler settings.
type KotlinOptions struct {
	JvmTarget hcl.Expression
	DefRange  hcl.Range
}

// AaptOptions holds resource packaging settings.
type AaptOptions struct {
	NoCompress hcl.Expression
}

// SigningConfig is a named signing identity declared in the descriptor.
type SigningConfig struct {
	Name      string
	StoreFile hcl.Expression
	KeyAlias  hcl.Expression
	DefRange  hcl.Range
}

// BuildType is a named build type (debug, release, ...).
type BuildType struct {
	Name          string
	SigningConfig hcl.Expression
	MinifyEnabled hcl.Expression
	Debuggable    hcl.Expression
	DefRange      hcl.Range
}

// Extension is a top-level block contributed by a plugin, e.g. `flutter {}`.
type Extension struct {
	Name       string
	Attributes map[string]hcl.Expression
	DefRange   hcl.Range
}

// Dependency is one configuration attribute of the dependencies block. Expr
// evaluates to a list of coordinate strings or platform() markers.
type Dependency struct {
	Configuration string
	Expr          hcl.Expression
}
