package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is a struct used to decode all fixed top-level blocks of a file.
// Plugin extension blocks are left in Remain.
type fileRoot struct {
	Plugins      []*Plugin          `hcl:"plugin,block"`
	Android      *AndroidBlock      `hcl:"android,block"`
	Dependencies *DependenciesBlock `hcl:"dependencies,block"`
	Remain       hcl.Body           `hcl:",remain"`
}

// Plugin is a `plugin "<id>" {}` block.
type Plugin struct {
	ID      string   `hcl:"id,label"`
	Version string   `hcl:"version,optional"`
	Apply   *bool    `hcl:"apply,optional"`
	Body    hcl.Body `hcl:",body"`
}

// AndroidBlock is the `android {}` block.
type AndroidBlock struct {
	Namespace      hcl.Expression        `hcl:"namespace,attr"`
	CompileSdk     hcl.Expression        `hcl:"compile_sdk,attr"`
	NdkVersion     hcl.Expression        `hcl:"ndk_version,attr"`
	DefaultConfig  *DefaultConfigBlock   `hcl:"default_config,block"`
	CompileOptions *CompileOptionsBlock  `hcl:"compile_options,block"`
	KotlinOptions  *KotlinOptionsBlock   `hcl:"kotlin_options,block"`
	AaptOptions    *AaptOptionsBlock     `hcl:"aapt_options,block"`
	SigningConfigs []*SigningConfigBlock `hcl:"signing_config,block"`
	BuildTypes     []*BuildTypeBlock     `hcl:"build_type,block"`
	Body           hcl.Body              `hcl:",body"`
}

// DefaultConfigBlock is `android.default_config {}`.
type DefaultConfigBlock struct {
	ApplicationID hcl.Expression `hcl:"application_id,attr"`
	MinSdk        hcl.Expression `hcl:"min_sdk,attr"`
	TargetSdk     hcl.Expression `hcl:"target_sdk,attr"`
	VersionCode   hcl.Expression `hcl:"version_code,attr"`
	VersionName   hcl.Expression `hcl:"version_name,attr"`
	Body          hcl.Body       `hcl:",body"`
}

// CompileOptionsBlock is `android.compile_options {}`.
type CompileOptionsBlock struct {
	SourceCompatibility hcl.Expression `hcl:"source_compatibility,attr"`
	TargetCompatibility hcl.Expression `hcl:"target_compatibility,attr"`
}

// KotlinOptionsBlock is `android.kotlin_options {}`.
type KotlinOptionsBlock struct {
	JvmTarget hcl.Expression `hcl:"jvm_target,attr"`
	Body      hcl.Body       `hcl:",body"`
}

// AaptOptionsBlock is `android.aapt_options {}`.
type AaptOptionsBlock struct {
	NoCompress hcl.Expression `hcl:"no_compress,attr"`
}

// SigningConfigBlock is `android.signing_config "<name>" {}`.
type SigningConfigBlock struct {
	Name      string         `hcl:"name,label"`
	StoreFile hcl.Expression `hcl:"store_file,attr"`
	KeyAlias  hcl.Expression `hcl:"key_alias,attr"`
	Body      hcl.Body       `hcl:",body"`
}

// BuildTypeBlock is `android.build_type "<name>" {}`.
type BuildTypeBlock struct {
	Name          string         `hcl:"name,label"`
	SigningConfig hcl.Expression `hcl:"signing_config,attr"`
	MinifyEnabled hcl.Expression `hcl:"minify_enabled,attr"`
	Debuggable    hcl.Expression `hcl:"debuggable,attr"`
	Body          hcl.Body       `hcl:",body"`
}

// DependenciesBlock is `dependencies {}`; every attribute is a configuration.
type DependenciesBlock struct {
	Body hcl.Body `hcl:",remain"`
}
