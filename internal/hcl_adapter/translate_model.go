// This file contains the logic for translating the HCL schema structs into
// the format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/hclutil"
)

func translatePlugin(p *Plugin) *config.PluginRef {
	apply := true
	if p.Apply != nil {
		apply = *p.Apply
	}
	return &config.PluginRef{
		ID:       p.ID,
		Version:  p.Version,
		Apply:    apply,
		DefRange: defRange(p.Body),
	}
}

func translateAndroid(a *AndroidBlock) *config.Android {
	out := &config.Android{
		Namespace:  hclutil.Defined(a.Namespace),
		CompileSdk: hclutil.Defined(a.CompileSdk),
		NdkVersion: hclutil.Defined(a.NdkVersion),
		DefRange:   defRange(a.Body),
	}
	if dc := a.DefaultConfig; dc != nil {
		out.DefaultConfig = &config.DefaultConfig{
			ApplicationID: hclutil.Defined(dc.ApplicationID),
			MinSdk:        hclutil.Defined(dc.MinSdk),
			TargetSdk:     hclutil.Defined(dc.TargetSdk),
			VersionCode:   hclutil.Defined(dc.VersionCode),
			VersionName:   hclutil.Defined(dc.VersionName),
			DefRange:      defRange(dc.Body),
		}
	}
	if co := a.CompileOptions; co != nil {
		out.CompileOptions = &config.CompileOptions{
			SourceCompatibility: hclutil.Defined(co.SourceCompatibility),
			TargetCompatibility: hclutil.Defined(co.TargetCompatibility),
		}
	}
	if ko := a.KotlinOptions; ko != nil {
		out.KotlinOptions = &config.KotlinOptions{
			JvmTarget: hclutil.Defined(ko.JvmTarget),
			DefRange:  defRange(ko.Body),
		}
	}
	if ao := a.AaptOptions; ao != nil {
		out.AaptOptions = &config.AaptOptions{NoCompress: hclutil.Defined(ao.NoCompress)}
	}
	for _, sc := range a.SigningConfigs {
		out.SigningConfigs = append(out.SigningConfigs, &config.SigningConfig{
			Name:      sc.Name,
			StoreFile: hclutil.Defined(sc.StoreFile),
			KeyAlias:  hclutil.Defined(sc.KeyAlias),
			DefRange:  defRange(sc.Body),
		})
	}
	for _, bt := range a.BuildTypes {
		out.BuildTypes = append(out.BuildTypes, &config.BuildType{
			Name:          bt.Name,
			SigningConfig: hclutil.Defined(bt.SigningConfig),
			MinifyEnabled: hclutil.Defined(bt.MinifyEnabled),
			Debuggable:    hclutil.Defined(bt.Debuggable),
			DefRange:      defRange(bt.Body),
		})
	}
	return out
}

// translateDependencies turns every attribute of the dependencies block into
// a configuration entry, kept in source order.
func translateDependencies(d *DependenciesBlock) ([]*config.Dependency, error) {
	if d.Body == nil {
		return nil, nil
	}
	attrs, diags := d.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	deps := make([]*config.Dependency, 0, len(sorted))
	for _, attr := range sorted {
		deps = append(deps, &config.Dependency{Configuration: attr.Name, Expr: attr.Expr})
	}
	return deps, nil
}

func defRange(body hcl.Body) hcl.Range {
	if body == nil {
		return hcl.Range{}
	}
	return body.MissingItemRange()
}
