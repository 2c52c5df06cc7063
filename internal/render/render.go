// Package render writes a resolved descriptor in one of the supported
// output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatYAML, FormatJSON}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Write renders res to w.
func Write(w io.Writer, res *descriptor.Resolved, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, res)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, res *descriptor.Resolved) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	section(tw, "Plugins")
	for _, p := range res.Plugins {
		fmt.Fprintf(tw, "  %s\n", p)
	}

	t, a := res.Target, res.Android
	section(tw, "Build target")
	row(tw, "applicationId", t.ApplicationID)
	row(tw, "minSdk", t.MinSdk)
	row(tw, "targetSdk", t.TargetSdk)
	row(tw, "versionCode", t.VersionCode)
	row(tw, "versionName", t.VersionName)

	section(tw, "Android")
	row(tw, "namespace", a.Namespace)
	row(tw, "compileSdk", a.CompileSdk)
	optional(tw, "ndkVersion", a.NdkVersion)
	optional(tw, "sourceCompatibility", a.SourceCompatibility)
	optional(tw, "targetCompatibility", a.TargetCompatibility)
	optional(tw, "jvmTarget", a.JvmTarget)
	if len(a.NoCompress) > 0 {
		row(tw, "noCompress", strings.Join(a.NoCompress, ", "))
	}

	section(tw, "Build types")
	for _, bt := range res.BuildTypes {
		signing := "unsigned"
		if bt.Signing.Name != "" {
			signing = "signed with " + bt.Signing.Name
		}
		fmt.Fprintf(tw, "  %s\t%s\tdebuggable=%t\tminify=%t\n", bt.Name, signing, bt.Debuggable, bt.MinifyEnabled)
	}

	section(tw, "Dependencies")
	for _, d := range res.Dependencies {
		version := d.Version
		if d.ManagedBy != "" {
			version = "(" + d.ManagedBy + ")"
		}
		kind := ""
		if d.Platform {
			kind = "platform"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", d.Configuration, d.Module(), version, kind)
	}

	if len(res.PluginValues) > 0 {
		section(tw, "Plugin values")
		keys := make([]string, 0, len(res.PluginValues))
		for k := range res.PluginValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			row(tw, k, res.PluginValues[k])
		}
	}

	if len(res.Risks) > 0 {
		section(tw, "Risks")
		for _, r := range res.Risks {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Kind, r.Subject, r.Message)
		}
	}
	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
}

func row(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s\t%v\n", key, value)
}

func optional(w io.Writer, key, value string) {
	if value != "" {
		row(w, key, value)
	}
}
