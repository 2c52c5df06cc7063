package resolver

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/appdescriptor/internal/config"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/hclutil"
)

const debugName = "debug"

// signingNames lists the implicit debug identity plus every declared
// signing config.
func (r *resolver) signingNames() []string {
	names := []string{debugName}
	if a := r.model.Android; a != nil {
		for _, sc := range a.SigningConfigs {
			if sc.Name != debugName {
				names = append(names, sc.Name)
			}
		}
	}
	sort.Strings(names)
	return dedupSorted(names)
}

func dedupSorted(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// resolveSigning resolves signing configs and build types. The debug and
// release build types always exist; debug is signed with the debug
// identity, release is unsigned unless the descriptor says otherwise.
func (r *resolver) resolveSigning(a *config.Android) {
	identities := map[string]descriptor.SigningReference{
		debugName: {Name: debugName, Debug: true},
	}
	seen := make(map[string]bool)
	for _, sc := range a.SigningConfigs {
		subject := "signingConfigs." + sc.Name
		if seen[sc.Name] {
			r.fail(&descriptor.ConfigurationError{Subject: subject, Message: "declared more than once", Range: sc.DefRange.Ptr()})
			continue
		}
		seen[sc.Name] = true

		ref := descriptor.SigningReference{Name: sc.Name, Debug: sc.Name == debugName}
		ref.StoreFile, _ = r.evalString(sc.StoreFile, subject+".storeFile")
		ref.KeyAlias, _ = r.evalString(sc.KeyAlias, subject+".keyAlias")
		if !ref.Debug && sc.StoreFile == nil {
			r.fail(&descriptor.ConfigurationError{Subject: subject + ".storeFile", Message: "is required for a non-debug signing config", Range: sc.DefRange.Ptr()})
		}
		identities[sc.Name] = ref
	}

	types := make(map[string]descriptor.BuildType)
	seen = make(map[string]bool)
	for _, bt := range a.BuildTypes {
		subject := "buildTypes." + bt.Name
		if seen[bt.Name] {
			r.fail(&descriptor.ConfigurationError{Subject: subject, Message: "declared more than once", Range: bt.DefRange.Ptr()})
			continue
		}
		seen[bt.Name] = true

		out := descriptor.BuildType{
			Name:          bt.Name,
			MinifyEnabled: r.evalBool(bt.MinifyEnabled, subject+".minifyEnabled", false),
			Debuggable:    r.evalBool(bt.Debuggable, subject+".debuggable", bt.Name == debugName),
		}
		if bt.SigningConfig != nil {
			if name, ok := r.evalString(bt.SigningConfig, subject+".signingConfig"); ok {
				ref, known := identities[name]
				if !known {
					r.fail(&descriptor.UnresolvedReferenceError{
						Reference: signingVar + "." + name,
						Detail:    fmt.Sprintf("build type %q uses a signing config that is not declared", bt.Name),
						Range:     hclutil.RangePtr(bt.SigningConfig),
					})
				}
				out.Signing = ref
			}
		} else if bt.Name == debugName {
			out.Signing = identities[debugName]
		}
		types[bt.Name] = out
	}

	if _, ok := types[debugName]; !ok {
		types[debugName] = descriptor.BuildType{Name: debugName, Signing: identities[debugName], Debuggable: true}
	}
	if _, ok := types["release"]; !ok {
		types["release"] = descriptor.BuildType{Name: "release"}
	}

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		bt := types[name]
		r.out.BuildTypes = append(r.out.BuildTypes, bt)
		if !bt.Debuggable && bt.Signing.Debug {
			r.warn(descriptor.SigningConfigurationRisk, "buildTypes."+name,
				fmt.Sprintf("build type %q is signed with the debug identity; replace it with a release signing config before distribution", name))
		}
	}
}
