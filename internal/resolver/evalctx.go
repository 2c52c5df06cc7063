package resolver

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

const (
	javaVar    = "java"
	signingVar = "signing_configs"
	platformFn = "platform"
)

// ReservedNames are the builtin variable names plugins may not claim.
var ReservedNames = []string{javaVar, signingVar}

// javaVersions maps the JavaVersion constants onto their language levels.
var javaVersions = map[string]string{
	"VERSION_1_8": "1.8",
	"VERSION_11":  "11",
	"VERSION_17":  "17",
	"VERSION_21":  "21",
}

func javaObject() cty.Value {
	attrs := make(map[string]cty.Value, len(javaVersions))
	for name, level := range javaVersions {
		attrs[name] = cty.StringVal(level)
	}
	return cty.ObjectVal(attrs)
}

func isJavaLevel(level string) bool {
	for _, l := range javaVersions {
		if l == level {
			return true
		}
	}
	return false
}

func javaLevels() []string {
	levels := make([]string, 0, len(javaVersions))
	for _, l := range javaVersions {
		levels = append(levels, l)
	}
	sort.Strings(levels)
	return levels
}

// signingObject exposes each signing config under its name; the value is
// the name itself so `signing_configs.debug` and "debug" are equivalent.
func signingObject(names []string) cty.Value {
	attrs := make(map[string]cty.Value, len(names))
	for _, n := range names {
		attrs[n] = cty.StringVal(n)
	}
	return cty.ObjectVal(attrs)
}

// platformType is the marker object returned by platform().
var platformType = cty.Object(map[string]cty.Type{"platform": cty.String})

// platformFunc marks a coordinate as a platform BOM import.
var platformFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "notation", Type: cty.String},
	},
	Type: function.StaticReturnType(platformType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.ObjectVal(map[string]cty.Value{"platform": args[0]}), nil
	},
})

func newEvalContext(pluginVars map[string]cty.Value, signingNames []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(pluginVars)+2)
	for k, v := range pluginVars {
		vars[k] = v
	}
	vars[javaVar] = javaObject()
	vars[signingVar] = signingObject(signingNames)

	return &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			platformFn: platformFunc,
		},
	}
}
