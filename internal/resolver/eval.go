package resolver

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/appdescriptor/internal/descriptor"
	"github.com/specialistvlad/appdescriptor/internal/hclutil"
	"github.com/specialistvlad/appdescriptor/internal/refscan"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// eval evaluates expr after checking that every name it references and
// every function it calls exists. It reports false when the expression is
// absent, null or failed; failures are recorded on the resolver.
func (r *resolver) eval(expr hcl.Expression, subject string) (cty.Value, bool) {
	if expr == nil {
		return cty.NilVal, false
	}

	refs, funcs := refscan.Analyze(expr)
	ok := true
	for _, ref := range refs {
		root := ref.RootName()
		if _, known := r.evalCtx.Variables[root]; known {
			continue
		}
		if r.brokenNamespaces[root] {
			// The plugin's own error already explains why.
			ok = false
			continue
		}
		key := hclutil.TraversalKey(ref)
		rng := ref.SourceRange()
		p, isPlugin := r.reg.PluginForNamespace(root)
		switch {
		case isPlugin && r.applied[p.ID] == nil:
			r.fail(&descriptor.MissingPluginError{PluginID: p.ID, Reference: key, Range: &rng})
		case isPlugin:
			r.fail(&descriptor.UnresolvedReferenceError{Reference: key, Detail: fmt.Sprintf("plugin %q supplies no values", p.ID), Range: &rng})
		default:
			r.fail(&descriptor.UnresolvedReferenceError{Reference: key, Detail: fmt.Sprintf("no plugin or builtin provides %q", root), Range: &rng})
		}
		ok = false
	}
	for _, fn := range funcs {
		if _, known := r.evalCtx.Functions[fn]; !known {
			r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("call to unknown function %q", fn), Range: hclutil.RangePtr(expr)})
			ok = false
		}
	}
	if !ok {
		r.failed[subject] = true
		return cty.NilVal, false
	}

	val, diags := expr.Value(r.evalCtx)
	if diags.HasErrors() {
		r.failDiags(diags, subject, refs)
		r.failed[subject] = true
		return cty.NilVal, false
	}
	r.recordPluginValues(refs)

	if val.IsNull() {
		return cty.NilVal, false
	}
	if !val.IsWhollyKnown() {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: "value is not known at resolution time", Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return cty.NilVal, false
	}
	return val, true
}

// failDiags translates evaluation diagnostics. A missing attribute on a
// known namespace (flutter.fooVersion) is an unresolved reference; every
// other diagnostic is a configuration error.
func (r *resolver) failDiags(diags hcl.Diagnostics, subject string, refs []hcl.Traversal) {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Summary == "Unsupported attribute" && len(refs) > 0 {
			ref := refs[0]
			if diag.Subject != nil {
				for _, candidate := range refs {
					if candidate.SourceRange().Overlaps(*diag.Subject) {
						ref = candidate
						break
					}
				}
			}
			rng := ref.SourceRange()
			r.fail(&descriptor.UnresolvedReferenceError{Reference: hclutil.TraversalKey(ref), Detail: diag.Detail, Range: &rng})
			continue
		}
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("%s: %s", diag.Summary, diag.Detail), Range: diag.Subject})
	}
}

// recordPluginValues remembers every plugin value the descriptor consumed.
func (r *resolver) recordPluginValues(refs []hcl.Traversal) {
	for _, ref := range refs {
		if _, isPlugin := r.reg.PluginForNamespace(ref.RootName()); !isPlugin {
			continue
		}
		val, diags := ref.TraverseAbs(r.evalCtx)
		if diags.HasErrors() {
			continue
		}
		if s, err := convert.Convert(val, cty.String); err == nil && s.IsKnown() && !s.IsNull() {
			r.used[hclutil.TraversalKey(ref)] = s.AsString()
		}
	}
}

func (r *resolver) evalString(expr hcl.Expression, subject string) (string, bool) {
	val, ok := r.eval(expr, subject)
	if !ok {
		return "", false
	}
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("must be a string, got %s", val.Type().FriendlyName()), Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return "", false
	}
	return s.AsString(), true
}

func (r *resolver) evalInt(expr hcl.Expression, subject string) (int, bool) {
	val, ok := r.eval(expr, subject)
	if !ok {
		return 0, false
	}
	n, err := convert.Convert(val, cty.Number)
	if err == nil && !n.AsBigFloat().IsInt() {
		err = fmt.Errorf("%s is not a whole number", n.AsBigFloat().Text('f', -1))
	}
	var out int
	if err == nil {
		err = gocty.FromCtyValue(n, &out)
	}
	if err != nil {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("must be a whole number: %v", err), Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return 0, false
	}
	return out, true
}

func (r *resolver) evalBool(expr hcl.Expression, subject string, def bool) bool {
	val, ok := r.eval(expr, subject)
	if !ok {
		return def
	}
	b, err := convert.Convert(val, cty.Bool)
	if err != nil {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("must be a boolean, got %s", val.Type().FriendlyName()), Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return def
	}
	return b.True()
}

func (r *resolver) evalStringList(expr hcl.Expression, subject string) ([]string, bool) {
	val, ok := r.eval(expr, subject)
	if !ok {
		return nil, false
	}
	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: fmt.Sprintf("must be a list of strings, got %s", val.Type().FriendlyName()), Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return nil, false
	}
	var out []string
	if err := gocty.FromCtyValue(list, &out); err != nil {
		r.fail(&descriptor.ConfigurationError{Subject: subject, Message: err.Error(), Range: hclutil.RangePtr(expr)})
		r.failed[subject] = true
		return nil, false
	}
	return out, true
}

// required records a ConfigurationError when expr is absent.
func (r *resolver) required(expr hcl.Expression, subject string, within hcl.Range) bool {
	if expr != nil {
		return true
	}
	rng := within
	r.fail(&descriptor.ConfigurationError{Subject: subject, Message: "is required", Range: &rng})
	r.failed[subject] = true
	return false
}
