// Package hclutil holds small helpers around hcl.Expression and
// hcl.Traversal shared by the loaders and the resolver.
package hclutil

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key and in error messages.
func TraversalKey(t hcl.Traversal) string {
	// e.g., flutter.minSdkVersion
	return strings.TrimSpace(string(hclwrite.TokensForTraversal(t).Bytes()))
}

// IsDefined reports whether an expression was actually present in the
// source. gohcl fills omitted optional hcl.Expression fields with a
// zero-width placeholder, so a nil check alone is not enough.
func IsDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

// Defined returns expr when it was written in the source, nil otherwise.
func Defined(expr hcl.Expression) hcl.Expression {
	if IsDefined(expr) {
		return expr
	}
	return nil
}

// RangePtr returns a pointer to the expression's range, or nil for a nil
// expression.
func RangePtr(expr hcl.Expression) *hcl.Range {
	if expr == nil {
		return nil
	}
	return expr.Range().Ptr()
}
