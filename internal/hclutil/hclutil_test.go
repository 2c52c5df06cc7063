package hclutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func TestTraversalKey(t *testing.T) {
	expr := parseExpr(t, `flutter.minSdkVersion`)
	vars := expr.Variables()
	require.Len(t, vars, 1)
	require.Equal(t, "flutter.minSdkVersion", TraversalKey(vars[0]))
}

func TestIsDefined(t *testing.T) {
	require.False(t, IsDefined(nil))
	require.True(t, IsDefined(parseExpr(t, `21`)))

	placeholder := hcl.StaticExpr(cty.NullVal(cty.DynamicPseudoType), hcl.Range{
		Filename: "test.hcl",
		Start:    hcl.Pos{Line: 2, Column: 1, Byte: 10},
		End:      hcl.Pos{Line: 2, Column: 1, Byte: 10},
	})
	require.False(t, IsDefined(placeholder))
	require.Nil(t, Defined(placeholder))
	require.Nil(t, RangePtr(nil))
}
