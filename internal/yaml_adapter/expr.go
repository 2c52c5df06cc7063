package yaml_adapter

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// expr converts a YAML value node into an HCL expression. Scalars with
// interpolations become templates, sequences become tuples and the
// `{platform: "g:a:v"}` shorthand becomes a platform() call.
func (d *decoder) expr(node *yaml.Node) (hclsyntax.Expression, error) {
	rng := d.rangeOf(node)
	switch node.Kind {
	case yaml.AliasNode:
		return d.expr(node.Alias)

	case yaml.ScalarNode:
		return d.scalar(node)

	case yaml.SequenceNode:
		tuple := &hclsyntax.TupleConsExpr{SrcRange: rng, OpenRange: rng}
		for _, item := range node.Content {
			e, err := d.expr(item)
			if err != nil {
				return nil, err
			}
			tuple.Exprs = append(tuple.Exprs, e)
		}
		return tuple, nil

	case yaml.MappingNode:
		items, err := d.entries(node, "value", "platform")
		if err != nil {
			return nil, err
		}
		if len(items) != 1 {
			return nil, d.errorf(node, "mapping values are only supported as {platform: <coordinate>}")
		}
		arg, err := d.expr(items[0].value)
		if err != nil {
			return nil, err
		}
		return &hclsyntax.FunctionCallExpr{
			Name:            "platform",
			Args:            []hclsyntax.Expression{arg},
			NameRange:       d.rangeOf(items[0].key),
			OpenParenRange:  rng,
			CloseParenRange: rng,
		}, nil
	}
	return nil, d.errorf(node, "unsupported YAML value")
}

func (d *decoder) scalar(node *yaml.Node) (hclsyntax.Expression, error) {
	rng := d.rangeOf(node)
	lit := func(v cty.Value) hclsyntax.Expression {
		return &hclsyntax.LiteralValueExpr{Val: v, SrcRange: rng}
	}

	switch node.Tag {
	case "!!null":
		return lit(cty.NullVal(cty.DynamicPseudoType)), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, d.errorf(node, "invalid boolean %q", node.Value)
		}
		return lit(cty.BoolVal(b)), nil
	case "!!int", "!!float":
		// Kept as text so `1.10` stays "1.10" in string fields; numeric
		// fields convert it back.
		return lit(cty.StringVal(node.Value)), nil
	}

	if strings.Contains(node.Value, "${") {
		tmpl, diags := hclsyntax.ParseTemplate([]byte(node.Value), d.filename, rng.Start)
		if diags.HasErrors() {
			return nil, d.errorf(node, "invalid template %q: %s", node.Value, diags.Error())
		}
		return tmpl, nil
	}
	return lit(cty.StringVal(node.Value)), nil
}

// rangeOf maps a YAML node position onto an hcl.Range. YAML nodes carry no
// byte offsets, so the width is derived from the scalar value.
func (d *decoder) rangeOf(node *yaml.Node) hcl.Range {
	start := hcl.Pos{Line: node.Line, Column: node.Column, Byte: 0}
	width := len(node.Value)
	if width == 0 {
		width = 1
	}
	end := hcl.Pos{Line: node.Line, Column: node.Column + width, Byte: width}
	return hcl.Range{Filename: d.filename, Start: start, End: end}
}
