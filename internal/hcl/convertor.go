package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/falbricator/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// exprToValue evaluates expr. Object and tuple constructors are walked item
// by item so keys keep the order they were written in.
func exprToValue(expr hcl.Expression, evalCtx *hcl.EvalContext) (any, hcl.Diagnostics) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		obj := value.NewObject()
		var diags hcl.Diagnostics
		for _, item := range e.Items {
			key, keyDiags := item.KeyExpr.Value(evalCtx)
			diags = append(diags, keyDiags...)
			if keyDiags.HasErrors() {
				continue
			}
			if key.IsNull() || !key.Type().Equals(cty.String) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid object key",
					Detail:   "Object keys must be strings.",
					Subject:  item.KeyExpr.Range().Ptr(),
				})
				continue
			}
			v, valDiags := exprToValue(item.ValueExpr, evalCtx)
			diags = append(diags, valDiags...)
			obj.Set(key.AsString(), v)
		}
		return obj, diags
	case *hclsyntax.TupleConsExpr:
		items := make([]any, 0, len(e.Exprs))
		var diags hcl.Diagnostics
		for _, item := range e.Exprs {
			v, itemDiags := exprToValue(item, evalCtx)
			diags = append(diags, itemDiags...)
			items = append(items, v)
		}
		return items, diags
	}

	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	native, err := ctyToValue(v)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return native, diags
}

// ctyToValue recursively converts a cty.Value to the value tree. Object and
// map keys come out in cty's lexicographic order.
func ctyToValue(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value of type %s is not known", v.Type().FriendlyName())
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToValue(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		obj := value.NewObject()
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := ctyToValue(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", key.AsString(), err)
			}
			obj.Set(key.AsString(), native)
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("unsupported cty type: %s", ty.FriendlyName())
	}
}
