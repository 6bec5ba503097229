package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the evaluation context grid expressions run in.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"passable": cty.StringVal("."),
			"blocked":  cty.StringVal("X"),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"join":   stdlib.JoinFunc,
			"format": stdlib.FormatFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

// evaluate computes the value of expr and rejects null or unknown results.
// The boolean is false when the expression evaluates to null.
func evaluate(expr hcl.Expression, evalCtx *hcl.EvalContext) (cty.Value, bool, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if val.IsNull() {
		return val, false, nil
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, false, fmt.Errorf("%s: value must be known", expr.Range())
	}
	return val, true, nil
}

// toStringList converts a cty value into a []string, accepting any list,
// tuple or set whose elements convert to strings.
func toStringList(val cty.Value) ([]string, error) {
	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("must be a list of strings: %w", err)
	}
	var out []string
	if err := gocty.FromCtyValue(listVal, &out); err != nil {
		return nil, fmt.Errorf("must be a list of strings: %w", err)
	}
	return out, nil
}

// toCount converts a cty value into a non-negative whole number.
func toCount(val cty.Value) (uint64, error) {
	numVal, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("must be a number: %w", err)
	}
	// gocty truncates fractions when filling an integer, so check first.
	if bf := numVal.AsBigFloat(); !bf.IsInt() || bf.Sign() < 0 {
		return 0, fmt.Errorf("must be a non-negative whole number, got %s", bf.Text('g', -1))
	}
	var out uint64
	if err := gocty.FromCtyValue(numVal, &out); err != nil {
		return 0, fmt.Errorf("must be a non-negative whole number: %w", err)
	}
	return out, nil
}
