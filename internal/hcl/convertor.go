package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// defaultDown is used when a slope block leaves out `down`.
var defaultDown = cty.NumberIntVal(1)

// evalInt evaluates expr and binds it to a Go int. A null result takes def
// when one is given.
func evalInt(expr hcl.Expression, evalCtx *hcl.EvalContext, def *cty.Value) (int, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		if def == nil {
			return 0, fmt.Errorf("value must not be null")
		}
		val = *def
	}
	if !val.IsWhollyKnown() {
		return 0, fmt.Errorf("value is not known")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}

	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, err
	}
	return out, nil
}
