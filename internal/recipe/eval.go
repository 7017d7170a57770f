package recipe

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// LengthVariable is the name under which the average length is exposed to
// argument expressions.
const LengthVariable = "length"

var functions = map[string]function.Function{
	"min":   stdlib.MinFunc,
	"max":   stdlib.MaxFunc,
	"abs":   stdlib.AbsoluteFunc,
	"floor": stdlib.FloorFunc,
	"ceil":  stdlib.CeilFunc,
	"upper": stdlib.UpperFunc,
	"lower": stdlib.LowerFunc,
}

// EvalContext returns the evaluation context for argument expressions of a
// pipeline built for averageLength.
func EvalContext(averageLength uint) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			LengthVariable: cty.NumberUIntVal(uint64(averageLength)),
		},
		Functions: functions,
	}
}
