package advanced

import (
	"context"
	"fmt"
	gomath "math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// Function is a plain function of a fixed number of arguments. Arity 0
// accepts any non-zero count.
type Function struct {
	Arity int
	Eval  func(x []float64) float64
}

// Functions without a hand-written derivative. They go through the numeric
// adapter.
var Functions = map[string]Function{
	"logistic": {1, func(x []float64) float64 { return 1 / (1 + gomath.Exp(-x[0])) }},
	"softplus": {1, func(x []float64) float64 { return gomath.Log1p(gomath.Exp(x[0])) }},
	"sinc": {1, func(x []float64) float64 {
		if x[0] == 0 {
			return 1
		}
		return gomath.Sin(x[0]) / x[0]
	}},
	"gaussian": {1, func(x []float64) float64 { return gomath.Exp(-x[0]*x[0]/2) / gomath.Sqrt(2*gomath.Pi) }},
	"lerp":     {3, func(x []float64) float64 { return x[0] + (x[1]-x[0])*x[2] }},
	"norm":     {0, func(x []float64) float64 { return floats.Norm(x, 2) }},
	"logsumexp": {0, func(x []float64) float64 {
		return floats.LogSumExp(x)
	}},
}

// Evaluate applies the named function to args, propagating uncertainty
// with numeric derivatives.
func Evaluate(d measure.Differentiator, name string, args ...measure.Measurement) (measure.Measurement, error) {
	fn, ok := Functions[name]
	if !ok {
		return measure.Measurement{}, fmt.Errorf("unknown function %q", name)
	}
	if fn.Arity != 0 && len(args) != fn.Arity {
		return measure.Measurement{}, fmt.Errorf("%s takes %d arguments, got %d", name, fn.Arity, len(args))
	}
	if len(args) == 1 {
		return measure.Apply(d, func(x float64) float64 { return fn.Eval([]float64{x}) }, args[0]), nil
	}
	return measure.ApplyN(d, fn.Eval, args...)
}

// FunctionNames lists the functions known to Evaluate.
func FunctionNames() []string {
	names := make([]string, 0, len(Functions))
	for name := range Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTool describes math.apply.
func ApplyTool() types.Tool {
	return types.Tool{
		ID:          "math.apply",
		Name:        "Apply Function",
		Description: "Evaluate a named function with numeric derivatives: " + strings.Join(FunctionNames(), ", "),
		Parameters: []types.Parameter{
			{Name: "function", Type: "string", Description: "Function name", Required: true},
			{Name: "args", Type: "array", Description: "Operands", Required: true},
			common.NameParam,
		},
		Returns: "measurement",
	}
}

// Apply evaluates a named function
func (sp *SpecialOps) Apply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := common.GetString(params, "function")
	if !ok {
		return common.Failure("function parameter required")
	}
	args, err := sp.Measurements(params, "args")
	if err != nil {
		return common.Failure(err.Error())
	}
	m, err := Evaluate(sp.Diff, name, args...)
	if err != nil {
		return sp.Fail("math.apply", err)
	}
	return sp.Store(params, m)
}
