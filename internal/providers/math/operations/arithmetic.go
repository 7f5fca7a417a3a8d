package operations

import (
	"context"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// ArithmeticOps handles arithmetic, exponential and rounding tools
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add two or more operands, combining shared dependencies",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Operands to add", Required: true},
				common.NameParam,
			},
			Returns: "measurement",
		},
		common.BinaryTool("math.subtract", "Subtract", "Subtract b from a", "a", "b"),
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply two or more operands, combining shared dependencies",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Operands to multiply", Required: true},
				common.NameParam,
			},
			Returns: "measurement",
		},
		common.BinaryTool("math.divide", "Divide", "Divide a by b", "a", "b"),
		common.BinaryTool("math.power", "Power", "Raise base to exponent", "base", "exponent"),
		common.BinaryTool("math.hypot", "Hypotenuse", "sqrt(a² + b²)", "a", "b"),
		common.BinaryTool("math.mod", "Modulo", "a - b·floor(a/b), with the sign of b", "a", "b"),
		common.BinaryTool("math.rem", "Remainder", "Remainder of a/b with the sign of a", "a", "b"),
		common.UnaryTool("math.negate", "Negate", "Negate x"),
		common.UnaryTool("math.inverse", "Inverse", "Reciprocal 1/x"),
		common.UnaryTool("math.sqrt", "Square Root", "Square root of x"),
		common.UnaryTool("math.cbrt", "Cube Root", "Cube root of x"),
		common.UnaryTool("math.abs", "Absolute Value", "Absolute value of x"),
		common.UnaryTool("math.exp", "Exponential", "e^x"),
		common.UnaryTool("math.exp2", "Base-2 Exponential", "2^x"),
		common.UnaryTool("math.expm1", "Exponential Minus One", "e^x - 1, accurate near zero"),
		common.UnaryTool("math.log", "Natural Logarithm", "ln(x)"),
		common.UnaryTool("math.log2", "Base-2 Logarithm", "log₂(x)"),
		common.UnaryTool("math.log10", "Base-10 Logarithm", "log₁₀(x)"),
		common.UnaryTool("math.log1p", "Logarithm of One Plus", "ln(1 + x), accurate near zero"),
		common.UnaryTool("math.floor", "Floor", "Round down to nearest integer"),
		common.UnaryTool("math.ceil", "Ceiling", "Round up to nearest integer"),
		common.UnaryTool("math.round", "Round", "Round half away from zero"),
		common.UnaryTool("math.trunc", "Truncate", "Round toward zero"),
	}
}

// Add sums operands
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ops, err := a.Operands(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}
	if len(ops) == 0 {
		return common.Failure("numbers array required")
	}
	return a.Store(params, measure.Sum(ops...))
}

// Multiply multiplies operands
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ops, err := a.Operands(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}
	if len(ops) == 0 {
		return common.Failure("numbers array required")
	}
	return a.Store(params, measure.Prod(ops...))
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "a", "b", Sub)
}

// Divide divides a by b. A zero divisor yields IEEE infinities rather than a
// failure so results stay composable.
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "a", "b", Div)
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "base", "exponent", Pow)
}

func (a *ArithmeticOps) Hypot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "a", "b", Hypot)
}

func (a *ArithmeticOps) Mod(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "a", "b", Mod)
}

func (a *ArithmeticOps) Rem(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Binary(params, "a", "b", Rem)
}

func (a *ArithmeticOps) Negate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Neg)
}

func (a *ArithmeticOps) Inverse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Inv)
}

// Sqrt calculates square root
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Sqrt)
}

func (a *ArithmeticOps) Cbrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Cbrt)
}

// Abs calculates absolute value
func (a *ArithmeticOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Abs)
}

// Exp calculates e^x
func (a *ArithmeticOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Exp)
}

func (a *ArithmeticOps) Exp2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Exp2)
}

func (a *ArithmeticOps) Expm1(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Expm1)
}

// Log calculates natural logarithm
func (a *ArithmeticOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Log)
}

// Log2 calculates base-2 logarithm
func (a *ArithmeticOps) Log2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Log2)
}

// Log10 calculates base-10 logarithm
func (a *ArithmeticOps) Log10(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Log10)
}

func (a *ArithmeticOps) Log1p(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Log1p)
}

// Floor rounds down
func (a *ArithmeticOps) Floor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Floor)
}

// Ceil rounds up
func (a *ArithmeticOps) Ceil(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Ceil)
}

// Round rounds to nearest integer
func (a *ArithmeticOps) Round(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Round)
}

func (a *ArithmeticOps) Trunc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.Unary(params, "x", Trunc)
}
