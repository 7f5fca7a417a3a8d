package operations

import (
	"context"

	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// TrigOps handles trigonometric and hyperbolic tools. Angles are radians.
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		common.UnaryTool("math.sin", "Sine", "Sine of an angle in radians"),
		common.UnaryTool("math.cos", "Cosine", "Cosine of an angle in radians"),
		common.UnaryTool("math.tan", "Tangent", "Tangent of an angle in radians"),
		common.UnaryTool("math.asin", "Arcsine", "Inverse sine, in radians"),
		common.UnaryTool("math.acos", "Arccosine", "Inverse cosine, in radians"),
		common.UnaryTool("math.atan", "Arctangent", "Inverse tangent, in radians"),
		common.BinaryTool("math.atan2", "Arctangent of y/x", "Angle of the point (x, y), in radians", "y", "x"),
		common.UnaryTool("math.sinh", "Hyperbolic Sine", "sinh(x)"),
		common.UnaryTool("math.cosh", "Hyperbolic Cosine", "cosh(x)"),
		common.UnaryTool("math.tanh", "Hyperbolic Tangent", "tanh(x)"),
		common.UnaryTool("math.asinh", "Inverse Hyperbolic Sine", "asinh(x)"),
		common.UnaryTool("math.acosh", "Inverse Hyperbolic Cosine", "acosh(x)"),
		common.UnaryTool("math.atanh", "Inverse Hyperbolic Tangent", "atanh(x)"),
		common.UnaryTool("math.radians", "Degrees to Radians", "Convert degrees to radians"),
		common.UnaryTool("math.degrees", "Radians to Degrees", "Convert radians to degrees"),
	}
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Sin)
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Cos)
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Tan)
}

func (t *TrigOps) Asin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Asin)
}

func (t *TrigOps) Acos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Acos)
}

func (t *TrigOps) Atan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Atan)
}

// Atan2 calculates the angle of (x, y)
func (t *TrigOps) Atan2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Binary(params, "y", "x", Atan2)
}

func (t *TrigOps) Sinh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Sinh)
}

func (t *TrigOps) Cosh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Cosh)
}

func (t *TrigOps) Tanh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Tanh)
}

func (t *TrigOps) Asinh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Asinh)
}

func (t *TrigOps) Acosh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Acosh)
}

func (t *TrigOps) Atanh(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Atanh)
}

// DegreesToRadians converts degrees to radians
func (t *TrigOps) DegreesToRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Radians)
}

// RadiansToDegrees converts radians to degrees
func (t *TrigOps) RadiansToDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.Unary(params, "x", Degrees)
}
