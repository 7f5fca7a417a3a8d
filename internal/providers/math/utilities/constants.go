package utilities

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// ConstantsOps stores mathematical constants as exact measurements so they
// can be referenced by later calls.
type ConstantsOps struct {
	*common.MathOps
}

func constantTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters:  []types.Parameter{common.NameParam},
		Returns:     "measurement",
	}
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		constantTool("math.pi", "Pi (π)", "Exact π"),
		constantTool("math.e", "Euler's Number (e)", "Exact e"),
		constantTool("math.tau", "Tau (τ)", "Exact τ (2π)"),
		constantTool("math.phi", "Golden Ratio (φ)", "Exact φ"),
	}
}

// Pi returns π
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Store(params, measure.Exact(gomath.Pi))
}

// E returns e
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Store(params, measure.Exact(gomath.E))
}

// Tau returns τ (2π)
func (c *ConstantsOps) Tau(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Store(params, measure.Exact(2*gomath.Pi))
}

// Phi returns φ (golden ratio)
func (c *ConstantsOps) Phi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Store(params, measure.Exact(gomath.Phi))
}
