package utilities

import (
	"context"

	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// ConversionsOps handles unit conversions
type ConversionsOps struct {
	*common.MathOps
}

// GetTools returns conversion tool definitions
func (c *ConversionsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.convert",
			Name:        "Convert Units",
			Description: "Convert a measurement between units of the same dimension (length, mass, time, temperature, angle)",
			Parameters: []types.Parameter{
				common.OperandParam("x", "Quantity to convert"),
				{Name: "from", Type: "string", Description: "Source unit symbol, e.g. ft or C", Required: true},
				{Name: "to", Type: "string", Description: "Target unit symbol, e.g. m or K", Required: true},
				common.NameParam,
			},
			Returns: "measurement",
		},
		{
			ID:          "math.units",
			Name:        "List Units",
			Description: "List the supported unit symbols",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
	}
}

// Convert converts x between units
func (c *ConversionsOps) Convert(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	from, ok := common.GetString(params, "from")
	if !ok {
		return common.Failure("from parameter required")
	}
	to, ok := common.GetString(params, "to")
	if !ok {
		return common.Failure("to parameter required")
	}
	x, err := c.Measurement(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}

	m, err := Convert(x, from, to)
	if err != nil {
		return c.Fail("math.convert", err)
	}
	return c.Store(params, m)
}

// Units lists unit symbols grouped by dimension
func (c *ConversionsOps) Units(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	byDim := make(map[string][]string)
	for _, sym := range Units() {
		u, _ := LookupUnit(sym)
		byDim[u.Dimension] = append(byDim[u.Dimension], sym)
	}
	out := make(map[string]interface{}, len(byDim))
	for dim, syms := range byDim {
		out[dim] = syms
	}
	return common.Success(out)
}
