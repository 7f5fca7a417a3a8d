package statistics

import (
	"context"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// StatsOps handles statistical and correlation tools using gonum
type StatsOps struct {
	*common.MathOps
}

func arrayTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "numbers", Type: "array", Description: "Operands", Required: true},
			common.NameParam,
		},
		Returns: "measurement",
	}
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		arrayTool("math.mean", "Mean", "Arithmetic mean of operands, correlation-aware"),
		arrayTool("math.weighted_mean", "Weighted Mean", "Inverse-variance weighted mean; every input needs a non-zero uncertainty"),
		{
			ID:          "math.sample",
			Name:        "Sample",
			Description: "Create an independent measurement from repeated readings: mean ± standard error",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "At least two plain readings", Required: true},
				common.NameParam,
			},
			Returns: "measurement",
		},
		{
			ID:          "math.covariance",
			Name:        "Covariance",
			Description: "Covariance of two measurements through their shared inputs",
			Parameters: []types.Parameter{
				common.OperandParam("a", "First operand"),
				common.OperandParam("b", "Second operand"),
			},
			Returns: "number",
		},
		{
			ID:          "math.correlation",
			Name:        "Correlation",
			Description: "Pearson correlation of two measurements; null when either is exact",
			Parameters: []types.Parameter{
				common.OperandParam("a", "First operand"),
				common.OperandParam("b", "Second operand"),
			},
			Returns: "number",
		},
		{
			ID:          "math.stdscore",
			Name:        "Standard Score",
			Description: "Distance of x from expected in units of standard uncertainty",
			Parameters: []types.Parameter{
				common.OperandParam("x", "Measurement"),
				common.OperandParam("expected", "Expected value or measurement"),
			},
			Returns: "number",
		},
		{
			ID:          "math.components",
			Name:        "Uncertainty Components",
			Description: "Break an uncertainty down by independent input",
			Parameters: []types.Parameter{
				common.OperandParam("x", "Measurement"),
			},
			Returns: "array",
		},
		{
			ID:          "math.derivative",
			Name:        "Partial Derivative",
			Description: "∂of/∂wrt where wrt is an independent measurement",
			Parameters: []types.Parameter{
				common.OperandParam("of", "Measurement"),
				common.OperandParam("wrt", "Independent measurement"),
			},
			Returns: "number",
		},
	}
}

// Mean calculates the arithmetic mean
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ops, err := s.Operands(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}
	m, err := Mean(ops...)
	if err != nil {
		return s.Fail("math.mean", err)
	}
	return s.Store(params, m)
}

// WeightedMean calculates the inverse-variance weighted mean
func (s *StatsOps) WeightedMean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	ms, err := s.Measurements(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}
	m, err := WeightedMean(ms...)
	if err != nil {
		return s.Fail("math.weighted_mean", err)
	}
	return s.Store(params, m)
}

// Sample creates an independent measurement from readings
func (s *StatsOps) Sample(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	readings, ok := common.GetNumbers(params, "numbers")
	if !ok {
		return common.Failure("numbers array required")
	}
	for _, r := range readings {
		if err := common.ValidateNumber(r, "reading"); err != nil {
			return common.Failure(err.Error())
		}
	}
	m, err := Sample(s.Workspace.Allocator(), readings)
	if err != nil {
		return s.Fail("math.sample", err)
	}
	return s.Store(params, m)
}

// Covariance calculates cov(a, b)
func (s *StatsOps) Covariance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := s.pair(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": common.Finite(measure.Covariance(a, b))})
}

// Correlation calculates the correlation coefficient
func (s *StatsOps) Correlation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, err := s.pair(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": common.Finite(measure.Correlation(a, b))})
}

// StdScore calculates the standard score of x
func (s *StatsOps) StdScore(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := s.Measurement(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	expected, err := s.Operand(params, "expected")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": common.Finite(measure.StdScore(x, expected))})
}

// Components lists the contribution of each independent input
func (s *StatsOps) Components(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, err := s.Measurement(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}

	comps := measure.Components(x)
	out := make([]map[string]interface{}, 0, len(comps))
	for _, c := range comps {
		item := map[string]interface{}{
			"tag":          c.Tag.ID(),
			"uncertainty":  c.Tag.Stddev(),
			"contribution": common.Finite(c.Contribution),
		}
		if e, ok := s.Workspace.Independent(c.Tag); ok {
			item["id"] = e.ID.String()
			if e.Name != "" {
				item["name"] = e.Name
			}
		}
		out = append(out, item)
	}

	return common.Success(map[string]interface{}{
		"uncertainty": common.Finite(x.Uncertainty()),
		"components":  out,
	})
}

// Derivative returns the partial derivative of one measurement with respect
// to an independent one
func (s *StatsOps) Derivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	of, wrt, err := s.pair(params, "of", "wrt")
	if err != nil {
		return common.Failure(err.Error())
	}
	if !wrt.IsIndependent() {
		return common.Failure("wrt must be an independent measurement")
	}
	return common.Success(map[string]interface{}{"result": common.Finite(of.Derivative(wrt))})
}

func (s *StatsOps) pair(params map[string]interface{}, ka, kb string) (measure.Measurement, measure.Measurement, error) {
	a, err := s.Measurement(params, ka)
	if err != nil {
		return measure.Measurement{}, measure.Measurement{}, err
	}
	b, err := s.Measurement(params, kb)
	if err != nil {
		return measure.Measurement{}, measure.Measurement{}, err
	}
	return a, b, nil
}
