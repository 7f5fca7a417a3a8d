package advanced

import (
	"context"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// SpecialOps handles special mathematical functions using gonum
type SpecialOps struct {
	*common.MathOps
}

func orderedTool(id, name, description string) types.Tool {
	return types.Tool{
		ID:          id,
		Name:        name,
		Description: description,
		Parameters: []types.Parameter{
			{Name: "n", Type: "integer", Description: "Order", Required: true},
			common.OperandParam("x", "Argument"),
			common.NameParam,
		},
		Returns: "measurement",
	}
}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		common.UnaryTool("math.gamma", "Gamma Function", "Γ(x)"),
		common.UnaryTool("math.lgamma", "Log Gamma", "ln|Γ(x)|"),
		common.UnaryTool("math.digamma", "Digamma", "ψ(x), the logarithmic derivative of Γ"),
		common.BinaryTool("math.beta", "Beta Function", "B(a, b)", "a", "b"),
		common.BinaryTool("math.lbeta", "Log Beta", "ln B(a, b)", "a", "b"),
		common.UnaryTool("math.erf", "Error Function", "erf(x)"),
		common.UnaryTool("math.erfc", "Complementary Error Function", "erfc(x)"),
		common.UnaryTool("math.erfinv", "Inverse Error Function", "erf⁻¹(x) for x in (-1, 1)"),
		common.UnaryTool("math.erfcinv", "Inverse Complementary Error Function", "erfc⁻¹(x) for x in (0, 2)"),
		orderedTool("math.besselj", "Bessel J", "Bessel function of the first kind J_n(x)"),
		orderedTool("math.bessely", "Bessel Y", "Bessel function of the second kind Y_n(x)"),
		orderedTool("math.hankel1", "Hankel H1", "Hankel function of the first kind; returns real and imaginary parts"),
		orderedTool("math.hankel2", "Hankel H2", "Hankel function of the second kind; returns real and imaginary parts"),
		common.UnaryTool("math.airyai", "Airy Ai", "Airy function Ai(x)"),
		{
			ID:          "math.zeta",
			Name:        "Hurwitz Zeta",
			Description: "ζ(s, q) for s > 1, q > 0; uncertainty flows from q",
			Parameters: []types.Parameter{
				{Name: "s", Type: "number", Description: "Exponent, greater than 1", Required: true},
				common.OperandParam("q", "Offset, greater than 0"),
				common.NameParam,
			},
			Returns: "measurement",
		},
		ApplyTool(),
	}
}

// Gamma calculates gamma function
func (sp *SpecialOps) Gamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Gamma)
}

// Lgamma calculates log gamma function
func (sp *SpecialOps) Lgamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Lgamma)
}

func (sp *SpecialOps) Digamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", func(m measure.Measurement) measure.Measurement {
		return Digamma(sp.Diff, m)
	})
}

// Beta calculates beta function using gonum
func (sp *SpecialOps) Beta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Binary(params, "a", "b", Beta)
}

func (sp *SpecialOps) Lbeta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Binary(params, "a", "b", Lbeta)
}

// Erf calculates error function
func (sp *SpecialOps) Erf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Erf)
}

// Erfc calculates complementary error function
func (sp *SpecialOps) Erfc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Erfc)
}

func (sp *SpecialOps) Erfinv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Erfinv)
}

func (sp *SpecialOps) Erfcinv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", Erfcinv)
}

// BesselJ calculates J_n(x)
func (sp *SpecialOps) BesselJ(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := order(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return sp.Unary(params, "x", func(m measure.Measurement) measure.Measurement {
		switch n {
		case 0:
			return J0(m)
		case 1:
			return J1(m)
		}
		return Jn(n, m)
	})
}

// BesselY calculates Y_n(x)
func (sp *SpecialOps) BesselY(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := order(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return sp.Unary(params, "x", func(m measure.Measurement) measure.Measurement {
		switch n {
		case 0:
			return Y0(m)
		case 1:
			return Y1(m)
		}
		return Yn(n, m)
	})
}

func (sp *SpecialOps) Hankel1(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.hankel(params, Hankel1)
}

func (sp *SpecialOps) Hankel2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.hankel(params, Hankel2)
}

func (sp *SpecialOps) hankel(params map[string]interface{}, fn func(int, measure.Measurement) measure.Complex) (*types.Result, error) {
	n, err := order(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	x, err := sp.Measurement(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	return sp.StoreComplex(params, fn(n, x))
}

func (sp *SpecialOps) AiryAi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return sp.Unary(params, "x", func(m measure.Measurement) measure.Measurement {
		return AiryAi(sp.Diff, m)
	})
}

// Zeta calculates the Hurwitz zeta function
func (sp *SpecialOps) Zeta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	s, ok := common.GetNumber(params, "s")
	if !ok {
		return common.Failure("s parameter required")
	}
	if err := common.ValidateNumber(s, "s"); err != nil {
		return common.Failure(err.Error())
	}
	if s <= 1 {
		return common.Failure("s must be greater than 1")
	}
	return sp.Unary(params, "q", func(m measure.Measurement) measure.Measurement {
		return Zeta(s, m)
	})
}

func order(params map[string]interface{}) (int, error) {
	n, ok := common.GetNumber(params, "n")
	if !ok {
		return 0, fmt.Errorf("n parameter required")
	}
	if n != gomath.Trunc(n) || gomath.Abs(n) > 1<<20 {
		return 0, fmt.Errorf("n must be an integer, got %v", n)
	}
	return int(n), nil
}
