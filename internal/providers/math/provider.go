package math

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/measurements/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/measurements/internal/logging"
	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/providers/math/advanced"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/providers/math/operations"
	"github.com/GriffinCanCode/measurements/internal/providers/math/statistics"
	"github.com/GriffinCanCode/measurements/internal/providers/math/utilities"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// Provider implements uncertainty-propagating math tools over a shared
// workspace of measurements
type Provider struct {
	workspace *common.Workspace
	logger    *logging.Logger
	metrics   *monitoring.Metrics
	known     map[string]bool

	// Module instances
	arithmetic  *operations.ArithmeticOps
	trig        *operations.TrigOps
	stats       *statistics.StatsOps
	constants   *utilities.ConstantsOps
	conversions *utilities.ConversionsOps
	store       *utilities.WorkspaceOps
	special     *advanced.SpecialOps
}

// NewProvider creates a modular math provider. metrics may be nil.
func NewProvider(ws *common.Workspace, diff measure.Differentiator, logger *logging.Logger, metrics *monitoring.Metrics) *Provider {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("math")
	ops := common.NewMathOps(ws, diff, logger)

	p := &Provider{
		workspace:   ws,
		logger:      logger,
		metrics:     metrics,
		arithmetic:  &operations.ArithmeticOps{MathOps: ops},
		trig:        &operations.TrigOps{MathOps: ops},
		stats:       &statistics.StatsOps{MathOps: ops},
		constants:   &utilities.ConstantsOps{MathOps: ops},
		conversions: &utilities.ConversionsOps{MathOps: ops},
		store:       &utilities.WorkspaceOps{MathOps: ops},
		special:     &advanced.SpecialOps{MathOps: ops},
	}

	p.known = make(map[string]bool)
	for _, tool := range p.Definition().Tools {
		p.known[tool.ID] = true
	}
	return p
}

// Workspace returns the store backing this provider.
func (m *Provider) Workspace() *common.Workspace {
	return m.workspace
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, m.store.GetTools()...)
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.special.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)
	tools = append(tools, m.conversions.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Measurement arithmetic with correlated uncertainty propagation",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"measurements",
			"arithmetic",
			"trigonometry",
			"special",
			"statistics",
			"conversions",
			"uncertainty",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "measurement",
				Fields: map[string]string{
					"id":          "string",
					"value":       "number",
					"uncertainty": "number",
				},
			},
		},
	}
}

// Execute routes to the owning module and records the call
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	// unknown IDs share one label to bound metric cardinality
	label := toolID
	if !m.known[toolID] {
		label = "unknown"
	}
	timer := monitoring.NewTimer(m.metrics, label)

	result, err := m.route(ctx, toolID, params, appCtx)

	log := m.logger
	if appCtx != nil && appCtx.RequestID != nil {
		log = log.WithRequest(*appCtx.RequestID)
	}

	status := "success"
	switch {
	case err != nil:
		status = "error"
		log.Error("Tool execution failed", zap.String("tool", toolID), zap.Error(err))
	case !result.Success:
		status = "failure"
	}
	timer.Stop(status)

	if m.metrics != nil {
		m.metrics.SetMeasurements(m.workspace.Len())
	}
	log.Debug("Tool executed", zap.String("tool", toolID), zap.String("status", status))
	return result, err
}

func (m *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Workspace
	case "math.measurement":
		return m.store.Create(ctx, params, appCtx)
	case "math.get":
		return m.store.Get(ctx, params, appCtx)
	case "math.delete":
		return m.store.Delete(ctx, params, appCtx)
	case "math.list":
		return m.store.List(ctx, params, appCtx)
	case "math.load":
		return m.store.Load(ctx, params, appCtx)
	case "math.export":
		return m.store.Export(ctx, params, appCtx)

	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, appCtx)
	case "math.divide":
		return m.arithmetic.Divide(ctx, params, appCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, appCtx)
	case "math.hypot":
		return m.arithmetic.Hypot(ctx, params, appCtx)
	case "math.mod":
		return m.arithmetic.Mod(ctx, params, appCtx)
	case "math.rem":
		return m.arithmetic.Rem(ctx, params, appCtx)
	case "math.negate":
		return m.arithmetic.Negate(ctx, params, appCtx)
	case "math.inverse":
		return m.arithmetic.Inverse(ctx, params, appCtx)
	case "math.sqrt":
		return m.arithmetic.Sqrt(ctx, params, appCtx)
	case "math.cbrt":
		return m.arithmetic.Cbrt(ctx, params, appCtx)
	case "math.abs":
		return m.arithmetic.Abs(ctx, params, appCtx)
	case "math.exp":
		return m.arithmetic.Exp(ctx, params, appCtx)
	case "math.exp2":
		return m.arithmetic.Exp2(ctx, params, appCtx)
	case "math.expm1":
		return m.arithmetic.Expm1(ctx, params, appCtx)
	case "math.log":
		return m.arithmetic.Log(ctx, params, appCtx)
	case "math.log2":
		return m.arithmetic.Log2(ctx, params, appCtx)
	case "math.log10":
		return m.arithmetic.Log10(ctx, params, appCtx)
	case "math.log1p":
		return m.arithmetic.Log1p(ctx, params, appCtx)
	case "math.floor":
		return m.arithmetic.Floor(ctx, params, appCtx)
	case "math.ceil":
		return m.arithmetic.Ceil(ctx, params, appCtx)
	case "math.round":
		return m.arithmetic.Round(ctx, params, appCtx)
	case "math.trunc":
		return m.arithmetic.Trunc(ctx, params, appCtx)

	// Trig operations
	case "math.sin":
		return m.trig.Sin(ctx, params, appCtx)
	case "math.cos":
		return m.trig.Cos(ctx, params, appCtx)
	case "math.tan":
		return m.trig.Tan(ctx, params, appCtx)
	case "math.asin":
		return m.trig.Asin(ctx, params, appCtx)
	case "math.acos":
		return m.trig.Acos(ctx, params, appCtx)
	case "math.atan":
		return m.trig.Atan(ctx, params, appCtx)
	case "math.atan2":
		return m.trig.Atan2(ctx, params, appCtx)
	case "math.sinh":
		return m.trig.Sinh(ctx, params, appCtx)
	case "math.cosh":
		return m.trig.Cosh(ctx, params, appCtx)
	case "math.tanh":
		return m.trig.Tanh(ctx, params, appCtx)
	case "math.asinh":
		return m.trig.Asinh(ctx, params, appCtx)
	case "math.acosh":
		return m.trig.Acosh(ctx, params, appCtx)
	case "math.atanh":
		return m.trig.Atanh(ctx, params, appCtx)
	case "math.radians":
		return m.trig.DegreesToRadians(ctx, params, appCtx)
	case "math.degrees":
		return m.trig.RadiansToDegrees(ctx, params, appCtx)

	// Special functions
	case "math.gamma":
		return m.special.Gamma(ctx, params, appCtx)
	case "math.lgamma":
		return m.special.Lgamma(ctx, params, appCtx)
	case "math.digamma":
		return m.special.Digamma(ctx, params, appCtx)
	case "math.beta":
		return m.special.Beta(ctx, params, appCtx)
	case "math.lbeta":
		return m.special.Lbeta(ctx, params, appCtx)
	case "math.erf":
		return m.special.Erf(ctx, params, appCtx)
	case "math.erfc":
		return m.special.Erfc(ctx, params, appCtx)
	case "math.erfinv":
		return m.special.Erfinv(ctx, params, appCtx)
	case "math.erfcinv":
		return m.special.Erfcinv(ctx, params, appCtx)
	case "math.besselj":
		return m.special.BesselJ(ctx, params, appCtx)
	case "math.bessely":
		return m.special.BesselY(ctx, params, appCtx)
	case "math.hankel1":
		return m.special.Hankel1(ctx, params, appCtx)
	case "math.hankel2":
		return m.special.Hankel2(ctx, params, appCtx)
	case "math.airyai":
		return m.special.AiryAi(ctx, params, appCtx)
	case "math.zeta":
		return m.special.Zeta(ctx, params, appCtx)
	case "math.apply":
		return m.special.Apply(ctx, params, appCtx)

	// Stats operations
	case "math.mean":
		return m.stats.Mean(ctx, params, appCtx)
	case "math.weighted_mean":
		return m.stats.WeightedMean(ctx, params, appCtx)
	case "math.sample":
		return m.stats.Sample(ctx, params, appCtx)
	case "math.covariance":
		return m.stats.Covariance(ctx, params, appCtx)
	case "math.correlation":
		return m.stats.Correlation(ctx, params, appCtx)
	case "math.stdscore":
		return m.stats.StdScore(ctx, params, appCtx)
	case "math.components":
		return m.stats.Components(ctx, params, appCtx)
	case "math.derivative":
		return m.stats.Derivative(ctx, params, appCtx)

	// Constants
	case "math.pi":
		return m.constants.Pi(ctx, params, appCtx)
	case "math.e":
		return m.constants.E(ctx, params, appCtx)
	case "math.tau":
		return m.constants.Tau(ctx, params, appCtx)
	case "math.phi":
		return m.constants.Phi(ctx, params, appCtx)

	// Conversions
	case "math.convert":
		return m.conversions.Convert(ctx, params, appCtx)
	case "math.units":
		return m.conversions.Units(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
