package common

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/measurements/internal/logging"
	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/types"
)

// MathOps provides common math helpers
type MathOps struct {
	Workspace *Workspace
	Diff      measure.Differentiator
	Logger    *logging.Logger
}

// NewMathOps wires the shared dependencies of the tool modules.
func NewMathOps(ws *Workspace, diff measure.Differentiator, logger *logging.Logger) *MathOps {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MathOps{Workspace: ws, Diff: diff, Logger: logger}
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		num, ok := toFloat(v)
		if !ok {
			return nil, false
		}
		numbers = append(numbers, num)
	}
	return numbers, true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// Finite maps NaN and infinities to nil so payloads stay JSON-encodable.
func Finite(v float64) interface{} {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return nil
	}
	return v
}

// MeasurementData renders a stored measurement for a result payload.
// Non-finite parts are reported as null.
func MeasurementData(handle string, m measure.Measurement) map[string]interface{} {
	return map[string]interface{}{
		"id":          handle,
		"value":       Finite(m.Value()),
		"uncertainty": Finite(m.Uncertainty()),
	}
}

// Store saves m in the workspace and returns it as a successful result.
// An optional "name" parameter binds the result to a name as well.
func (o *MathOps) Store(params map[string]interface{}, m measure.Measurement) (*types.Result, error) {
	name, _ := GetString(params, "name")
	handle := o.Workspace.Put(name, m)
	return Success(MeasurementData(handle.String(), m))
}

// StoreComplex saves both parts of c and returns them under "re" and "im".
func (o *MathOps) StoreComplex(params map[string]interface{}, c measure.Complex) (*types.Result, error) {
	name, _ := GetString(params, "name")
	reName, imName := "", ""
	if name != "" {
		reName, imName = name+".re", name+".im"
	}
	re := o.Workspace.Put(reName, c.Re)
	im := o.Workspace.Put(imName, c.Im)
	return Success(map[string]interface{}{
		"re": MeasurementData(re.String(), c.Re),
		"im": MeasurementData(im.String(), c.Im),
	})
}

// Unary resolves params[key] and stores fn applied to it.
func (o *MathOps) Unary(params map[string]interface{}, key string, fn func(measure.Measurement) measure.Measurement) (*types.Result, error) {
	a, err := o.Measurement(params, key)
	if err != nil {
		return Failure(err.Error())
	}
	return o.Store(params, fn(a))
}

// Binary resolves params[ka] and params[kb] and stores fn applied to them.
func (o *MathOps) Binary(params map[string]interface{}, ka, kb string, fn func(a, b measure.Operand) measure.Measurement) (*types.Result, error) {
	a, err := o.Operand(params, ka)
	if err != nil {
		return Failure(err.Error())
	}
	b, err := o.Operand(params, kb)
	if err != nil {
		return Failure(err.Error())
	}
	return o.Store(params, fn(a, b))
}

// Fail logs a rejected tool call and returns it as a failed result.
func (o *MathOps) Fail(tool string, err error) (*types.Result, error) {
	o.Logger.Warn("Tool call rejected", zap.String("tool", tool), zap.Error(err))
	return Failure(err.Error())
}
