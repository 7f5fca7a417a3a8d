package common

import (
	"fmt"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

// Operand resolves params[key] to a plain number or a stored measurement.
func (o *MathOps) Operand(params map[string]interface{}, key string) (measure.Operand, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}
	return o.resolve(raw, key)
}

// Measurement is like Operand but lifts plain numbers to exact
// measurements.
func (o *MathOps) Measurement(params map[string]interface{}, key string) (measure.Measurement, error) {
	op, err := o.Operand(params, key)
	if err != nil {
		return measure.Measurement{}, err
	}
	return measure.Resolve(op), nil
}

// Operands resolves an array parameter element by element.
func (o *MathOps) Operands(params map[string]interface{}, key string) ([]measure.Operand, error) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s array required", key)
	}

	ops := make([]measure.Operand, 0, len(arr))
	for i, raw := range arr {
		op, err := o.resolve(raw, fmt.Sprintf("%s[%d]", key, i))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Measurements resolves an array parameter to measurements.
func (o *MathOps) Measurements(params map[string]interface{}, key string) ([]measure.Measurement, error) {
	ops, err := o.Operands(params, key)
	if err != nil {
		return nil, err
	}
	ms := make([]measure.Measurement, len(ops))
	for i, op := range ops {
		ms[i] = measure.Resolve(op)
	}
	return ms, nil
}

func (o *MathOps) resolve(raw interface{}, label string) (measure.Operand, error) {
	if n, ok := toFloat(raw); ok {
		return measure.Number(n), nil
	}
	ref, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be a number or a measurement reference", label)
	}
	m, ok := o.Workspace.Get(ref)
	if !ok {
		return nil, fmt.Errorf("%s: unknown measurement %q", label, ref)
	}
	return m, nil
}
