package measure

import "fmt"

// Differentiator computes derivatives of plain functions numerically.
type Differentiator interface {
	// Derivative returns f'(x).
	Derivative(f func(float64) float64, x float64) float64
	// Gradient returns ∇f(x); the result has len(x) entries.
	Gradient(f func([]float64) float64, x []float64) []float64
}

// Apply evaluates f at a's nominal value and propagates a's uncertainty
// using a numeric derivative.
func Apply(d Differentiator, f func(float64) float64, a Measurement) Measurement {
	val := f(a.val)
	if !a.der.uncertain() {
		return Measurement{val: val}
	}
	return Propagate(val, d.Derivative(f, a.val), a)
}

// ApplyN evaluates f at the nominal values of args and propagates their
// uncertainties using a numeric gradient. Correlations between args are
// preserved.
func ApplyN(d Differentiator, f func([]float64) float64, args ...Measurement) (Measurement, error) {
	if len(args) == 0 {
		return Measurement{}, fmt.Errorf("apply: %w", ErrNoOperands)
	}

	x := make([]float64, len(args))
	for i, a := range args {
		x[i] = a.val
	}
	// f may modify its argument; evaluate it on a copy.
	val := f(append([]float64(nil), x...))
	grad := d.Gradient(f, x)

	m, err := PropagateN(val, grad, Operands(args...))
	if err != nil {
		return Measurement{}, fmt.Errorf("apply: gradient has %d entries for %d arguments: %w", len(grad), len(args), err)
	}
	return m, nil
}
