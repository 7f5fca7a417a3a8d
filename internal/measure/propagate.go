package measure

import (
	"fmt"
	"math"
)

// Propagate builds the result of a function G of one measurement, given
// G's value and dG/da at a's nominal value.
//
// When a carries no uncertainty the result carries none either, even if der
// is NaN or infinite. The derivative map is still carried so that
// sensitivities too small to show in a.err keep their correlations.
func Propagate(val, der float64, a Measurement) Measurement {
	if a.err == 0 && (math.IsNaN(der) || math.IsInf(der, 0)) {
		return Measurement{val: val}
	}

	out := make(Derivatives, len(a.der))
	for tag, d := range a.der {
		if tag.stddev == 0 {
			continue
		}
		out[tag] = der * d
	}

	var err float64
	if a.err != 0 {
		err = math.Abs(der * a.err)
	}
	return Measurement{
		val: val,
		err: err,
		der: out,
	}
}

// PropagateN builds the result of a function G of several operands that may
// share independent variables. ders[i] is ∂G/∂ops[i].
//
// For every independent variable x reachable from the operands the combined
// sensitivity Σ ders[i]·∂ops[i]/∂x is recorded, and the uncertainty is the
// root of Σ (σx·∂G/∂x)².
func PropagateN(val float64, ders []float64, ops []Operand) (Measurement, error) {
	if len(ders) != len(ops) {
		return Measurement{}, fmt.Errorf("propagate %d derivatives over %d operands: %w", len(ders), len(ops), ErrArity)
	}
	return propagate(val, ders, ops), nil
}

// Propagate2 builds the result of a binary function. Plain numbers are
// dropped before propagation, so a function of one measurement and one
// number takes the single-operand path.
func Propagate2(val, da, db float64, a, b Operand) Measurement {
	switch {
	case isNumber(a) && isNumber(b):
		return Exact(val)
	case isNumber(b):
		return Propagate(val, da, a.measurement())
	case isNumber(a):
		return Propagate(val, db, b.measurement())
	}
	return propagate(val, []float64{da, db}, []Operand{a, b})
}

// propagate assumes len(ders) == len(ops).
func propagate(val float64, ders []float64, ops []Operand) Measurement {
	size := 0
	for _, op := range ops {
		if m, ok := op.(Measurement); ok {
			size += len(m.der)
		}
	}

	out := make(Derivatives, size)
	for i, op := range ops {
		m, ok := op.(Measurement)
		if !ok {
			continue
		}
		for tag, d := range m.der {
			if tag.stddev == 0 {
				continue
			}
			out[tag] += ders[i] * d
		}
	}

	return Measurement{
		val: val,
		err: math.Sqrt(out.variance()),
		der: out,
	}
}
