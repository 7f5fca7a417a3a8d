package measure

import (
	"strconv"
)

// Measurement is a nominal value with a standard uncertainty and the
// partial derivatives linking it to independent variables. The zero value is
// the exact number 0.
type Measurement struct {
	val float64
	err float64
	tag Tag
	der Derivatives
}

// Exact returns a measurement with no uncertainty and no dependencies.
func Exact(v float64) Measurement {
	return Measurement{val: v}
}

// Value returns the nominal value.
func (m Measurement) Value() float64 { return m.val }

// Uncertainty returns the standard uncertainty.
func (m Measurement) Uncertainty() float64 { return m.err }

// Tag returns the identity of m; derived measurements return the sentinel.
func (m Measurement) Tag() Tag { return m.tag }

// IsIndependent reports whether m was created by an Allocator.
func (m Measurement) IsIndependent() bool { return !m.tag.IsDerived() }

// Derivative returns ∂m/∂x where x is an independent measurement. It is 0
// when m does not depend on x or x is derived.
func (m Measurement) Derivative(x Measurement) float64 {
	if !x.IsIndependent() {
		return 0
	}
	return m.der[x.tag]
}

// Derivatives returns a copy of the derivative map.
func (m Measurement) Derivatives() Derivatives {
	return m.der.clone()
}

// DependsOn reports whether m has a non-zero sensitivity to x.
func (m Measurement) DependsOn(x Measurement) bool {
	return m.Derivative(x) != 0
}

func (m Measurement) String() string {
	return strconv.FormatFloat(m.val, 'g', -1, 64) + " ± " + strconv.FormatFloat(m.err, 'g', -1, 64)
}

func (m Measurement) measurement() Measurement { return m }

// Number is a plain operand with no uncertainty.
type Number float64

func (n Number) measurement() Measurement { return Exact(float64(n)) }

// Operand is either a Measurement or a Number. The set is closed.
type Operand interface {
	measurement() Measurement
}

// Resolve returns the measurement form of op.
func Resolve(op Operand) Measurement {
	return op.measurement()
}

// Value returns the nominal value of any operand.
func Value(op Operand) float64 {
	if n, ok := op.(Number); ok {
		return float64(n)
	}
	return op.measurement().val
}

// Values returns the nominal values of ops.
func Values(ops []Operand) []float64 {
	vals := make([]float64, len(ops))
	for i, op := range ops {
		vals[i] = Value(op)
	}
	return vals
}

// Operands converts measurements to operands.
func Operands(ms ...Measurement) []Operand {
	ops := make([]Operand, len(ms))
	for i, m := range ms {
		ops[i] = m
	}
	return ops
}

func isNumber(op Operand) bool {
	_, ok := op.(Number)
	return ok
}
