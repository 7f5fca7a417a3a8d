package operations

import (
	gomath "math"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

// Add returns a + b.
func Add(a, b measure.Operand) measure.Measurement {
	return measure.Propagate2(measure.Value(a)+measure.Value(b), 1, 1, a, b)
}

// Sub returns a - b. Sub(x, x) is exactly zero with zero uncertainty.
func Sub(a, b measure.Operand) measure.Measurement {
	return measure.Propagate2(measure.Value(a)-measure.Value(b), 1, -1, a, b)
}

// Mul returns a * b.
func Mul(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	return measure.Propagate2(va*vb, vb, va, a, b)
}

// Div returns a / b.
func Div(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	return measure.Propagate2(va/vb, 1/vb, -va/(vb*vb), a, b)
}

// Pow returns a raised to b.
func Pow(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	val := gomath.Pow(va, vb)
	da := vb * gomath.Pow(va, vb-1)
	db := val * gomath.Log(va)
	if va == 0 && vb > 0 {
		db = 0
	}
	return measure.Propagate2(val, da, db, a, b)
}

// Hypot returns sqrt(a² + b²).
func Hypot(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	h := gomath.Hypot(va, vb)
	return measure.Propagate2(h, va/h, vb/h, a, b)
}

// Rem returns the remainder of a / b with the sign of a, as math.Mod does.
// The quotient is locally constant, so ∂/∂b is -trunc(a/b).
func Rem(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	return measure.Propagate2(gomath.Mod(va, vb), 1, -gomath.Trunc(va/vb), a, b)
}

// Mod returns a - b·floor(a/b), which takes the sign of b. ∂/∂b is
// -floor(a/b).
func Mod(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	q := gomath.Floor(va / vb)
	r := gomath.Mod(va, vb)
	if r != 0 && (r < 0) != (vb < 0) {
		r += vb
	}
	return measure.Propagate2(r, 1, -q, a, b)
}

func Neg(a measure.Measurement) measure.Measurement {
	return measure.Propagate(-a.Value(), -1, a)
}

// Inv returns 1/a.
func Inv(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(1/v, -1/(v*v), a)
}

func Sqrt(a measure.Measurement) measure.Measurement {
	s := gomath.Sqrt(a.Value())
	return measure.Propagate(s, 0.5/s, a)
}

func Cbrt(a measure.Measurement) measure.Measurement {
	c := gomath.Cbrt(a.Value())
	return measure.Propagate(c, 1/(3*c*c), a)
}

// Abs returns |a|. The derivative at zero is taken as 0.
func Abs(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Abs(v), sign(v), a)
}

func Exp(a measure.Measurement) measure.Measurement {
	e := gomath.Exp(a.Value())
	return measure.Propagate(e, e, a)
}

func Exp2(a measure.Measurement) measure.Measurement {
	e := gomath.Exp2(a.Value())
	return measure.Propagate(e, gomath.Ln2*e, a)
}

// Expm1 returns e^a - 1 accurately for small a.
func Expm1(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Expm1(v), gomath.Exp(v), a)
}

func Log(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Log(v), 1/v, a)
}

func Log2(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Log2(v), 1/(v*gomath.Ln2), a)
}

func Log10(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Log10(v), 1/(v*gomath.Ln10), a)
}

// Log1p returns ln(1 + a) accurately for small a.
func Log1p(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Log1p(v), 1/(1+v), a)
}

// Rounding functions are piecewise constant; their results keep the
// dependency structure of a with zero sensitivity.

func Floor(a measure.Measurement) measure.Measurement {
	return measure.Propagate(gomath.Floor(a.Value()), 0, a)
}

func Ceil(a measure.Measurement) measure.Measurement {
	return measure.Propagate(gomath.Ceil(a.Value()), 0, a)
}

func Round(a measure.Measurement) measure.Measurement {
	return measure.Propagate(gomath.Round(a.Value()), 0, a)
}

func Trunc(a measure.Measurement) measure.Measurement {
	return measure.Propagate(gomath.Trunc(a.Value()), 0, a)
}

func Sin(a measure.Measurement) measure.Measurement {
	s, c := gomath.Sincos(a.Value())
	return measure.Propagate(s, c, a)
}

func Cos(a measure.Measurement) measure.Measurement {
	s, c := gomath.Sincos(a.Value())
	return measure.Propagate(c, -s, a)
}

func Tan(a measure.Measurement) measure.Measurement {
	t := gomath.Tan(a.Value())
	return measure.Propagate(t, 1+t*t, a)
}

func Asin(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Asin(v), 1/gomath.Sqrt(1-v*v), a)
}

func Acos(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Acos(v), -1/gomath.Sqrt(1-v*v), a)
}

func Atan(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Atan(v), 1/(1+v*v), a)
}

// Atan2 returns the angle of the point (x, y).
func Atan2(y, x measure.Operand) measure.Measurement {
	vy, vx := measure.Value(y), measure.Value(x)
	r2 := vx*vx + vy*vy
	return measure.Propagate2(gomath.Atan2(vy, vx), vx/r2, -vy/r2, y, x)
}

func Sinh(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Sinh(v), gomath.Cosh(v), a)
}

func Cosh(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Cosh(v), gomath.Sinh(v), a)
}

func Tanh(a measure.Measurement) measure.Measurement {
	t := gomath.Tanh(a.Value())
	return measure.Propagate(t, 1-t*t, a)
}

func Asinh(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Asinh(v), 1/gomath.Sqrt(v*v+1), a)
}

func Acosh(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Acosh(v), 1/gomath.Sqrt(v*v-1), a)
}

func Atanh(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Atanh(v), 1/(1-v*v), a)
}

// Radians converts degrees to radians.
func Radians(a measure.Measurement) measure.Measurement {
	return measure.Propagate(a.Value()*degree, degree, a)
}

// Degrees converts radians to degrees.
func Degrees(a measure.Measurement) measure.Measurement {
	return measure.Propagate(a.Value()/degree, 1/degree, a)
}

const degree = gomath.Pi / 180

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return v
}
