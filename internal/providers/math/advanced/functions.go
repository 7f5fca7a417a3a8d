package advanced

import (
	gomath "math"

	"gonum.org/v1/gonum/mathext"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

const twoOverSqrtPi = 2 / gomath.SqrtPi

// Gamma returns Γ(a). Γ' = Γ·ψ.
func Gamma(a measure.Measurement) measure.Measurement {
	v := a.Value()
	g := gomath.Gamma(v)
	return measure.Propagate(g, g*mathext.Digamma(v), a)
}

// Lgamma returns ln|Γ(a)|.
func Lgamma(a measure.Measurement) measure.Measurement {
	v := a.Value()
	lg, _ := gomath.Lgamma(v)
	return measure.Propagate(lg, mathext.Digamma(v), a)
}

// Digamma returns ψ(a). The trigamma function has no closed form in the
// library, so its derivative is numeric.
func Digamma(d measure.Differentiator, a measure.Measurement) measure.Measurement {
	return measure.Apply(d, mathext.Digamma, a)
}

// Beta returns B(a, b).
func Beta(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	beta := mathext.Beta(va, vb)
	psiSum := mathext.Digamma(va + vb)
	return measure.Propagate2(beta,
		beta*(mathext.Digamma(va)-psiSum),
		beta*(mathext.Digamma(vb)-psiSum),
		a, b)
}

// Lbeta returns ln B(a, b).
func Lbeta(a, b measure.Operand) measure.Measurement {
	va, vb := measure.Value(a), measure.Value(b)
	psiSum := mathext.Digamma(va + vb)
	return measure.Propagate2(mathext.Lbeta(va, vb),
		mathext.Digamma(va)-psiSum,
		mathext.Digamma(vb)-psiSum,
		a, b)
}

func Erf(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Erf(v), twoOverSqrtPi*gomath.Exp(-v*v), a)
}

func Erfc(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Erfc(v), -twoOverSqrtPi*gomath.Exp(-v*v), a)
}

// Erfinv is the inverse of Erf on (-1, 1).
func Erfinv(a measure.Measurement) measure.Measurement {
	y := gomath.Erfinv(a.Value())
	return measure.Propagate(y, gomath.Exp(y*y)/twoOverSqrtPi, a)
}

// Erfcinv is the inverse of Erfc on (0, 2).
func Erfcinv(a measure.Measurement) measure.Measurement {
	y := gomath.Erfcinv(a.Value())
	return measure.Propagate(y, -gomath.Exp(y*y)/twoOverSqrtPi, a)
}

// Bessel functions of integer order. For both kinds
// C'_n = (C_{n-1} - C_{n+1}) / 2, with C_{-1} = -C_1.

func J0(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.J0(v), -gomath.J1(v), a)
}

func J1(a measure.Measurement) measure.Measurement {
	return Jn(1, a)
}

// Jn returns the Bessel function of the first kind of order n.
func Jn(n int, a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Jn(n, v), besselDer(gomath.Jn, n, v), a)
}

func Y0(a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Y0(v), -gomath.Y1(v), a)
}

func Y1(a measure.Measurement) measure.Measurement {
	return Yn(1, a)
}

// Yn returns the Bessel function of the second kind of order n.
func Yn(n int, a measure.Measurement) measure.Measurement {
	v := a.Value()
	return measure.Propagate(gomath.Yn(n, v), besselDer(gomath.Yn, n, v), a)
}

// Hankel1 returns H⁽¹⁾_n(a) = J_n(a) + i·Y_n(a).
func Hankel1(n int, a measure.Measurement) measure.Complex {
	return hankel(n, a, 1)
}

// Hankel2 returns H⁽²⁾_n(a) = J_n(a) - i·Y_n(a).
func Hankel2(n int, a measure.Measurement) measure.Complex {
	return hankel(n, a, -1)
}

func hankel(n int, a measure.Measurement, kind float64) measure.Complex {
	v := a.Value()
	val := complex(gomath.Jn(n, v), kind*gomath.Yn(n, v))
	der := complex(besselDer(gomath.Jn, n, v), kind*besselDer(gomath.Yn, n, v))
	return measure.PropagateComplex(val, der, a)
}

func besselDer(c func(int, float64) float64, n int, x float64) float64 {
	return (c(n-1, x) - c(n+1, x)) / 2
}

// AiryAi returns the Airy function Ai on the real line. Its derivative is
// taken numerically.
func AiryAi(d measure.Differentiator, a measure.Measurement) measure.Measurement {
	return measure.Apply(d, airyAi, a)
}

func airyAi(x float64) float64 {
	return real(mathext.AiryAi(complex(x, 0)))
}

// Zeta returns the Hurwitz zeta function ζ(s, q) for s > 1 and q > 0,
// propagating the uncertainty of q. ∂ζ/∂q = -s·ζ(s+1, q).
func Zeta(s float64, q measure.Measurement) measure.Measurement {
	v := q.Value()
	return measure.Propagate(mathext.Zeta(s, v), -s*mathext.Zeta(s+1, v), q)
}
