package advanced

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mathext"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/numdiff"
)

func TestSpecialDerivativesMatchNumeric(t *testing.T) {
	diff := numdiff.NewDefault()
	alloc := measure.NewAllocator()

	lgamma := func(v float64) float64 {
		lg, _ := gomath.Lgamma(v)
		return lg
	}

	tests := []struct {
		name  string
		fn    func(measure.Measurement) measure.Measurement
		plain func(float64) float64
		x     float64
	}{
		{"gamma", Gamma, gomath.Gamma, 3.5},
		{"lgamma", Lgamma, lgamma, 7.2},
		{"erf", Erf, gomath.Erf, 0.6},
		{"erfc", Erfc, gomath.Erfc, 0.6},
		{"erfinv", Erfinv, gomath.Erfinv, 0.3},
		{"erfcinv", Erfcinv, gomath.Erfcinv, 0.7},
		{"j0", J0, gomath.J0, 2.3},
		{"j1", J1, gomath.J1, 2.3},
		{"y0", Y0, gomath.Y0, 2.3},
		{"y1", Y1, gomath.Y1, 2.3},
		{"j3", func(m measure.Measurement) measure.Measurement { return Jn(3, m) },
			func(v float64) float64 { return gomath.Jn(3, v) }, 4.1},
		{"y2", func(m measure.Measurement) measure.Measurement { return Yn(2, m) },
			func(v float64) float64 { return gomath.Yn(2, v) }, 4.1},
		{"zeta", func(m measure.Measurement) measure.Measurement { return Zeta(3, m) },
			func(v float64) float64 { return mathext.Zeta(3, v) }, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alloc.MustNew(tt.x, 0.01)
			analytic := tt.fn(a)
			numeric := measure.Apply(diff, tt.plain, a)

			assert.InEpsilon(t, numeric.Value(), analytic.Value(), 1e-14)
			assert.InDelta(t, numeric.Derivative(a), analytic.Derivative(a), 1e-6*gomath.Max(1, gomath.Abs(analytic.Derivative(a))))
		})
	}
}

func TestJ0DerivativeAtOrigin(t *testing.T) {
	a := measure.NewAllocator().MustNew(0, 0.1)
	assert.Equal(t, 1.0, J0(a).Value())
	assert.Equal(t, 0.0, J0(a).Uncertainty())
	assert.InDelta(t, 0.05, J1(a).Uncertainty(), 1e-15)
}

func TestBetaMatchesGamma(t *testing.T) {
	alloc := measure.NewAllocator()
	a := alloc.MustNew(2.5, 0.1)
	b := alloc.MustNew(1.5, 0.05)

	beta := Beta(a, b)
	want := gomath.Gamma(2.5) * gomath.Gamma(1.5) / gomath.Gamma(4)
	assert.InEpsilon(t, want, beta.Value(), 1e-12)

	diff := numdiff.NewDefault()
	numeric, err := measure.ApplyN(diff, func(x []float64) float64 { return mathext.Beta(x[0], x[1]) }, a, b)
	assert.NoError(t, err)
	assert.InDelta(t, numeric.Derivative(a), beta.Derivative(a), 1e-6)
	assert.InDelta(t, numeric.Derivative(b), beta.Derivative(b), 1e-6)

	lbeta := Lbeta(a, b)
	assert.InEpsilon(t, gomath.Log(want), lbeta.Value(), 1e-12)
	assert.InEpsilon(t, beta.Derivative(a)/beta.Value(), lbeta.Derivative(a), 1e-10)
}

func TestBetaWithConstantArgument(t *testing.T) {
	a := measure.NewAllocator().MustNew(2, 0.1)
	r := Beta(a, measure.Number(3))
	assert.InEpsilon(t, 1.0/12, r.Value(), 1e-12)
	assert.InEpsilon(t, gomath.Abs(r.Derivative(a))*0.1, r.Uncertainty(), 1e-12)
}

func TestHankelParts(t *testing.T) {
	a := measure.NewAllocator().MustNew(1.7, 0.02)

	h1 := Hankel1(2, a)
	h2 := Hankel2(2, a)

	assert.Equal(t, gomath.Jn(2, 1.7), h1.Re.Value())
	assert.Equal(t, gomath.Yn(2, 1.7), h1.Im.Value())
	assert.Equal(t, h1.Re.Value(), h2.Re.Value())
	assert.Equal(t, -h1.Im.Value(), h2.Im.Value())
	assert.Equal(t, h1.Re.Uncertainty(), Jn(2, a).Uncertainty())
	assert.Equal(t, h1.Im.Uncertainty(), Yn(2, a).Uncertainty())
	assert.Equal(t, h1.Im.Uncertainty(), h2.Im.Uncertainty())

	// Both parts depend on the same input.
	assert.True(t, h1.Re.DependsOn(a))
	assert.True(t, h1.Im.DependsOn(a))
}

func TestNumericAdapterFunctions(t *testing.T) {
	diff := numdiff.NewDefault()
	a := measure.NewAllocator().MustNew(0, 0.1)

	ai := AiryAi(diff, a)
	assert.InDelta(t, 0.3550280538878172, ai.Value(), 1e-12)
	// Ai'(0) = -0.2588194037928068
	assert.InDelta(t, 0.02588194037928068, ai.Uncertainty(), 1e-8)

	b := measure.NewAllocator().MustNew(1, 0.1)
	psi := Digamma(diff, b)
	assert.InDelta(t, -0.5772156649015329, psi.Value(), 1e-10)
	// ψ'(1) = π²/6
	assert.InDelta(t, gomath.Pi*gomath.Pi/60, psi.Uncertainty(), 1e-7)
}

func TestZetaValue(t *testing.T) {
	q := measure.NewAllocator().MustNew(1, 0.01)
	z := Zeta(2, q)
	assert.InDelta(t, gomath.Pi*gomath.Pi/6, z.Value(), 1e-12)
	// ∂ζ(2,q)/∂q at q=1 is -2ζ(3)
	assert.InDelta(t, 2*1.2020569031595942*0.01, z.Uncertainty(), 1e-10)
}
