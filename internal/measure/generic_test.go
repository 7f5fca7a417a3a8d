package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDiff returns canned derivatives and records how it was called.
type stubDiff struct {
	der   float64
	grad  []float64
	calls int
	point []float64
}

func (s *stubDiff) Derivative(f func(float64) float64, x float64) float64 {
	s.calls++
	return s.der
}

func (s *stubDiff) Gradient(f func([]float64) float64, x []float64) []float64 {
	s.calls++
	s.point = append([]float64(nil), x...)
	return s.grad
}

func TestApply(t *testing.T) {
	alloc := NewAllocator()
	a := alloc.MustNew(2.0, 0.1)

	t.Run("uses numeric derivative", func(t *testing.T) {
		d := &stubDiff{der: 4}
		out := Apply(d, func(x float64) float64 { return x * x }, a)
		assert.Equal(t, 4.0, out.Value())
		assert.InDelta(t, 0.4, out.Uncertainty(), 1e-15)
		assert.Equal(t, 1, d.calls)
	})

	t.Run("zero uncertainty skips differentiation", func(t *testing.T) {
		d := &stubDiff{der: math.NaN()}
		out := Apply(d, math.Sqrt, alloc.MustNew(-1, 0))
		assert.True(t, math.IsNaN(out.Value()))
		assert.Equal(t, 0.0, out.Uncertainty())
		assert.Zero(t, d.calls)
	})

	t.Run("underflowed uncertainty still differentiates", func(t *testing.T) {
		x := alloc.MustNew(1, 1e-170)
		tiny := Propagate(1e-170, 1e-170, x)
		require.Equal(t, 0.0, tiny.Uncertainty())

		d := &stubDiff{der: 1e200}
		out := Apply(d, func(v float64) float64 { return 1e200 * v }, tiny)
		assert.Equal(t, 1, d.calls)
		assert.InEpsilon(t, 1e30, out.Derivative(x), 1e-12)
	})

	t.Run("keeps correlation with its operand", func(t *testing.T) {
		d := &stubDiff{der: 1}
		id := Apply(d, func(x float64) float64 { return x }, a)
		diff := Propagate2(id.Value()-a.Value(), 1, -1, id, a)
		assert.Equal(t, 0.0, diff.Uncertainty())
	})
}

func TestApplyN(t *testing.T) {
	alloc := NewAllocator()
	x := alloc.MustNew(3.0, 0.2)
	y := alloc.MustNew(5.0, 0.1)

	hyp := func(v []float64) float64 { return math.Hypot(v[0], v[1]) }

	t.Run("gradient propagation", func(t *testing.T) {
		d := &stubDiff{grad: []float64{0.6, 0.8}}
		out, err := ApplyN(d, hyp, x, y)
		require.NoError(t, err)
		assert.InDelta(t, math.Hypot(3, 5), out.Value(), 1e-15)
		assert.InDelta(t, math.Hypot(0.6*0.2, 0.8*0.1), out.Uncertainty(), 1e-15)
		assert.Equal(t, []float64{3, 5}, d.point)
	})

	t.Run("repeated argument is correlated", func(t *testing.T) {
		d := &stubDiff{grad: []float64{1, -1}}
		out, err := ApplyN(d, func(v []float64) float64 { return v[0] - v[1] }, x, x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, out.Uncertainty())
	})

	t.Run("argument mutation does not leak", func(t *testing.T) {
		d := &stubDiff{grad: []float64{1}}
		_, err := ApplyN(d, func(v []float64) float64 { v[0] = 100; return 0 }, x)
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, d.point)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := ApplyN(&stubDiff{}, hyp)
		assert.ErrorIs(t, err, ErrNoOperands)
	})

	t.Run("bad gradient length", func(t *testing.T) {
		d := &stubDiff{grad: []float64{1}}
		_, err := ApplyN(d, hyp, x, y)
		assert.ErrorIs(t, err, ErrArity)
	})
}
