package advanced

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/numdiff"
)

func TestEvaluate(t *testing.T) {
	diff := numdiff.NewDefault()
	alloc := measure.NewAllocator()
	x := alloc.MustNew(0, 0.1)

	t.Run("logistic", func(t *testing.T) {
		m, err := Evaluate(diff, "logistic", x)
		require.NoError(t, err)
		assert.Equal(t, 0.5, m.Value())
		// σ'(0) = 1/4
		assert.InDelta(t, 0.025, m.Uncertainty(), 1e-9)
	})

	t.Run("norm keeps correlation", func(t *testing.T) {
		a := alloc.MustNew(3, 0.1)
		b := alloc.MustNew(4, 0.2)
		m, err := Evaluate(diff, "norm", a, b)
		require.NoError(t, err)
		assert.InDelta(t, 5, m.Value(), 1e-12)
		want := gomath.Hypot(0.6*0.1, 0.8*0.2)
		assert.InDelta(t, want, m.Uncertainty(), 1e-8)
	})

	t.Run("lerp arity", func(t *testing.T) {
		_, err := Evaluate(diff, "lerp", x)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Evaluate(diff, "nope", x)
		assert.Error(t, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := Evaluate(diff, "norm")
		assert.ErrorIs(t, err, measure.ErrNoOperands)
	})
}

func TestApplyTool(t *testing.T) {
	sp, ws := newSpecial(t)
	_, _, err := ws.Create("x", 1, 0.1)
	require.NoError(t, err)

	res, err := sp.Apply(context.Background(), map[string]interface{}{
		"function": "lerp",
		"args":     []interface{}{0.0, 10.0, "x"},
		"name":     "mid",
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 10.0, res.Data["value"], 1e-12)
	assert.InDelta(t, 1.0, res.Data["uncertainty"], 1e-8)

	_, ok := ws.Get("mid")
	assert.True(t, ok)
}
