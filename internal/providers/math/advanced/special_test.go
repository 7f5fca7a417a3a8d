package advanced

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/numdiff"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
)

func newSpecial(t *testing.T) (*SpecialOps, *common.Workspace) {
	t.Helper()
	ws := common.NewWorkspace()
	return &SpecialOps{MathOps: common.NewMathOps(ws, numdiff.NewDefault(), nil)}, ws
}

func TestSpecialTools(t *testing.T) {
	sp, ws := newSpecial(t)
	ctx := context.Background()

	_, _, err := ws.Create("x", 1.7, 0.02)
	require.NoError(t, err)

	t.Run("gamma", func(t *testing.T) {
		res, err := sp.Gamma(ctx, map[string]interface{}{"x": 5.0}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.InDelta(t, 24.0, res.Data["value"], 1e-12)
	})

	t.Run("hankel stores both parts", func(t *testing.T) {
		res, err := sp.Hankel1(ctx, map[string]interface{}{"n": 1.0, "x": "x", "name": "h"}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Contains(t, res.Data, "re")
		assert.Contains(t, res.Data, "im")

		_, ok := ws.Get("h.re")
		assert.True(t, ok)
		_, ok = ws.Get("h.im")
		assert.True(t, ok)
	})

	t.Run("fractional order", func(t *testing.T) {
		res, err := sp.BesselJ(ctx, map[string]interface{}{"n": 1.5, "x": "x"}, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("zeta domain", func(t *testing.T) {
		res, err := sp.Zeta(ctx, map[string]interface{}{"s": 1.0, "q": 1.0}, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)

		res, err = sp.Zeta(ctx, map[string]interface{}{"s": 2.0, "q": "x"}, nil)
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("airy uses numeric derivative", func(t *testing.T) {
		res, err := sp.AiryAi(ctx, map[string]interface{}{"x": "x"}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Greater(t, res.Data["uncertainty"], 0.0)
	})
}
