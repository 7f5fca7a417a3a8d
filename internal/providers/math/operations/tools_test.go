package operations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
)

func newArithmetic(t *testing.T) (*ArithmeticOps, *TrigOps, *common.Workspace) {
	t.Helper()
	ws := common.NewWorkspace()
	ops := common.NewMathOps(ws, nil, nil)
	return &ArithmeticOps{MathOps: ops}, &TrigOps{MathOps: ops}, ws
}

func TestArithmeticTools(t *testing.T) {
	arith, _, ws := newArithmetic(t)
	ctx := context.Background()

	_, _, err := ws.Create("a", 2.0, 0.1)
	require.NoError(t, err)
	_, _, err = ws.Create("b", 3.0, 0.2)
	require.NoError(t, err)

	t.Run("subtract same handle", func(t *testing.T) {
		res, err := arith.Subtract(ctx, map[string]interface{}{"a": "a", "b": "a"}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Equal(t, 0.0, res.Data["value"])
		assert.Equal(t, 0.0, res.Data["uncertainty"])
	})

	t.Run("add array", func(t *testing.T) {
		res, err := arith.Add(ctx, map[string]interface{}{"numbers": []interface{}{"a", "b", 1.0}, "name": "s"}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Equal(t, 6.0, res.Data["value"])
		assert.InDelta(t, 0.2236, res.Data["uncertainty"], 1e-4)

		s, ok := ws.Get("s")
		require.True(t, ok)
		assert.Equal(t, 6.0, s.Value())
	})

	t.Run("multiply array", func(t *testing.T) {
		res, err := arith.Multiply(ctx, map[string]interface{}{"numbers": []interface{}{"a", 4.0}}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Equal(t, 8.0, res.Data["value"])
		assert.InDelta(t, 0.4, res.Data["uncertainty"], 1e-15)
	})

	t.Run("power", func(t *testing.T) {
		res, err := arith.Power(ctx, map[string]interface{}{"base": "a", "exponent": 2.0}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.InDelta(t, 4.0, res.Data["value"], 1e-15)
		assert.InDelta(t, 0.4, res.Data["uncertainty"], 1e-15)
	})

	t.Run("sqrt of plain number", func(t *testing.T) {
		res, err := arith.Sqrt(ctx, map[string]interface{}{"x": 9.0}, nil)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Equal(t, 3.0, res.Data["value"])
		assert.Equal(t, 0.0, res.Data["uncertainty"])
	})

	t.Run("empty array", func(t *testing.T) {
		res, err := arith.Add(ctx, map[string]interface{}{"numbers": []interface{}{}}, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("unknown reference", func(t *testing.T) {
		res, err := arith.Log(ctx, map[string]interface{}{"x": "missing"}, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)
		require.NotNil(t, res.Error)
		assert.Contains(t, *res.Error, "unknown measurement")
	})
}

func TestTrigTools(t *testing.T) {
	_, trig, ws := newArithmetic(t)
	ctx := context.Background()

	_, _, err := ws.Create("theta", 0, 0.01)
	require.NoError(t, err)

	res, err := trig.Sin(ctx, map[string]interface{}{"x": "theta"}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 0.0, res.Data["value"])
	assert.InDelta(t, 0.01, res.Data["uncertainty"], 1e-15)

	res, err = trig.Atan2(ctx, map[string]interface{}{"y": 1.0, "x": 1.0}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 0.0, res.Data["uncertainty"])
}

func TestToolDefinitionsAreUnique(t *testing.T) {
	arith, trig, _ := newArithmetic(t)
	seen := make(map[string]bool)
	for _, tool := range append(arith.GetTools(), trig.GetTools()...) {
		assert.False(t, seen[tool.ID], tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Parameters)
	}
}
