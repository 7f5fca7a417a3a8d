package math

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/measurements/internal/numdiff"
	"github.com/GriffinCanCode/measurements/internal/providers/math/common"
	"github.com/GriffinCanCode/measurements/internal/types"
)

func newProvider(t *testing.T) (*Provider, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	return NewProvider(common.NewWorkspace(), numdiff.NewDefault(), nil, metrics), reg
}

func toolCalls(t *testing.T, reg *prometheus.Registry, tool, status string) float64 {
	t.Helper()
	v, _ := monitoring.Value(reg, "measurements_tool_calls_total", "tool", tool, "status", status)
	return v
}

func exec(t *testing.T, p *Provider, tool string, params map[string]interface{}) *types.Result {
	t.Helper()
	res, err := p.Execute(context.Background(), tool, params, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestEveryToolIsRouted(t *testing.T) {
	p, _ := newProvider(t)

	def := p.Definition()
	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
		assert.True(t, strings.HasPrefix(tool.ID, "math."), tool.ID)

		res := exec(t, p, tool.ID, nil)
		if !res.Success {
			require.NotNil(t, res.Error)
			assert.NotContains(t, *res.Error, "unknown tool", tool.ID)
		}
	}
}

func TestUnknownTool(t *testing.T) {
	p, reg := newProvider(t)

	res := exec(t, p, "math.nope", nil)
	assert.False(t, res.Success)
	assert.Equal(t, 1.0, toolCalls(t, reg, "unknown", "failure"))
}

func TestPropagationScenario(t *testing.T) {
	p, reg := newProvider(t)

	res := exec(t, p, "math.measurement", map[string]interface{}{"value": 2.0, "uncertainty": 0.1, "name": "a"})
	require.True(t, res.Success)

	res = exec(t, p, "math.power", map[string]interface{}{"base": "a", "exponent": 2.0})
	require.True(t, res.Success)
	assert.InDelta(t, 4.0, res.Data["value"], 1e-15)
	assert.InDelta(t, 0.4, res.Data["uncertainty"], 1e-15)

	res = exec(t, p, "math.sqrt", map[string]interface{}{"x": "a"})
	require.True(t, res.Success)
	assert.InDelta(t, 1.41421, res.Data["value"], 1e-5)
	assert.InDelta(t, 0.03536, res.Data["uncertainty"], 1e-5)

	res = exec(t, p, "math.subtract", map[string]interface{}{"a": "a", "b": "a"})
	require.True(t, res.Success)
	assert.Equal(t, 0.0, res.Data["value"])
	assert.Equal(t, 0.0, res.Data["uncertainty"])

	exec(t, p, "math.measurement", map[string]interface{}{"value": 3.0, "uncertainty": 0.2, "name": "b"})
	exec(t, p, "math.measurement", map[string]interface{}{"value": 5.0, "uncertainty": 0.1, "name": "c"})
	res = exec(t, p, "math.add", map[string]interface{}{"numbers": []interface{}{"b", "c"}})
	require.True(t, res.Success)
	assert.InDelta(t, 0.2236, res.Data["uncertainty"], 1e-4)

	size, ok := monitoring.Value(reg, "measurements_workspace_size")
	require.True(t, ok)
	assert.Equal(t, 7.0, size)
	assert.Equal(t, 1.0, toolCalls(t, reg, "math.power", "success"))
}

func TestDerivedResultsChain(t *testing.T) {
	p, _ := newProvider(t)

	exec(t, p, "math.measurement", map[string]interface{}{"value": 0.5, "uncertainty": 0.01, "name": "x"})
	exec(t, p, "math.sin", map[string]interface{}{"x": "x", "name": "s"})
	exec(t, p, "math.cos", map[string]interface{}{"x": "x", "name": "c"})
	exec(t, p, "math.multiply", map[string]interface{}{"numbers": []interface{}{"s", "s"}, "name": "s2"})
	exec(t, p, "math.multiply", map[string]interface{}{"numbers": []interface{}{"c", "c"}, "name": "c2"})

	res := exec(t, p, "math.add", map[string]interface{}{"numbers": []interface{}{"s2", "c2"}})
	require.True(t, res.Success)
	assert.InDelta(t, 1.0, res.Data["value"], 1e-15)
	assert.InDelta(t, 0.0, res.Data["uncertainty"], 1e-15)

	res = exec(t, p, "math.correlation", map[string]interface{}{"a": "s", "b": "c"})
	require.True(t, res.Success)
	assert.InDelta(t, -1.0, res.Data["result"], 1e-12)
}
