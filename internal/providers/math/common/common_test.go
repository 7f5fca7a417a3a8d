package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

func newOps(t *testing.T) *MathOps {
	t.Helper()
	return NewMathOps(NewWorkspace(), nil, nil)
}

func TestGetNumber(t *testing.T) {
	params := map[string]interface{}{"f": 1.5, "i": 3, "s": "x"}

	v, ok := GetNumber(params, "f")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	v, ok = GetNumber(params, "i")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = GetNumber(params, "s")
	assert.False(t, ok)
	_, ok = GetNumber(params, "missing")
	assert.False(t, ok)
}

func TestGetNumbers(t *testing.T) {
	nums, ok := GetNumbers(map[string]interface{}{"n": []interface{}{1.0, 2, 3.5}}, "n")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3.5}, nums)

	_, ok = GetNumbers(map[string]interface{}{"n": []interface{}{1.0, "two"}}, "n")
	assert.False(t, ok)
}

func TestOperandResolution(t *testing.T) {
	ops := newOps(t)
	handle, m, err := ops.Workspace.Create("a", 2, 0.1)
	require.NoError(t, err)

	params := map[string]interface{}{
		"num":    4.0,
		"handle": handle.String(),
		"name":   "a",
		"bad":    true,
		"ghost":  "nope",
		"list":   []interface{}{1.0, "a"},
	}

	op, err := ops.Operand(params, "num")
	require.NoError(t, err)
	assert.Equal(t, measure.Number(4), op)

	got, err := ops.Measurement(params, "handle")
	require.NoError(t, err)
	assert.Equal(t, m.Tag(), got.Tag())

	got, err = ops.Measurement(params, "name")
	require.NoError(t, err)
	assert.Equal(t, m.Tag(), got.Tag())

	_, err = ops.Operand(params, "bad")
	assert.Error(t, err)
	_, err = ops.Operand(params, "ghost")
	assert.ErrorContains(t, err, "unknown measurement")
	_, err = ops.Operand(params, "absent")
	assert.ErrorContains(t, err, "required")

	list, err := ops.Measurements(params, "list")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1.0, list[0].Value())
	assert.Equal(t, m.Tag(), list[1].Tag())
}

func TestStoreBindsName(t *testing.T) {
	ops := newOps(t)

	res, err := ops.Store(map[string]interface{}{"name": "r"}, measure.Exact(3))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 3.0, res.Data["value"])
	assert.Equal(t, 0.0, res.Data["uncertainty"])

	m, ok := ops.Workspace.Get("r")
	require.True(t, ok)
	assert.Equal(t, 3.0, m.Value())
}

func TestStoreComplex(t *testing.T) {
	ops := newOps(t)
	a := ops.Workspace.Allocator().MustNew(1, 0.1)
	c := measure.PropagateComplex(complex(2, 3), complex(1, -1), a)

	res, err := ops.StoreComplex(map[string]interface{}{"name": "z"}, c)
	require.NoError(t, err)
	require.True(t, res.Success)

	re, ok := ops.Workspace.Get("z.re")
	require.True(t, ok)
	assert.Equal(t, 2.0, re.Value())
	im, ok := ops.Workspace.Get("z.im")
	require.True(t, ok)
	assert.Equal(t, 3.0, im.Value())
}

func TestUnaryAndBinaryFailures(t *testing.T) {
	ops := newOps(t)
	identity := func(m measure.Measurement) measure.Measurement { return m }
	first := func(a, b measure.Operand) measure.Measurement { return measure.Resolve(a) }

	res, err := ops.Unary(map[string]interface{}{}, "x", identity)
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)

	res, err = ops.Binary(map[string]interface{}{"a": 1.0}, "a", "b", first)
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber(1, "x"))
	assert.Error(t, ValidateNumber(math.NaN(), "x"))
	assert.Error(t, ValidateNumber(math.Inf(1), "x"))
}
