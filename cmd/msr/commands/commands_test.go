package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budget = `inputs:
  - name: length
    value: 2.0
    uncertainty: 0.01
  - name: width
    value: 3.0
    uncertainty: 0.02
  - name: scale
    value: 1.5
    uncertainty: 0
`

func init() {
	color.NoColor = true
}

func writeBudget(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(budget), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "eval")
}

func TestRootRejectsUnknownFlags(t *testing.T) {
	_, _, err := run(t, "--goal", "x")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", writeBudget(t))
	require.NoError(t, err)
	assert.Contains(t, out, "length")
	assert.Contains(t, out, "scale is exact")
	assert.Contains(t, out, "3 inputs")
}

func TestCheckMissingFile(t *testing.T) {
	_, errOut, err := run(t, "check", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, errOut, "cannot load budget")
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", writeBudget(t), "--to", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[inputs]]")
	assert.Contains(t, out, "width")

	_, _, err = run(t, "convert", writeBudget(t), "--to", "xml")
	assert.Error(t, err)
}

func TestEvalProduct(t *testing.T) {
	out, _, err := run(t, "eval", writeBudget(t), "math.multiply", "numbers=length,width")
	require.NoError(t, err)

	// 6 ± sqrt((3·0.01)² + (2·0.02)²) = 6 ± 0.05
	assert.Contains(t, out, "math.multiply = 6 ± 0.05")
	assert.Contains(t, out, "SHARE")
	assert.Contains(t, out, "36.00%")
	assert.Contains(t, out, "64.00%")
}

func TestEvalJSON(t *testing.T) {
	out, _, err := run(t, "eval", writeBudget(t), "math.power", "base=length", "exponent=2", "--json")
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(out), &data))
	assert.InDelta(t, 4.0, data["value"], 1e-12)
	assert.InDelta(t, 0.04, data["uncertainty"], 1e-12)
}

func TestEvalScalarResult(t *testing.T) {
	out, _, err := run(t, "eval", writeBudget(t), "math.correlation", "a=length", "b=length")
	require.NoError(t, err)
	assert.Equal(t, "result: 1", strings.TrimSpace(out))
}

func TestEvalFailures(t *testing.T) {
	path := writeBudget(t)

	_, errOut, err := run(t, "eval", path, "math.sqrt", "x=missing")
	assert.Error(t, err)
	assert.Contains(t, errOut, "math.sqrt failed")

	_, errOut, err = run(t, "eval", path, "math.sqrt", "novalue")
	assert.Error(t, err)
	assert.Contains(t, errOut, "invalid parameter")

	_, _, err = run(t, "eval", path, "math.sqrt", "x=length", "--formula", "sideways")
	assert.Error(t, err)
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"x=2.5", "name=t", "numbers=a, 1,b", "flag=true"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, params["x"])
	assert.Equal(t, "t", params["name"])
	assert.Equal(t, []interface{}{"a", 1.0, "b"}, params["numbers"])
	assert.Equal(t, true, params["flag"])
}
