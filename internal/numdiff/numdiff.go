// Package numdiff provides finite-difference derivatives for functions that
// have no closed-form derivative, built on gonum's diff/fd.
package numdiff

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

// Config selects the stencil and step size. A zero Step uses the formula's
// default step.
type Config struct {
	Formula string
	Step    float64
}

// DefaultConfig returns a central-difference configuration.
func DefaultConfig() Config {
	return Config{Formula: "central"}
}

// FiniteDifference implements measure.Differentiator.
type FiniteDifference struct {
	settings fd.Settings
}

var _ measure.Differentiator = (*FiniteDifference)(nil)

// New returns a differentiator for cfg.
func New(cfg Config) (*FiniteDifference, error) {
	formula, err := parseFormula(cfg.Formula)
	if err != nil {
		return nil, err
	}
	if cfg.Step < 0 {
		return nil, fmt.Errorf("numdiff: negative step %g", cfg.Step)
	}
	return &FiniteDifference{
		settings: fd.Settings{Formula: formula, Step: cfg.Step},
	}, nil
}

// NewDefault returns a central-difference differentiator.
func NewDefault() *FiniteDifference {
	d, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return d
}

// Derivative returns f'(x).
func (d *FiniteDifference) Derivative(f func(float64) float64, x float64) float64 {
	s := d.settings
	return fd.Derivative(f, x, &s)
}

// Gradient returns ∇f(x). x is not modified.
func (d *FiniteDifference) Gradient(f func([]float64) float64, x []float64) []float64 {
	s := d.settings
	point := append([]float64(nil), x...)
	return fd.Gradient(nil, f, point, &s)
}

func parseFormula(name string) (fd.Formula, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "central":
		return fd.Central, nil
	case "forward":
		return fd.Forward, nil
	case "backward":
		return fd.Backward, nil
	default:
		return fd.Formula{}, fmt.Errorf("numdiff: unknown formula %q", name)
	}
}
