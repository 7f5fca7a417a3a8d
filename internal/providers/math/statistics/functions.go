package statistics

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

// Mean returns the arithmetic mean of ops. Shared dependencies between the
// operands are combined, so the mean of correlated inputs is not
// over-confident.
func Mean(ops ...measure.Operand) (measure.Measurement, error) {
	if len(ops) == 0 {
		return measure.Measurement{}, fmt.Errorf("mean: %w", measure.ErrEmpty)
	}

	n := float64(len(ops))
	ders := make([]float64, len(ops))
	for i := range ders {
		ders[i] = 1 / n
	}
	return measure.PropagateN(stat.Mean(measure.Values(ops), nil), ders, ops)
}

// WeightedMean returns the inverse-variance weighted mean of ms. Every
// input must carry a non-zero uncertainty.
func WeightedMean(ms ...measure.Measurement) (measure.Measurement, error) {
	if len(ms) == 0 {
		return measure.Measurement{}, fmt.Errorf("weighted mean: %w", measure.ErrEmpty)
	}

	vals := make([]float64, len(ms))
	weights := make([]float64, len(ms))
	for i, m := range ms {
		if m.Uncertainty() == 0 {
			return measure.Measurement{}, fmt.Errorf("weighted mean: input %d: %w", i, measure.ErrZeroUncertainty)
		}
		vals[i] = m.Value()
		weights[i] = 1 / (m.Uncertainty() * m.Uncertainty())
	}

	total := floats.Sum(weights)
	ders := make([]float64, len(ms))
	floats.ScaleTo(ders, 1/total, weights)

	return measure.PropagateN(stat.Mean(vals, weights), ders, measure.Operands(ms...))
}

// Sample summarizes repeated readings of one quantity as an independent
// measurement: the sample mean with its standard error.
func Sample(alloc *measure.Allocator, readings []float64) (measure.Measurement, error) {
	if len(readings) < 2 {
		return measure.Measurement{}, fmt.Errorf("sample needs at least 2 readings, got %d", len(readings))
	}
	mean, std := stat.MeanStdDev(readings, nil)
	return alloc.New(mean, std/gomath.Sqrt(float64(len(readings))))
}
