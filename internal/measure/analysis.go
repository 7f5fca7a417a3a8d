package measure

import "math"

// Component is the share of an uncertainty owed to one independent variable.
type Component struct {
	Tag          Tag
	Contribution float64
}

// Components breaks m's uncertainty down by independent variable, ordered by
// tag ordinal. The contributions add in quadrature to m.Uncertainty().
func Components(m Measurement) []Component {
	tags := m.der.Tags()
	out := make([]Component, 0, len(tags))
	for _, t := range tags {
		out = append(out, Component{Tag: t, Contribution: math.Abs(t.stddev * m.der[t])})
	}
	return out
}

// Covariance returns cov(a, b) = Σ σx²·∂a/∂x·∂b/∂x over shared variables.
func Covariance(a, b Measurement) float64 {
	small, large := a.der, b.der
	if len(small) > len(large) {
		small, large = large, small
	}

	var cov float64
	for _, t := range small.Tags() {
		db, ok := large[t]
		if !ok {
			continue
		}
		cov += t.stddev * t.stddev * small[t] * db
	}
	return cov
}

// Correlation returns the Pearson correlation of a and b. It is NaN when
// either has no uncertainty.
func Correlation(a, b Measurement) float64 {
	if a.err == 0 || b.err == 0 {
		return math.NaN()
	}
	return Covariance(a, b) / (a.err * b.err)
}

// StdScore returns how many standard uncertainties a lies from expected.
// A Measurement as expected is compared through a − expected, which keeps
// their correlation.
func StdScore(a Measurement, expected Operand) float64 {
	diff := Propagate2(a.val-Value(expected), 1, -1, a, expected)
	return diff.val / diff.err
}
