package measure

import (
	"cmp"
	"slices"
)

// Derivatives maps independent variables to partial derivatives. An absent
// key and an explicit zero mean the same thing.
type Derivatives map[Tag]float64

// Get returns the partial derivative with respect to t, or 0.
func (d Derivatives) Get(t Tag) float64 {
	return d[t]
}

// Tags returns the keys ordered by tag ordinal.
func (d Derivatives) Tags() []Tag {
	tags := make([]Tag, 0, len(d))
	for t := range d {
		tags = append(tags, t)
	}
	slices.SortFunc(tags, func(x, y Tag) int { return cmp.Compare(x.id, y.id) })
	return tags
}

// clone returns a copy that shares no storage with d.
func (d Derivatives) clone() Derivatives {
	out := make(Derivatives, len(d))
	for t, v := range d {
		out[t] = v
	}
	return out
}

// uncertain reports whether any entry names a variable with non-zero stddev.
func (d Derivatives) uncertain() bool {
	for t := range d {
		if t.stddev != 0 {
			return true
		}
	}
	return false
}

// variance sums (stddev·∂)² in tag order so the result does not depend on
// map iteration order.
func (d Derivatives) variance() float64 {
	var sum float64
	for _, t := range d.Tags() {
		s := t.stddev * d[t]
		sum += s * s
	}
	return sum
}
