package utilities

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/measurements/internal/measure"
)

// Unit is an affine map to its dimension's base unit:
// base = value·Scale + Offset.
type Unit struct {
	Dimension string
	Scale     float64
	Offset    float64
}

var units = map[string]Unit{
	"m":  {"length", 1, 0},
	"km": {"length", 1000, 0},
	"cm": {"length", 0.01, 0},
	"mm": {"length", 0.001, 0},
	"in": {"length", 0.0254, 0},
	"ft": {"length", 0.3048, 0},
	"yd": {"length", 0.9144, 0},
	"mi": {"length", 1609.344, 0},

	"kg": {"mass", 1, 0},
	"g":  {"mass", 0.001, 0},
	"lb": {"mass", 0.45359237, 0},
	"oz": {"mass", 0.028349523125, 0},

	"s":   {"time", 1, 0},
	"min": {"time", 60, 0},
	"h":   {"time", 3600, 0},

	"K": {"temperature", 1, 0},
	"C": {"temperature", 1, 273.15},
	"F": {"temperature", 5.0 / 9, 273.15 - 32*5.0/9},

	"rad": {"angle", 1, 0},
	"deg": {"angle", degree, 0},
}

const degree = gomath.Pi / 180

// LookupUnit returns a unit by symbol. Symbols are case-sensitive.
func LookupUnit(symbol string) (Unit, bool) {
	u, ok := units[symbol]
	return u, ok
}

// Units lists the known unit symbols.
func Units() []string {
	out := make([]string, 0, len(units))
	for k := range units {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Convert expresses a in another unit of the same dimension. The
// conversion is affine, so the uncertainty scales by the ratio of the
// unit sizes and the offset does not affect it.
func Convert(a measure.Measurement, from, to string) (measure.Measurement, error) {
	src, ok := units[from]
	if !ok {
		return measure.Measurement{}, fmt.Errorf("unknown unit %q", from)
	}
	dst, ok := units[to]
	if !ok {
		return measure.Measurement{}, fmt.Errorf("unknown unit %q", to)
	}
	if src.Dimension != dst.Dimension {
		return measure.Measurement{}, fmt.Errorf("cannot convert %s (%s) to %s (%s)",
			from, src.Dimension, to, dst.Dimension)
	}

	ratio := src.Scale / dst.Scale
	val := (a.Value()*src.Scale + src.Offset - dst.Offset) / dst.Scale
	return measure.Propagate(val, ratio, a), nil
}
