// Package measure implements linear propagation of measurement uncertainty.
//
// A Measurement carries a nominal value, a standard uncertainty and a map of
// partial derivatives with respect to the independent variables it was
// computed from. Independent variables are identified by a Tag minted by an
// Allocator, so two quantities derived from the same input stay correlated:
//
//	alloc := measure.NewAllocator()
//	a, _ := alloc.New(2.0, 0.1)
//	d := measure.Propagate2(0, 1, -1, a, a) // a - a
//	d.Uncertainty()                          // exactly 0
//
// Functions that compute a value and its derivative(s) call Propagate,
// Propagate2 or PropagateN. Functions without a closed-form derivative go
// through Apply/ApplyN with a Differentiator.
package measure
