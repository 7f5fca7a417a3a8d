// Package math implements the "math" service provider: measurement
// arithmetic whose results carry first-order propagated uncertainties.
//
// Tools operate on a shared workspace. Operands are plain numbers (exact)
// or references to stored measurements by handle (msr_...) or name; every
// result is stored and returned as {id, value, uncertainty}, so results
// can feed later calls and keep their correlations.
//
// Modules:
//   - utilities: measurement store, budgets, constants, unit conversion
//   - operations: arithmetic, rounding, trigonometric and hyperbolic functions
//   - advanced: special functions and numerically differentiated functions
//   - statistics: means, covariance, correlation, uncertainty components
//
// Example Usage:
//
//	p := math.NewProvider(common.NewWorkspace(), numdiff.NewDefault(), logger, metrics)
//	p.Execute(ctx, "math.measurement", map[string]interface{}{"value": 2.0, "uncertainty": 0.1, "name": "a"}, nil)
//	p.Execute(ctx, "math.power", map[string]interface{}{"base": "a", "exponent": 2.0}, nil)
package math
