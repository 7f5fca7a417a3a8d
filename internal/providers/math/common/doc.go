// Package common holds what the math tool modules share: parameter
// extraction, result construction, and the Workspace of named measurements.
//
// Tool parameters that accept an operand take either a plain number or the
// handle (or name) of a measurement stored in the Workspace. Every result
// that produces a measurement stores it and returns its handle:
//
//	{"id": "msr_01J...", "value": 4, "uncertainty": 0.4}
//
// Example Usage:
//
//	ops := common.NewMathOps(common.NewWorkspace(), numdiff.NewDefault(), logger)
//	arithmetic := &operations.ArithmeticOps{MathOps: ops}
//	result, err := arithmetic.Add(ctx, params, appCtx)
package common
