package measure

import "errors"

var (
	// ErrArity is returned when the number of derivatives does not match
	// the number of operands.
	ErrArity = errors.New("measure: derivative and operand counts differ")

	// ErrNoOperands is returned when a multi-operand call receives nothing.
	ErrNoOperands = errors.New("measure: no operands")

	// ErrNegativeUncertainty is returned when an independent measurement is
	// created with a negative standard uncertainty.
	ErrNegativeUncertainty = errors.New("measure: negative uncertainty")

	// ErrInvalidUncertainty is returned for a NaN or infinite uncertainty.
	ErrInvalidUncertainty = errors.New("measure: uncertainty is not finite")

	// ErrEmpty is returned by reductions over an empty collection that have
	// no neutral element.
	ErrEmpty = errors.New("measure: empty collection")

	// ErrZeroUncertainty is returned where an inverse-variance weight would
	// be infinite.
	ErrZeroUncertainty = errors.New("measure: zero uncertainty")
)
