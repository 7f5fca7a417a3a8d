package measure

import "math"

// Complex is a complex quantity whose parts are both measurements. The parts
// share the independent variables of the operand they came from, so they
// stay correlated with each other.
type Complex struct {
	Re Measurement
	Im Measurement
}

// PropagateComplex builds the result of a complex-valued function of one
// real measurement by propagating the real and imaginary parts separately.
func PropagateComplex(val, der complex128, a Measurement) Complex {
	return Complex{
		Re: Propagate(real(val), real(der), a),
		Im: Propagate(imag(val), imag(der), a),
	}
}

// Value returns the nominal complex value.
func (c Complex) Value() complex128 {
	return complex(c.Re.val, c.Im.val)
}

func (c Complex) String() string {
	return "(" + c.Re.String() + ") + (" + c.Im.String() + ")i"
}

// Abs returns the modulus |c|.
func (c Complex) Abs() Measurement {
	re, im := c.Re.val, c.Im.val
	r := math.Hypot(re, im)
	if r == 0 {
		// not differentiable at the origin
		return Propagate2(0, 0, 0, c.Re, c.Im)
	}
	return Propagate2(r, re/r, im/r, c.Re, c.Im)
}
