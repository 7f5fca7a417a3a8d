package measure

// Sum returns the sum of ops. Cost is linear in the total number of
// derivative entries; shared variables are combined before squaring.
func Sum(ops ...Operand) Measurement {
	var val float64
	ders := make([]float64, len(ops))
	for i, op := range ops {
		val += Value(op)
		ders[i] = 1
	}
	return reduce(val, ders, ops)
}

// Prod returns the product of ops. ∂P/∂v_i is the product of every other
// factor, computed from prefix and suffix products so zero factors are
// handled without division.
func Prod(ops ...Operand) Measurement {
	n := len(ops)
	if n == 0 {
		return Exact(1)
	}

	vals := make([]float64, n)
	for i, op := range ops {
		vals[i] = Value(op)
	}

	// prefix[i] = v_0·…·v_{i-1}, suffix[i] = v_i·…·v_{n-1}
	prefix := make([]float64, n+1)
	suffix := make([]float64, n+1)
	prefix[0], suffix[n] = 1, 1
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] * vals[i]
	}
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] * vals[i]
	}

	ders := make([]float64, n)
	for i := range ders {
		ders[i] = prefix[i] * suffix[i+1]
	}
	return reduce(prefix[n], ders, ops)
}

// reduce keeps the single-operand path when only one measurement takes part,
// which keeps scaling by constants exact.
func reduce(val float64, ders []float64, ops []Operand) Measurement {
	only := -1
	for i, op := range ops {
		if isNumber(op) {
			continue
		}
		if only >= 0 {
			return propagate(val, ders, ops)
		}
		only = i
	}
	if only < 0 {
		return Exact(val)
	}
	return Propagate(val, ders[only], ops[only].measurement())
}
