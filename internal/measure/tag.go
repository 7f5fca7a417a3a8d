package measure

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Tag identifies an independent variable. Two tags are equal only if they
// were minted by the same allocation; the stddev is fixed at that moment.
type Tag struct {
	id     uint64
	stddev float64
}

// derived is the identity of every measurement produced by an operation.
var derived = Tag{}

// ID returns the tag ordinal. Zero means "derived".
func (t Tag) ID() uint64 { return t.id }

// Stddev returns the standard uncertainty of the variable this tag names.
func (t Tag) Stddev() float64 { return t.stddev }

// IsDerived reports whether t is the derived sentinel.
func (t Tag) IsDerived() bool { return t.id == 0 }

func (t Tag) String() string {
	if t.IsDerived() {
		return "tag(derived)"
	}
	return fmt.Sprintf("tag(%d)", t.id)
}

// Allocator mints tags for independent measurements. It is safe for
// concurrent use; ordinals are never reused within one allocator.
//
// Measurements from different allocators must not be combined: their
// ordinals overlap.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator returns an allocator whose first tag has ordinal 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

func (a *Allocator) mint(stddev float64) Tag {
	return Tag{id: a.next.Add(1), stddev: stddev}
}

// Issued returns how many tags have been minted so far.
func (a *Allocator) Issued() uint64 {
	return a.next.Load()
}

// New creates an independent measurement. The uncertainty must be finite
// and non-negative.
func (a *Allocator) New(val, err float64) (Measurement, error) {
	if err < 0 {
		return Measurement{}, fmt.Errorf("new measurement %g±%g: %w", val, err, ErrNegativeUncertainty)
	}
	if math.IsNaN(err) || math.IsInf(err, 0) {
		return Measurement{}, fmt.Errorf("new measurement %g±%g: %w", val, err, ErrInvalidUncertainty)
	}
	tag := a.mint(err)
	return Measurement{
		val: val,
		err: err,
		tag: tag,
		der: Derivatives{tag: 1},
	}, nil
}

// MustNew is like New but panics on an invalid uncertainty.
func (a *Allocator) MustNew(val, err float64) Measurement {
	m, e := a.New(val, err)
	if e != nil {
		panic(e)
	}
	return m
}
