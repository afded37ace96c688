// File: real.go
// Role: NaN-guarded real number newtype used for all lengths, weights, and costs.
// AI-HINT (file):
//   - Construct via NewReal; a NaN input is rejected at the boundary, never later.
//   - Real has a total order (NaN is impossible once constructed), so Less/Add are safe.
package core

import (
	"errors"
	"math"
)

// ErrNaN indicates an attempt to construct a Real from a NaN float64.
var ErrNaN = errors.New("core: NaN is not a valid Real")

// Real is a non-NaN float64 with a total order. All lengths, weights, and
// tour costs in this package are Real so that comparisons and sums never
// have to special-case NaN.
type Real float64

// Zero is the additive identity.
const Zero Real = 0

// Inf is positive infinity, used as a "no path found yet" sentinel distance.
var Inf = Real(math.Inf(1))

// NewReal constructs a Real, rejecting NaN inputs.
//
// Complexity: O(1).
func NewReal(f float64) (Real, error) {
	if math.IsNaN(f) {
		return 0, ErrNaN
	}

	return Real(f), nil
}

// MustReal is NewReal but panics on NaN; intended for literal constants in
// tests and callers that already know the value is well-formed.
func MustReal(f float64) Real {
	r, err := NewReal(f)
	if err != nil {
		panic(err)
	}

	return r
}

// Add returns r+o. Since neither operand can be NaN and IEEE addition of two
// non-NaN floats is only NaN for opposite infinities, callers that mix
// +Inf and -Inf lengths are responsible for that edge case; this package
// never constructs negative lengths so it does not arise in practice.
func (r Real) Add(o Real) Real {
	return r + o
}

// Less reports whether r < o under the total order.
func (r Real) Less(o Real) bool {
	return r < o
}

// LessOrEqual reports whether r <= o.
func (r Real) LessOrEqual(o Real) bool {
	return r <= o
}

// F returns the underlying float64.
func (r Real) F() float64 {
	return float64(r)
}

// SumReals folds a slice of Real with +, returning Zero for an empty slice.
func SumReals(rs []Real) Real {
	var sum Real
	for _, r := range rs {
		sum = sum.Add(r)
	}

	return sum
}
