// Package interval implements real interval arithmetic with maximum
// accuracy over float64 endpoints.
//
// An Interval is a closed set [inf, sup] of real numbers. Every operation
// returns an interval guaranteed to contain the exact mathematical result
// for every choice of points in the operands: each endpoint is computed
// exactly and then rounded outward, toward negative infinity for the lower
// endpoint and toward positive infinity for the upper one.
//
// Besides proper intervals there are two distinguished values: the empty
// interval, and the undefined interval, which plays the role NaN plays for
// floats. Operations with no natural closed-interval result, such as the
// reciprocal of an interval containing zero or the union of disjoint
// intervals, return the undefined interval; operations that are simply not
// defined for a state, such as arithmetic on the empty interval, panic
// with ErrEmptyInterval or ErrUndefinedInterval.
//
// Endpoints may be given as float64, int, or rational-literal strings like
// "0.1", "+3e-1" or "5/25". Numeric endpoints pass through exactly; string
// endpoints are parsed as exact rationals and their final division is
// rounded outward (see Fraction.Float64), so New("0.1", "0.1") is the
// tightest float64 interval containing 1/10.
package interval

import "math"

// form describes which of the three states an Interval is in.
type form uint8

const (
	proper form = iota
	empty
	undef
)

// An Interval is an immutable closed real interval. The zero value is the
// singleton [0, 0].
type Interval struct {
	inf, sup float64
	form     form
}

// Empty returns the empty interval.
func Empty() Interval {
	return Interval{form: empty}
}

// Undefined returns the undefined interval.
func Undefined() Interval {
	return Interval{inf: math.NaN(), sup: math.NaN(), form: undef}
}

// New returns the interval [lo, hi]. Each endpoint may be a float64 (or
// other numeric type), or a rational-literal string; see the package
// documentation for the accepted forms. Endpoints are swapped if given in
// the wrong order. A NaN or infinite endpoint yields the undefined
// interval; a malformed or overflowing literal is an error.
func New(lo, hi any) (Interval, error) {
	a, b, err := parseLimits(lo, hi)
	if err != nil {
		return Interval{}, err
	}
	return fromLimits(a, b), nil
}

// Single returns the singleton interval [v, v]. A string literal whose
// value is not a float64 yields the tightest enclosing interval, one ulp
// wide.
func Single(v any) (Interval, error) {
	return New(v, v)
}

// MustNew is like New but panics on error. It simplifies the declaration
// of interval constants from literals.
func MustNew(lo, hi any) Interval {
	x, err := New(lo, hi)
	if err != nil {
		panic(err)
	}
	return x
}

// MustSingle is like Single but panics on error.
func MustSingle(v any) Interval {
	x, err := Single(v)
	if err != nil {
		panic(err)
	}
	return x
}

// fromLimits builds a proper interval from resolved endpoints, promoting
// non-finite endpoints to the undefined interval.
func fromLimits(a, b float64) Interval {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Undefined()
	}
	return Interval{inf: math.Min(a, b), sup: math.Max(a, b)}
}

// promote converts an operand of a binary operation to an Interval,
// wrapping non-Interval values as singletons. Conversion failures are
// reported by panicking with the conversion error; a bad literal operand
// is a bug at the call site, not an undefined result.
func promote(v any) Interval {
	if x, ok := v.(Interval); ok {
		return x
	}
	x, err := Single(v)
	if err != nil {
		panic(err)
	}
	return x
}

// Inf returns the lower endpoint. It is NaN for the empty and undefined
// intervals.
func (x Interval) Inf() float64 {
	if x.form == empty {
		return math.NaN()
	}
	return x.inf
}

// Sup returns the upper endpoint. It is NaN for the empty and undefined
// intervals.
func (x Interval) Sup() float64 {
	if x.form == empty {
		return math.NaN()
	}
	return x.sup
}

// IsEmpty reports whether x is the empty interval.
func (x Interval) IsEmpty() bool { return x.form == empty }

// IsUndefined reports whether x is the undefined interval.
func (x Interval) IsUndefined() bool { return x.form == undef }

// check panics unless x is a proper interval.
func (x Interval) check() {
	if x.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef {
		panic(ErrUndefinedInterval)
	}
}

// containsZero reports whether 0 lies in the proper interval x.
func (x Interval) containsZero() bool {
	return x.inf <= 0 && x.sup >= 0
}

// Pos returns x unchanged. It panics with ErrEmptyInterval on the empty
// interval, mirroring the other unary operations.
func (x Interval) Pos() Interval {
	if x.form == empty {
		panic(ErrEmptyInterval)
	}
	return x
}

// Neg returns -x, the interval [-x.sup, -x.inf]. Negating an endpoint is
// exact, so no rounding is involved.
func (x Interval) Neg() Interval {
	if x.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef {
		return Undefined()
	}
	return Interval{inf: -x.sup, sup: -x.inf}
}

// Recip returns the reciprocal 1/x. If x contains zero the result is the
// undefined interval.
func (x Interval) Recip() Interval {
	if x.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || x.containsZero() {
		return Undefined()
	}
	var lo, hi float64
	WithRounding(ToNegativeInf, func() { lo = roundedQuo(1, x.sup) })
	WithRounding(ToPositiveInf, func() { hi = roundedQuo(1, x.inf) })
	return fromLimits(lo, hi)
}

// Add returns x + v. The operand v may be an Interval or anything New
// accepts as an endpoint.
func (x Interval) Add(v any) Interval {
	y := promote(v)
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	var lo, hi float64
	WithRounding(ToNegativeInf, func() { lo = roundedAdd(x.inf, y.inf) })
	WithRounding(ToPositiveInf, func() { hi = roundedAdd(x.sup, y.sup) })
	return fromLimits(lo, hi)
}

// Sub returns x - v.
func (x Interval) Sub(v any) Interval {
	y := promote(v)
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	var lo, hi float64
	WithRounding(ToNegativeInf, func() { lo = roundedSub(x.inf, y.sup) })
	WithRounding(ToPositiveInf, func() { hi = roundedSub(x.sup, y.inf) })
	return fromLimits(lo, hi)
}

// Mul returns x * v. All four endpoint products are formed under each
// rounding direction before taking the minimum and maximum.
func (x Interval) Mul(v any) Interval {
	y := promote(v)
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	var lo, hi float64
	WithRounding(ToNegativeInf, func() {
		lo = min4(
			roundedMul(x.inf, y.inf), roundedMul(x.inf, y.sup),
			roundedMul(x.sup, y.inf), roundedMul(x.sup, y.sup),
		)
	})
	WithRounding(ToPositiveInf, func() {
		hi = max4(
			roundedMul(x.inf, y.inf), roundedMul(x.inf, y.sup),
			roundedMul(x.sup, y.inf), roundedMul(x.sup, y.sup),
		)
	})
	return fromLimits(lo, hi)
}

// Div returns x / v. If the divisor contains zero the result is the
// undefined interval.
func (x Interval) Div(v any) Interval {
	y := promote(v)
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	if y.containsZero() {
		return Undefined()
	}
	var lo, hi float64
	WithRounding(ToNegativeInf, func() {
		lo = min4(
			roundedQuo(x.inf, y.inf), roundedQuo(x.inf, y.sup),
			roundedQuo(x.sup, y.inf), roundedQuo(x.sup, y.sup),
		)
	})
	WithRounding(ToPositiveInf, func() {
		hi = max4(
			roundedQuo(x.inf, y.inf), roundedQuo(x.inf, y.sup),
			roundedQuo(x.sup, y.inf), roundedQuo(x.sup, y.sup),
		)
	})
	return fromLimits(lo, hi)
}

// Intersect returns the intersection of x and y, which may be empty.
func (x Interval) Intersect(y Interval) Interval {
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	if x.form == empty || y.form == empty {
		return Empty()
	}
	lo, hi := math.Max(x.inf, y.inf), math.Min(x.sup, y.sup)
	if lo > hi {
		return Empty()
	}
	return Interval{inf: lo, sup: hi}
}

// Union returns the union of x and y. The union of disjoint proper
// intervals is not an interval, so it is reported as undefined; use Hull
// for the enclosing interval instead.
func (x Interval) Union(y Interval) Interval {
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	if x.form == empty {
		return y
	}
	if y.form == empty {
		return x
	}
	if math.Max(x.inf, y.inf) > math.Min(x.sup, y.sup) {
		return Undefined()
	}
	return Interval{inf: math.Min(x.inf, y.inf), sup: math.Max(x.sup, y.sup)}
}

// Hull returns the convex union of x and y, the smallest interval
// containing both. Unlike Union it is defined for disjoint operands.
func (x Interval) Hull(y Interval) Interval {
	if x.form == undef || y.form == undef {
		return Undefined()
	}
	if x.form == empty {
		return y
	}
	if y.form == empty {
		return x
	}
	return Interval{inf: math.Min(x.inf, y.inf), sup: math.Max(x.sup, y.sup)}
}

// Eq reports whether x and y are the same interval. Two empty intervals
// are equal; the undefined interval compares unequal to everything,
// itself included, like a floating-point NaN.
func (x Interval) Eq(y Interval) bool {
	if x.form == undef || y.form == undef {
		return false
	}
	if x.form == empty || y.form == empty {
		return x.form == y.form
	}
	return x.inf == y.inf && x.sup == y.sup
}

// Ne reports whether x and y are not equal under Eq.
func (x Interval) Ne(y Interval) bool { return !x.Eq(y) }

// Less reports whether x lies strictly below y, that is x.sup < y.inf.
// It panics with ErrEmptyInterval if either operand is empty and returns
// false if either is undefined.
func (x Interval) Less(y Interval) bool {
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return false
	}
	return x.sup < y.inf
}

// LessEq reports whether x.inf <= y.inf and x.sup <= y.sup. Two empty
// intervals compare as equal; comparing an empty interval with a
// non-empty one panics with ErrEmptyInterval. An undefined operand makes
// the result false.
func (x Interval) LessEq(y Interval) bool {
	if x.form == empty && y.form == empty {
		return true
	}
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		return false
	}
	return x.inf <= y.inf && x.sup <= y.sup
}

// Greater reports whether x lies strictly above y.
func (x Interval) Greater(y Interval) bool { return y.Less(x) }

// GreaterEq is the reflection of LessEq.
func (x Interval) GreaterEq(y Interval) bool { return y.LessEq(x) }

// Contains reports whether v, an Interval or a point promoted to one, is
// a subset of x. The empty interval is a subset of every interval
// including itself; the undefined interval neither contains nor is
// contained by anything.
func (x Interval) Contains(v any) bool {
	y := promote(v)
	if x.form == undef || y.form == undef {
		return false
	}
	if x.form == empty && y.form != empty {
		return false
	}
	if y.form == empty {
		return true
	}
	return x.inf <= y.inf && x.sup >= y.sup
}

// Abs returns the absolute value of x as a scalar, the largest distance
// from zero over the interval. It panics with ErrEmptyInterval or
// ErrUndefinedInterval when x is not proper.
func (x Interval) Abs() float64 {
	x.check()
	return math.Max(math.Abs(x.inf), math.Abs(x.sup))
}

// Diameter returns x.sup - x.inf, rounded upward.
func (x Interval) Diameter() float64 {
	x.check()
	var d float64
	WithRounding(ToPositiveInf, func() { d = roundedSub(x.sup, x.inf) })
	return d
}

// Middle returns the midpoint (x.inf + x.sup) / 2, rounded upward.
func (x Interval) Middle() float64 {
	x.check()
	var m float64
	WithRounding(ToPositiveInf, func() { m = roundedMid(x.inf, x.sup) })
	return m
}

// Distance returns the Hausdorff distance between x and y,
// max(|x.inf - y.inf|, |x.sup - y.sup|), rounded upward. It panics with
// ErrEmptyInterval if either operand is empty and ErrUndefinedInterval if
// either is undefined.
func (x Interval) Distance(y Interval) float64 {
	if x.form == empty || y.form == empty {
		panic(ErrEmptyInterval)
	}
	if x.form == undef || y.form == undef {
		panic(ErrUndefinedInterval)
	}
	var d float64
	WithRounding(ToPositiveInf, func() {
		d = math.Max(roundedDist(x.inf, y.inf), roundedDist(x.sup, y.sup))
	})
	return d
}
