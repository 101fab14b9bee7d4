package interval

import (
	"math"
	"math/big"
	"sync"
)

// RoundingMode determines the direction in which the exact result of an
// endpoint computation is rounded to a float64.
type RoundingMode uint8

// The following rounding modes are supported.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	default:
		return "unknown rounding mode"
	}
}

// big returns the math/big equivalent of m.
func (m RoundingMode) big() big.RoundingMode {
	switch m {
	case ToZero:
		return big.ToZero
	case ToNegativeInf:
		return big.ToNegativeInf
	case ToPositiveInf:
		return big.ToPositiveInf
	default:
		return big.ToNearestEven
	}
}

// The rounding environment is process-wide state, like the hardware FP
// control word it stands in for. The Go runtime requires the hardware
// environment to stay in round-to-nearest, so directed rounding is applied
// in software: each directed operation computes its result exactly over
// the rationals and rounds the exact value in the current direction. The
// mutex serializes directed regions, which also makes the library safe for
// concurrent use.
var (
	modeMu  sync.Mutex
	curMode = ToNearestEven
)

// GetRoundingMode reports the current rounding mode of the environment.
func GetRoundingMode() RoundingMode {
	modeMu.Lock()
	defer modeMu.Unlock()
	return curMode
}

// SetRoundingMode sets the rounding mode of the environment.
func SetRoundingMode(m RoundingMode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	curMode = m
}

// WithRounding runs fn with the rounding mode set to m and restores the
// previous mode when fn returns, panics included. Every operation in this
// package that rounds an endpoint runs inside such a region, so the mode
// observed after any call equals the mode observed before it.
//
// WithRounding is not reentrant: fn must not itself call WithRounding,
// GetRoundingMode, or SetRoundingMode.
func WithRounding(m RoundingMode, fn func()) {
	modeMu.Lock()
	defer modeMu.Unlock()
	prev := curMode
	curMode = m
	defer func() { curMode = prev }()
	fn()
}

func nextUp(f float64) float64   { return math.Nextafter(f, math.Inf(1)) }
func nextDown(f float64) float64 { return math.Nextafter(f, math.Inf(-1)) }

// roundRat rounds the exact rational r to a float64 in direction m.
//
// When r lies outside the finite float64 range, directed rounding back
// toward zero saturates at ±MaxFloat64 and rounding away from zero
// produces the corresponding infinity, as the hardware would.
func roundRat(r *big.Rat, m RoundingMode) float64 {
	// The exact flag of Float64 is not used: it reports an underflow to
	// zero as exact. The comparison with r below decides instead.
	f, _ := r.Float64()
	if math.IsInf(f, 1) {
		if m == ToNegativeInf || m == ToZero {
			return math.MaxFloat64
		}
		return f
	}
	if math.IsInf(f, -1) {
		if m == ToPositiveInf || m == ToZero {
			return -math.MaxFloat64
		}
		return f
	}
	// f is the nearest float64; step one ulp when it lies on the wrong
	// side of the exact value for the requested direction.
	switch cmp := new(big.Rat).SetFloat64(f).Cmp(r); m {
	case ToNegativeInf:
		if cmp > 0 {
			f = nextDown(f)
		}
	case ToPositiveInf:
		if cmp < 0 {
			f = nextUp(f)
		}
	case ToZero:
		if cmp > 0 && f > 0 {
			f = nextDown(f)
		} else if cmp < 0 && f < 0 {
			f = nextUp(f)
		}
	}
	return f
}

// The arithmetic primitives below honor the current rounding mode. They
// are called with modeMu held, from inside a WithRounding region.

func ratOf(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}

func roundedAdd(x, y float64) float64 {
	return roundRat(new(big.Rat).Add(ratOf(x), ratOf(y)), curMode)
}

func roundedSub(x, y float64) float64 {
	return roundRat(new(big.Rat).Sub(ratOf(x), ratOf(y)), curMode)
}

func roundedMul(x, y float64) float64 {
	return roundRat(new(big.Rat).Mul(ratOf(x), ratOf(y)), curMode)
}

func roundedQuo(x, y float64) float64 {
	if y == 0 {
		return math.NaN()
	}
	return roundRat(new(big.Rat).Quo(ratOf(x), ratOf(y)), curMode)
}

// roundedMid computes (x+y)/2 exactly and rounds the result once.
func roundedMid(x, y float64) float64 {
	sum := new(big.Rat).Add(ratOf(x), ratOf(y))
	return roundRat(sum.Quo(sum, two), curMode)
}

// roundedDist computes |x-y|.
func roundedDist(x, y float64) float64 {
	d := new(big.Rat).Sub(ratOf(x), ratOf(y))
	return roundRat(d.Abs(d), curMode)
}

var two = big.NewRat(2, 1)

func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}
