// Package math provides interval enclosures of common mathematical
// constants and the interval square root.
//
// Every returned interval is the tightest float64 interval guaranteed to
// contain the exact value.
package math

import (
	"fmt"
	gmath "math"
	"math/big"

	"github.com/yig/interval"
)

// prec is the working precision for the high-precision intermediates,
// comfortably beyond the 53 bits that survive the final rounding.
const prec = 256

func newConst(s string) interval.Interval {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		panic(fmt.Sprintf("bad constant: %q", s))
	}
	lo, hi := outward(f, false)
	return interval.MustNew(lo, hi)
}

var (
	_E     = newConst("2.718281828459045235360287471352662497757247093699959574966967627724076630353547594571382178525166427")
	_Pi    = newConst("3.141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067")
	_Gamma = newConst("0.577215664901532860606512090082402431042159335939923598805767234884867726777664670936947063291746749")
	_Ln2   = newConst("0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687")
	_Ln10  = newConst("2.302585092994045684017991454684364207601101488628772976033327900967572609677352480235997205089598298")
	_Phi   = newConst("1.618033988749894848204586834365638117720309179805762862135448622705260462818902449707207204189391137")
	_Sqrt2 = newConst("1.414213562373095048801688724209698078569671875376948073176679737990732478462107038850387534327641573")
)

// E returns the tightest interval containing the mathematical constant e.
func E() interval.Interval { return _E }

// Pi returns the tightest interval containing the mathematical constant π.
func Pi() interval.Interval { return _Pi }

// Gamma returns the tightest interval containing the Euler-Mascheroni
// constant γ.
func Gamma() interval.Interval { return _Gamma }

// Ln2 returns the tightest interval containing ln(2).
func Ln2() interval.Interval { return _Ln2 }

// Ln10 returns the tightest interval containing ln(10).
func Ln10() interval.Interval { return _Ln10 }

// Phi returns the tightest interval containing the golden ratio φ.
func Phi() interval.Interval { return _Phi }

// Sqrt2 returns the tightest interval containing √2.
func Sqrt2() interval.Interval { return _Sqrt2 }

// Sqrt returns the square root of x. It panics with ErrEmptyInterval on
// the empty interval; an undefined operand, or an interval reaching below
// zero, yields the undefined interval.
func Sqrt(x interval.Interval) interval.Interval {
	if x.IsEmpty() {
		panic(interval.ErrEmptyInterval)
	}
	if x.IsUndefined() || x.Inf() < 0 {
		return interval.Undefined()
	}
	lo, _ := sqrtOut(x.Inf())
	_, hi := sqrtOut(x.Sup())
	return interval.MustNew(lo, hi)
}

// sqrtOut computes a float64 enclosure of the exact square root of v.
func sqrtOut(v float64) (lo, hi float64) {
	f := new(big.Float).SetPrec(prec).SetFloat64(v)
	f.Sqrt(f)
	return outward(f, f.Acc() == big.Exact)
}

// outward rounds the high-precision value f to the tightest float64
// interval containing it. exact reports whether f is the exact value
// rather than a prec-bit rounding of it; an inexact f is widened one ulp
// on the side its own rounding already covers.
func outward(f *big.Float, exact bool) (lo, hi float64) {
	v, acc := f.Float64()
	lo, hi = v, v
	if acc == big.Above || (acc == big.Exact && !exact) {
		lo = gmath.Nextafter(v, gmath.Inf(-1))
	}
	if acc == big.Below || (acc == big.Exact && !exact) {
		hi = gmath.Nextafter(v, gmath.Inf(1))
	}
	return lo, hi
}
