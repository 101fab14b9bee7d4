package interval

import (
	"math/big"
	"regexp"
)

// A Fraction is an exact rational number held as a pair of
// arbitrary-precision integers. The denominator is positive and the pair
// is in lowest terms.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

func (f Fraction) String() string {
	if f.Den.Cmp(oneInt) == 0 {
		return f.Num.String()
	}
	return f.Num.String() + "/" + f.Den.String()
}

// rationalRegexp matches one rational literal. The decimal separator may
// be '.' or ','; the trailing "/..." group is parsed recursively, so
// "a/b/c" reads as a/(b/c).
var rationalRegexp = regexp.MustCompile(
	`^([-+])?(\d+)(?:[.,](\d*))?(?:[eE]([-+])?(\d+))?(?:/(.+))?$`)

var (
	oneInt = big.NewInt(1)
	tenInt = big.NewInt(10)
)

// ParseRational parses a rational literal such as "0.1", "+3e-1", "5/25"
// or "0,2e1/1.E-8" into a reduced Fraction with a positive denominator.
//
// It returns an *InvalidRationalError if s does not match the grammar and
// ErrDivisionByZero if any denominator sub-expression evaluates to zero.
// Exponents larger than 2^20 in magnitude are refused with ErrOverflow.
func ParseRational(s string) (Fraction, error) {
	m := rationalRegexp.FindStringSubmatch(s)
	if m == nil {
		return Fraction{}, &InvalidRationalError{Input: s}
	}

	// Denominator defaults to 1/1 when the "/..." suffix is absent.
	den := Fraction{Num: oneInt, Den: oneInt}
	if m[6] != "" {
		var err error
		if den, err = ParseRational(m[6]); err != nil {
			return Fraction{}, err
		}
	}
	if den.Num.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	// The numeric part before the '/' is an integer scaled by a power of
	// ten: ±(digits · 10^exp), where exp folds in the exponent field and
	// the shift introduced by the fractional digits.
	num, ok := new(big.Int).SetString(m[2]+m[3], 10)
	if !ok {
		return Fraction{}, &InvalidRationalError{Input: s}
	}
	if m[1] == "-" {
		num.Neg(num)
	}
	exp := 0
	if m[5] != "" {
		e, ok := new(big.Int).SetString(m[5], 10)
		if !ok || !e.IsInt64() || e.Int64() > 1<<20 {
			// Exponents beyond 2^20 would materialize million-digit
			// integers; refuse them here instead of detecting overflow
			// after the fact.
			return Fraction{}, ErrOverflow
		}
		exp = int(e.Int64())
		if m[4] == "-" {
			exp = -exp
		}
	}
	exp -= len(m[3])

	n, d := num, new(big.Int).Set(den.Num)
	if exp < 0 {
		d.Mul(d, pow10(-exp))
	} else {
		n = new(big.Int).Mul(n, pow10(exp))
	}
	n.Mul(n, den.Den)

	return newFraction(n, d), nil
}

// newFraction normalizes n/d: sign moved to the numerator, reduced by gcd.
// d must be non-zero.
func newFraction(n, d *big.Int) Fraction {
	if d.Sign() < 0 {
		n = new(big.Int).Neg(n)
		d = new(big.Int).Neg(d)
	}
	if n.Sign() == 0 {
		return Fraction{Num: new(big.Int), Den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	return Fraction{
		Num: new(big.Int).Quo(n, g),
		Den: new(big.Int).Quo(d, g),
	}
}

func pow10(e int) *big.Int {
	return new(big.Int).Exp(tenInt, big.NewInt(int64(e)), nil)
}
