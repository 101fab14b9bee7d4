package interval

import (
	"fmt"
	"math"
	"math/big"
)

// Float64 converts f to a float64, rounding the final division in
// direction m.
//
// The numerator and denominator are first converted to float64 with
// round-to-nearest; the quotient is then rounded in the requested
// direction. Converting the parts to the nearest float first means the two
// directed conversions of one literal divide the same operands, so the
// lower and upper results bracket a single quotient as tightly as the
// format allows. A part beyond 2^53 can itself be inexact after that first
// step, and the result then rounds the quotient of the converted parts,
// not the exact value of f. ErrOverflow is returned when either part
// exceeds the finite float64 range.
func (f Fraction) Float64(m RoundingMode) (float64, error) {
	num, err := floatPart(f.Num)
	if err != nil {
		return 0, err
	}
	den, err := floatPart(f.Den)
	if err != nil {
		return 0, err
	}
	var q float64
	WithRounding(m, func() { q = roundedQuo(num, den) })
	return q, nil
}

// floatPart converts one fraction part to the nearest float64.
func floatPart(n *big.Int) (float64, error) {
	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

// resolveEndpoint converts one user-provided endpoint to a float64,
// rounding string literals in direction m. Numeric values that the format
// represents exactly pass through unchanged; integers beyond 2^53 round
// in direction m as well.
func resolveEndpoint(v any, m RoundingMode) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return intEndpoint(int64(v), m), nil
	case int64:
		return intEndpoint(v, m), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint:
		return uintEndpoint(uint64(v), m), nil
	case uint64:
		return uintEndpoint(v, m), nil
	case uint32:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case string:
		f, err := ParseRational(v)
		if err != nil {
			return 0, err
		}
		return f.Float64(m)
	default:
		return 0, fmt.Errorf("interval: cannot use %T as an interval endpoint", v)
	}
}

func intEndpoint(v int64, m RoundingMode) float64 {
	if v >= -(1<<53) && v <= 1<<53 {
		return float64(v)
	}
	return roundRat(new(big.Rat).SetInt64(v), m)
}

func uintEndpoint(v uint64, m RoundingMode) float64 {
	if v <= 1<<53 {
		return float64(v)
	}
	return roundRat(new(big.Rat).SetUint64(v), m)
}

// parseLimits resolves a pair of raw endpoints, the lower in direction
// ToNegativeInf and the upper in direction ToPositiveInf. Identical string
// inputs are parsed once and diverge only in the final directed division,
// which keeps a point literal like New("0.1", "0.1") one ulp wide.
func parseLimits(lo, hi any) (float64, float64, error) {
	if ls, ok := lo.(string); ok {
		if hs, ok := hi.(string); ok && ls == hs {
			f, err := ParseRational(ls)
			if err != nil {
				return 0, 0, err
			}
			a, err := f.Float64(ToNegativeInf)
			if err != nil {
				return 0, 0, err
			}
			b, err := f.Float64(ToPositiveInf)
			if err != nil {
				return 0, 0, err
			}
			return a, b, nil
		}
	}
	a, err := resolveEndpoint(lo, ToNegativeInf)
	if err != nil {
		return 0, 0, err
	}
	b, err := resolveEndpoint(hi, ToPositiveInf)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
