package interval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundingModeString(t *testing.T) {
	assert.Equal(t, "ToNearestEven", ToNearestEven.String())
	assert.Equal(t, "ToZero", ToZero.String())
	assert.Equal(t, "ToNegativeInf", ToNegativeInf.String())
	assert.Equal(t, "ToPositiveInf", ToPositiveInf.String())
	assert.Equal(t, "unknown rounding mode", RoundingMode(42).String())
}

func TestSetGetRoundingMode(t *testing.T) {
	defer SetRoundingMode(ToNearestEven)

	for _, m := range []RoundingMode{ToNearestEven, ToZero, ToNegativeInf, ToPositiveInf} {
		SetRoundingMode(m)
		assert.Equal(t, m, GetRoundingMode())
	}
}

func TestWithRoundingRestores(t *testing.T) {
	defer SetRoundingMode(ToNearestEven)

	SetRoundingMode(ToZero)
	WithRounding(ToPositiveInf, func() {})
	assert.Equal(t, ToZero, GetRoundingMode())
}

func TestWithRoundingRestoresOnPanic(t *testing.T) {
	defer SetRoundingMode(ToNearestEven)

	SetRoundingMode(ToNegativeInf)
	require.Panics(t, func() {
		WithRounding(ToPositiveInf, func() { panic("boom") })
	})
	assert.Equal(t, ToNegativeInf, GetRoundingMode())
}

func TestRoundRatDirected(t *testing.T) {
	tenth := big.NewRat(1, 10)

	nearest := roundRat(tenth, ToNearestEven)
	assert.Equal(t, 0.1, nearest)

	down := roundRat(tenth, ToNegativeInf)
	up := roundRat(tenth, ToPositiveInf)
	assert.Less(t, down, up)
	assert.Equal(t, math.Nextafter(up, math.Inf(-1)), down, "enclosure should be one ulp wide")

	// 1/10 > 0, so rounding toward zero rounds down.
	assert.Equal(t, down, roundRat(tenth, ToZero))

	neg := new(big.Rat).Neg(tenth)
	assert.Equal(t, -up, roundRat(neg, ToNegativeInf))
	assert.Equal(t, -down, roundRat(neg, ToPositiveInf))
	assert.Equal(t, -down, roundRat(neg, ToZero))
}

func TestRoundRatExact(t *testing.T) {
	for _, r := range []*big.Rat{
		big.NewRat(1, 4),
		big.NewRat(-3, 2),
		big.NewRat(0, 1),
		new(big.Rat).SetFloat64(0.1), // the float64 nearest to 1/10, exact as a rational
	} {
		want, _ := r.Float64()
		for _, m := range []RoundingMode{ToNearestEven, ToZero, ToNegativeInf, ToPositiveInf} {
			assert.Equal(t, want, roundRat(r, m), "roundRat(%v, %v)", r, m)
		}
	}
}

func TestRoundRatTiny(t *testing.T) {
	// Below the smallest subnormal: the down direction reaches zero, the
	// up direction the smallest subnormal.
	tiny := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 2000))

	assert.Equal(t, 0.0, roundRat(tiny, ToNegativeInf))
	assert.Equal(t, math.SmallestNonzeroFloat64, roundRat(tiny, ToPositiveInf))

	tiny.Neg(tiny)
	assert.Equal(t, -math.SmallestNonzeroFloat64, roundRat(tiny, ToNegativeInf))
	assert.Equal(t, math.Copysign(0, -1), roundRat(tiny, ToPositiveInf))
}

func TestRoundRatHuge(t *testing.T) {
	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 1200))

	assert.Equal(t, math.MaxFloat64, roundRat(huge, ToNegativeInf))
	assert.Equal(t, math.MaxFloat64, roundRat(huge, ToZero))
	assert.True(t, math.IsInf(roundRat(huge, ToPositiveInf), 1))
	assert.True(t, math.IsInf(roundRat(huge, ToNearestEven), 1))

	huge.Neg(huge)
	assert.Equal(t, -math.MaxFloat64, roundRat(huge, ToPositiveInf))
	assert.Equal(t, -math.MaxFloat64, roundRat(huge, ToZero))
	assert.True(t, math.IsInf(roundRat(huge, ToNegativeInf), -1))
}

// Every public operation leaves the rounding mode as it found it, failing
// operations included.
func TestModePreservation(t *testing.T) {
	defer SetRoundingMode(ToNearestEven)

	ops := map[string]func(){
		"New":        func() { MustNew("0.1", "0.3") },
		"Single":     func() { MustSingle("1/3") },
		"Add":        func() { MustSingle("0.1").Add("0.2") },
		"Sub":        func() { MustSingle("0.1").Sub(MustNew(1, 2)) },
		"Mul":        func() { MustNew(-1, 2).Mul(MustNew(3, 4)) },
		"Div":        func() { MustNew(1, 2).Div(MustNew(3, 4)) },
		"Recip":      func() { MustNew(1, 2).Recip() },
		"RecipUndef": func() { MustNew(-2, 2).Recip() },
		"Diameter":   func() { MustNew(-10, 1).Diameter() },
		"Middle":     func() { MustNew(-10, 5).Middle() },
		"Distance":   func() { MustNew(-10, 5).Distance(MustNew(10, 50)) },
		"Float64":    func() { f, _ := ParseRational("22/7"); f.Float64(ToNegativeInf) },
		"AddEmpty": func() {
			defer func() { recover() }()
			MustSingle(2).Add(Empty())
		},
		"AbsUndefined": func() {
			defer func() { recover() }()
			Undefined().Abs()
		},
		"ParseError": func() {
			defer func() { recover() }()
			MustSingle("not a number")
		},
	}
	for _, mode := range []RoundingMode{ToNearestEven, ToZero, ToNegativeInf, ToPositiveInf} {
		SetRoundingMode(mode)
		for name, op := range ops {
			op()
			require.Equal(t, mode, GetRoundingMode(), "%s under %v", name, mode)
		}
	}
}
