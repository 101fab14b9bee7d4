package interval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionFloat64Exact(t *testing.T) {
	f, err := ParseRational("25/10")
	require.NoError(t, err)
	for _, m := range []RoundingMode{ToNearestEven, ToZero, ToNegativeInf, ToPositiveInf} {
		got, err := f.Float64(m)
		require.NoError(t, err)
		assert.Equal(t, 2.5, got, "mode %v", m)
	}
}

func TestFractionFloat64Directed(t *testing.T) {
	f, err := ParseRational("1/3")
	require.NoError(t, err)

	down, err := f.Float64(ToNegativeInf)
	require.NoError(t, err)
	up, err := f.Float64(ToPositiveInf)
	require.NoError(t, err)

	assert.Less(t, down, up)
	assert.Equal(t, math.Nextafter(down, math.Inf(1)), up)

	third := big.NewRat(1, 3)
	assert.True(t, new(big.Rat).SetFloat64(down).Cmp(third) < 0)
	assert.True(t, new(big.Rat).SetFloat64(up).Cmp(third) > 0)
}

func TestFractionFloat64Overflow(t *testing.T) {
	for _, s := range []string{"1e1000", "1/1e1000", "-1e400"} {
		f, err := ParseRational(s)
		require.NoError(t, err, "parse %q", s)
		_, err = f.Float64(ToNearestEven)
		assert.ErrorIs(t, err, ErrOverflow, "convert %q", s)
	}
}

func TestResolveEndpointNumeric(t *testing.T) {
	for _, m := range []RoundingMode{ToNegativeInf, ToPositiveInf} {
		got, err := resolveEndpoint(0.5, m)
		require.NoError(t, err)
		assert.Equal(t, 0.5, got)

		got, err = resolveEndpoint(-7, m)
		require.NoError(t, err)
		assert.Equal(t, -7.0, got)

		got, err = resolveEndpoint(uint16(9), m)
		require.NoError(t, err)
		assert.Equal(t, 9.0, got)

		got, err = resolveEndpoint(float32(1.5), m)
		require.NoError(t, err)
		assert.Equal(t, 1.5, got)
	}
}

// Integers wider than the 53-bit significand round in the requested
// direction like any other inexact value.
func TestResolveEndpointWideInt(t *testing.T) {
	const v = int64(1<<60 + 1)

	down, err := resolveEndpoint(v, ToNegativeInf)
	require.NoError(t, err)
	up, err := resolveEndpoint(v, ToPositiveInf)
	require.NoError(t, err)

	assert.Less(t, down, up)
	assert.LessOrEqual(t, new(big.Rat).SetFloat64(down).Cmp(new(big.Rat).SetInt64(v)), 0)
	assert.GreaterOrEqual(t, new(big.Rat).SetFloat64(up).Cmp(new(big.Rat).SetInt64(v)), 0)
}

func TestParseLimitsSharedLiteral(t *testing.T) {
	a, b, err := parseLimits("0.1", "0.1")
	require.NoError(t, err)
	assert.Less(t, a, b)
	assert.Equal(t, math.Nextafter(b, math.Inf(-1)), a)

	// Distinct literals resolve independently.
	a, b, err = parseLimits("0.1", "0.3")
	require.NoError(t, err)
	assert.Less(t, a, 0.1)
	assert.Greater(t, b, 0.3)

	// A literal paired with its exact numeric value stays a point.
	a, b, err = parseLimits("0.25", 0.25)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseLimitsErrors(t *testing.T) {
	_, _, err := parseLimits(1, "1e1000")
	assert.ErrorIs(t, err, ErrOverflow)

	_, _, err = parseLimits("1e1000", 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, _, err = parseLimits("1e1000", "1e1000")
	assert.ErrorIs(t, err, ErrOverflow)
}
