package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	sum, err := SafeAdd(2, 3)
	a.NoError(err)
	a.Equal(int64(5), sum)

	sum, err = SafeAdd(math.MaxInt64, -1)
	a.NoError(err)
	a.Equal(int64(math.MaxInt64-1), sum)

	_, err = SafeAdd(math.MaxInt64, 1)
	a.ErrorIs(err, ErrOverflow)
	_, err = SafeAdd(math.MinInt64, -1)
	a.ErrorIs(err, ErrOverflow)

	diff, err := SafeSubtract(-2, 3)
	a.NoError(err)
	a.Equal(int64(-5), diff)

	_, err = SafeSubtract(math.MinInt64, 1)
	a.ErrorIs(err, ErrOverflow)
	_, err = SafeSubtract(math.MaxInt64, -1)
	a.ErrorIs(err, ErrOverflow)

	prod, err := SafeMultiply(-7, 6)
	a.NoError(err)
	a.Equal(int64(-42), prod)

	prod, err = SafeMultiply(math.MinInt64, 1)
	a.NoError(err)
	a.Equal(int64(math.MinInt64), prod)

	_, err = SafeMultiply(math.MinInt64, -1)
	a.ErrorIs(err, ErrOverflow)
	_, err = SafeMultiply(math.MaxInt64/2, 3)
	a.ErrorIs(err, ErrOverflow)

	n, err := SafeToInt(123)
	a.NoError(err)
	a.Equal(123, n)

	_, err = SafeToInt(math.MaxInt32 + 1)
	a.ErrorIs(err, ErrOverflow)
	_, err = SafeToInt(math.MinInt32 - 1)
	a.ErrorIs(err, ErrOverflow)

	_, err = SafeAddInt(math.MaxInt32, 1)
	a.ErrorIs(err, ErrOverflow)
}

func TestFloorDivMod(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test     string
		a, b     int64
		div, mod int64
	}{
		{"positive", 7, 3, 2, 1},
		{"negative_dividend", -7, 3, -3, 2},
		{"negative_divisor", 7, -3, -3, -2},
		{"both_negative", -7, -3, 2, -1},
		{"exact", -6, 3, -2, 0},
		{"zero", 0, 5, 0, 0},
	} {
		tc := tc
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.div, FloorDiv(tc.a, tc.b))
			a.Equal(tc.mod, FloorMod(tc.a, tc.b))
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	rng := NewRangeError("dayOfMonth", 31, 1, 30)
	rng.Explain = "month 4 has only 30 days"
	a.EqualError(rng,
		"value out of range for dayOfMonth: 31 must be in the range [1,30]: month 4 has only 30 days")
	a.ErrorIs(rng, ErrRange)

	unsup := &UnsupportedError{Field: "weekyearOfCentury"}
	a.EqualError(unsup, "unsupported field: field weekyearOfCentury is not supported")
	a.ErrorIs(unsup, ErrUnsupported)

	gap := &GapError{LocalMillis: 1234, ZoneID: "Test/Gap"}
	a.EqualError(gap, "illegal local time: local time 1234 does not exist in zone Test/Gap")
	a.ErrorIs(gap, ErrGap)
}
