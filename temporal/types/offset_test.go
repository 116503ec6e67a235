package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOffset(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		ms   int
		want string
	}{
		{"zero", 0, "+00:00"},
		{"five_thirty", int(5*MillisPerHour + 30*MillisPerMinute), "+05:30"},
		{"neg_two_fifteen", -int(2*MillisPerHour + 15*MillisPerMinute), "-02:15"},
		{"whole_hour", int(9 * MillisPerHour), "+09:00"},
		{"with_seconds", int(MillisPerHour + 30*MillisPerSecond), "+01:00:30"},
		{"with_millis", int(MillisPerHour + 30*MillisPerSecond + 125), "+01:00:30.125"},
		{"millis_only", -int(MillisPerHour + 7), "-01:00:00.007"},
		{"max", int(MaxOffsetMillis - 1), "+23:59:59.999"},
		{"min", -int(MaxOffsetMillis - 1), "-23:59:59.999"},
	} {
		tc := tc
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.want, FormatOffset(tc.ms))

			// Every formatted offset must parse back to the same value.
			ms, err := ParseOffset(tc.want)
			a.NoError(err)
			a.Equal(tc.ms, ms)
		})
	}
}

func TestParseOffset(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		id   string
		want int
		err  string
	}{
		{test: "plus_five_thirty", id: "+05:30", want: int(5*MillisPerHour + 30*MillisPerMinute)},
		{test: "minus_two_fifteen", id: "-02:15", want: -int(2*MillisPerHour + 15*MillisPerMinute)},
		{test: "seconds", id: "+00:00:59", want: int(59 * MillisPerSecond)},
		{test: "sub_second", id: "-00:00:00.250", want: -250},
		{test: "empty", id: "", err: `invalid configuration: malformed offset id ""`},
		{test: "no_sign", id: "05:30", err: `invalid configuration: malformed offset id "05:30"`},
		{test: "short", id: "+5:30", err: `invalid configuration: malformed offset id "+5:30"`},
		{test: "bad_separator", id: "+05.30", err: `invalid configuration: malformed offset id "+05.30"`},
		{test: "minutes_over", id: "+05:61", err: `invalid configuration: offset component 61 in "+05:61" exceeds 59`},
		{test: "hours_over", id: "+25:00", err: `invalid configuration: offset component 25 in "+25:00" exceeds 23`},
		{test: "trailing", id: "+05:30x", err: `invalid configuration: malformed offset id "+05:30x"`},
		{test: "exactly_24h", id: "+24:00", err: `invalid configuration: offset component 24 in "+24:00" exceeds 23`},
	} {
		tc := tc
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			ms, err := ParseOffset(tc.id)
			if tc.err != "" {
				require.Error(t, err)
				a.EqualError(err, tc.err)
				a.ErrorIs(err, ErrConfig)
				return
			}
			require.NoError(t, err)
			a.Equal(tc.want, ms)
		})
	}
}

func TestCheckOffset(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ms, err := CheckOffset(0)
	a.NoError(err)
	a.Equal(0, ms)

	_, err = CheckOffset(int(MaxOffsetMillis))
	a.ErrorIs(err, ErrRange)
	_, err = CheckOffset(-int(MaxOffsetMillis))
	a.ErrorIs(err, ErrRange)

	ms, err = CheckOffset(int(MaxOffsetMillis) - 1)
	a.NoError(err)
	a.Equal(int(MaxOffsetMillis)-1, ms)
}
