package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

func utcMillis(t *testing.T, year, month, day, hour, min, sec int) int64 {
	t.Helper()
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC).UnixMilli()
}

func TestDateTimeMillis(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	for _, tc := range []struct {
		name                   string
		y, mo, d, h, mi, s, ms int
	}{
		{"epoch", 1970, 1, 1, 0, 0, 0, 0},
		{"moon_landing", 1969, 7, 20, 20, 17, 40, 0},
		{"leap_day", 2024, 2, 29, 12, 30, 45, 0},
		{"century_non_leap", 1900, 2, 28, 23, 59, 59, 0},
		{"far_future", 2150, 12, 31, 6, 0, 0, 0},
		{"deep_past", 1215, 6, 15, 9, 0, 0, 0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := c.DateTimeMillis(tc.y, tc.mo, tc.d, tc.h, tc.mi, tc.s, tc.ms)
			require.NoError(t, err)
			assert.Equal(t, utcMillis(t, tc.y, tc.mo, tc.d, tc.h, tc.mi, tc.s), got)
		})
	}

	_, err := c.DateMillis(2023, 2, 29)
	r.ErrorIs(err, types.ErrRange)
	var rangeErr *types.RangeError
	r.ErrorAs(err, &rangeErr)
	a.Equal("dayOfMonth", rangeErr.Field)
	a.Equal(int64(28), rangeErr.Upper)

	_, err = c.DateMillis(2023, 13, 1)
	r.ErrorIs(err, types.ErrRange)

	_, err = c.DateTimeMillis(2023, 6, 1, 24, 0, 0, 0)
	r.ErrorIs(err, types.ErrRange)

	// TimeMillis replaces the time of day, keeping the date.
	noon, err := c.TimeMillis(utcMillis(t, 2023, 6, 1, 17, 45, 12), 12, 0, 0, 0)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 6, 1, 12, 0, 0), noon)
}

func TestFieldValues(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	c := ISOUTC()

	// 2024-02-29 was a Thursday, day 60 of a leap year.
	instant := utcMillis(t, 2024, 2, 29, 15, 42, 7) + 123
	a.Equal(2024, c.Year().Get(instant))
	a.Equal(2, c.MonthOfYear().Get(instant))
	a.Equal(29, c.DayOfMonth().Get(instant))
	a.Equal(60, c.DayOfYear().Get(instant))
	a.Equal(4, c.DayOfWeek().Get(instant))
	a.Equal(15, c.HourOfDay().Get(instant))
	a.Equal(42, c.MinuteOfHour().Get(instant))
	a.Equal(7, c.SecondOfMinute().Get(instant))
	a.Equal(123, c.MillisOfSecond().Get(instant))
	a.Equal((15*60+42)*60+7, c.SecondOfDay().Get(instant))
	a.Equal(1, c.HalfdayOfDay().Get(instant))
	a.Equal(3, c.HourOfHalfday().Get(instant))
	a.Equal(3, c.ClockhourOfHalfday().Get(instant))
	a.Equal(15, c.ClockhourOfDay().Get(instant))
	a.Equal(2024, c.YearOfEra().Get(instant))
	a.Equal(24, c.YearOfCentury().Get(instant))
	a.Equal(20, c.CenturyOfEra().Get(instant))
	a.Equal(1, c.Era().Get(instant))

	// Midnight reads as clockhour 24 of the previous reckoning.
	midnight := utcMillis(t, 2024, 3, 1, 0, 0, 0)
	a.Equal(0, c.HourOfDay().Get(midnight))
	a.Equal(24, c.ClockhourOfDay().Get(midnight))

	// Era arithmetic: year 0 is 1 BCE.
	bce := utcMillis(t, 0, 6, 1, 0, 0, 0)
	a.Equal(0, c.Era().Get(bce))
	a.Equal(1, c.YearOfEra().Get(bce))
}

func TestWeekyearFields(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	c := ISOUTC()

	// 2021-01-01 was a Friday, in ISO week 53 of weekyear 2020.
	instant := utcMillis(t, 2021, 1, 1, 12, 0, 0)
	a.Equal(2021, c.Year().Get(instant))
	a.Equal(2020, c.Weekyear().Get(instant))
	a.Equal(53, c.WeekOfWeekyear().Get(instant))
	a.Equal(5, c.DayOfWeek().Get(instant))

	// 2019-12-30 was a Monday, opening week 1 of weekyear 2020.
	instant = utcMillis(t, 2019, 12, 30, 0, 0, 0)
	a.Equal(2019, c.Year().Get(instant))
	a.Equal(2020, c.Weekyear().Get(instant))
	a.Equal(1, c.WeekOfWeekyear().Get(instant))

	a.Equal(53, weeksInYear(2020))
	a.Equal(52, weeksInYear(2021))

	a.Equal(20, c.WeekyearOfCentury().Get(instant))
}

func TestFieldSet(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	instant := utcMillis(t, 2023, 1, 31, 10, 0, 0)

	// Setting the month clamps the day to the target month's length.
	got, err := c.MonthOfYear().Set(instant, 2)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 2, 28, 10, 0, 0), got)

	// Setting the year away from a leap year clamps 29 February.
	leap := utcMillis(t, 2024, 2, 29, 8, 0, 0)
	got, err = c.Year().Set(leap, 2023)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 2, 28, 8, 0, 0), got)

	// And 1 March stays 1 March across the leap boundary.
	march := utcMillis(t, 2024, 3, 1, 8, 0, 0)
	got, err = c.Year().Set(march, 2023)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 3, 1, 8, 0, 0), got)

	_, err = c.DayOfMonth().Set(instant, 32)
	r.ErrorIs(err, types.ErrRange)

	got, err = c.HourOfDay().Set(instant, 23)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 1, 31, 23, 0, 0), got)

	// Era flip keeps the year-of-era reading.
	ce := utcMillis(t, 5, 4, 1, 0, 0, 0)
	got, err = c.Era().Set(ce, 0)
	r.NoError(err)
	a.Equal(0, c.Era().Get(got))
	a.Equal(5, c.YearOfEra().Get(got))
}

func TestFieldAdd(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	nov := utcMillis(t, 2023, 11, 15, 9, 0, 0)

	// Plain add overflows into the year.
	got, err := c.MonthOfYear().Add(nov, 2)
	r.NoError(err)
	a.Equal(utcMillis(t, 2024, 1, 15, 9, 0, 0), got)

	// Wrapped add stays within the year.
	got, err = c.MonthOfYear().AddWrapField(nov, 2)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 1, 15, 9, 0, 0), got)

	// Month-end clamp.
	jan31 := utcMillis(t, 2024, 1, 31, 0, 0, 0)
	got, err = c.MonthOfYear().Add(jan31, 1)
	r.NoError(err)
	a.Equal(utcMillis(t, 2024, 2, 29, 0, 0, 0), got)

	// Leap day plus a year.
	leap := utcMillis(t, 2024, 2, 29, 0, 0, 0)
	got, err = c.Year().Add(leap, 1)
	r.NoError(err)
	a.Equal(utcMillis(t, 2025, 2, 28, 0, 0, 0), got)

	// Negative month arithmetic crosses the year boundary.
	feb := utcMillis(t, 2024, 2, 10, 0, 0, 0)
	got, err = c.MonthOfYear().Add(feb, -3)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 11, 10, 0, 0, 0), got)

	// dayOfWeek wraps within the week.
	thu := utcMillis(t, 2024, 2, 29, 0, 0, 0)
	got, err = c.DayOfWeek().AddWrapField(thu, 5)
	r.NoError(err)
	a.Equal(2, c.DayOfWeek().Get(got))
	a.Equal(utcMillis(t, 2024, 2, 27, 0, 0, 0), got)
}

func TestDurationFields(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	// Every duration kind resolves against a full chronology; only eras
	// has no arithmetic.
	for typ := field.DurationFieldType(0); typ < 12; typ++ {
		f := typ.Field(c)
		if typ == field.DurationEras {
			a.False(f.IsSupported())
			_, err := f.Add(0, 1)
			a.ErrorIs(err, types.ErrUnsupported)
			continue
		}
		a.True(f.IsSupported(), typ.Name())
	}

	a.True(c.Days().IsPrecise())
	a.False(c.Months().IsPrecise())
	a.Equal(types.MillisPerWeek, c.Weeks().UnitMillis())

	start := utcMillis(t, 2023, 1, 31, 0, 0, 0)
	end := utcMillis(t, 2023, 3, 1, 0, 0, 0)
	diff, err := c.Months().Difference(end, start)
	r.NoError(err)
	a.Equal(int64(1), diff)

	// The difference never overshoots: adding it back stays at or before
	// the minuend.
	moved, err := c.Months().Add(start, diff)
	r.NoError(err)
	a.LessOrEqual(moved, end)

	got, err := c.Centuries().Add(utcMillis(t, 1924, 6, 1, 0, 0, 0), 1)
	r.NoError(err)
	a.Equal(utcMillis(t, 2024, 6, 1, 0, 0, 0), got)

	years, err := c.Years().Difference(utcMillis(t, 2025, 3, 1, 0, 0, 0), utcMillis(t, 2024, 2, 29, 0, 0, 0))
	r.NoError(err)
	a.Equal(int64(1), years)
}

func TestRounding(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	c := ISOUTC()

	instant := utcMillis(t, 2023, 6, 15, 14, 37, 0)

	hour := c.HourOfDay()
	a.Equal(utcMillis(t, 2023, 6, 15, 14, 0, 0), hour.RoundFloor(instant))
	a.Equal(utcMillis(t, 2023, 6, 15, 15, 0, 0), hour.RoundCeiling(instant))
	a.Equal(utcMillis(t, 2023, 6, 15, 15, 0, 0), hour.RoundHalfFloor(instant))
	a.Equal(int64(37*60*1000), hour.Remainder(instant))

	// A boundary is its own floor and ceiling.
	onHour := utcMillis(t, 2023, 6, 15, 14, 0, 0)
	a.Equal(onHour, hour.RoundFloor(onHour))
	a.Equal(onHour, hour.RoundCeiling(onHour))

	// Exact half hours split by mode.
	half := utcMillis(t, 2023, 6, 15, 14, 30, 0)
	a.Equal(utcMillis(t, 2023, 6, 15, 14, 0, 0), hour.RoundHalfFloor(half))
	a.Equal(utcMillis(t, 2023, 6, 15, 15, 0, 0), hour.RoundHalfCeiling(half))
	a.Equal(utcMillis(t, 2023, 6, 15, 14, 0, 0), hour.RoundHalfEven(half))
	oddHalf := utcMillis(t, 2023, 6, 15, 15, 30, 0)
	a.Equal(utcMillis(t, 2023, 6, 15, 16, 0, 0), hour.RoundHalfEven(oddHalf))

	month := c.MonthOfYear()
	a.Equal(utcMillis(t, 2023, 6, 1, 0, 0, 0), month.RoundFloor(instant))
	a.Equal(utcMillis(t, 2023, 7, 1, 0, 0, 0), month.RoundCeiling(instant))

	year := c.Year()
	a.Equal(utcMillis(t, 2023, 1, 1, 0, 0, 0), year.RoundFloor(instant))
	a.Equal(utcMillis(t, 2024, 1, 1, 0, 0, 0), year.RoundCeiling(instant))

	// Weeks round to Monday, not to epoch-aligned seven-day buckets.
	week := c.WeekOfWeekyear()
	a.Equal(utcMillis(t, 2023, 6, 12, 0, 0, 0), week.RoundFloor(instant))
}

func TestPeriodDecomposition(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	standard := []field.DurationFieldType{
		field.DurationYears, field.DurationMonths, field.DurationWeeks,
		field.DurationDays, field.DurationHours, field.DurationMinutes,
		field.DurationSeconds, field.DurationMillis,
	}

	start := utcMillis(t, 2023, 1, 15, 6, 0, 0)
	end := utcMillis(t, 2024, 3, 22, 8, 30, 0)
	values, err := c.PeriodValues(standard, start, end)
	r.NoError(err)
	a.Equal([]int{1, 2, 1, 0, 2, 30, 0, 0}, values)

	// The vocabulary changes the answer: without months the same span is
	// expressed in weeks and days.
	values, err = c.PeriodValues([]field.DurationFieldType{
		field.DurationDays, field.DurationHours,
	}, start, end)
	r.NoError(err)
	a.Equal([]int{432, 2}, values)

	// Exact durations decompose through precise fields only.
	span := 2*types.MillisPerDay + 5*types.MillisPerHour + 250
	values, err = c.PeriodValuesOf([]field.DurationFieldType{
		field.DurationYears, field.DurationDays, field.DurationHours, field.DurationMillis,
	}, span)
	r.NoError(err)
	a.Equal([]int{0, 2, 5, 250}, values)
}

func TestAddPeriodReader(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISOUTC()

	p := periodVector{
		types:  []field.DurationFieldType{field.DurationMonths, field.DurationDays, field.DurationHours},
		values: []int{2, 3, 4},
	}
	start := utcMillis(t, 2023, 11, 28, 20, 0, 0)
	got, err := c.AddPeriod(p, start, 1)
	r.NoError(err)
	a.Equal(utcMillis(t, 2024, 2, 1, 0, 0, 0), got)

	// Negative scalar subtracts each field, still largest first.
	back, err := c.AddPeriod(p, start, -1)
	r.NoError(err)
	a.Equal(utcMillis(t, 2023, 9, 25, 16, 0, 0), back)
}

// periodVector is a bare PeriodReader for exercising the generic
// algorithms without the period package.
type periodVector struct {
	types  []field.DurationFieldType
	values []int
}

func (p periodVector) Size() int { return len(p.types) }

func (p periodVector) FieldType(i int) field.DurationFieldType { return p.types[i] }

func (p periodVector) Value(i int) int { return p.values[i] }

func eastern(t *testing.T) zone.Zone {
	t.Helper()
	spring := utcMillis(t, 2024, 3, 10, 7, 0, 0)
	fall := utcMillis(t, 2024, 11, 3, 6, 0, 0)
	z, err := zone.NewBuilder("Test/Eastern", -5*int(types.MillisPerHour), -5*int(types.MillisPerHour), "EST").
		Transition(spring, -4*int(types.MillisPerHour), -5*int(types.MillisPerHour), "EDT").
		Transition(fall, -5*int(types.MillisPerHour), -5*int(types.MillisPerHour), "EST").
		Build()
	require.NoError(t, err)
	return z
}

func TestZonedChronology(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISO(eastern(t))

	a.Equal("ISO", c.Name())
	a.Equal("Test/Eastern", c.Zone().ID())
	a.Same(ISOUTC(), c.WithUTC())

	// Wall-clock reads shift by the offset in force.
	winter := utcMillis(t, 2024, 1, 15, 3, 0, 0)
	a.Equal(22, c.HourOfDay().Get(winter))
	a.Equal(14, c.DayOfMonth().Get(winter))

	summer := utcMillis(t, 2024, 7, 15, 3, 0, 0)
	a.Equal(23, c.HourOfDay().Get(summer))

	// Building an instant interprets the fields as wall-clock time.
	got, err := c.DateTimeMillis(2024, 1, 14, 22, 0, 0, 0)
	r.NoError(err)
	a.Equal(winter, got)

	// A wall-clock reading inside the spring-forward gap does not exist.
	_, err = c.DateTimeMillis(2024, 3, 10, 2, 30, 0, 0)
	r.ErrorIs(err, types.ErrGap)

	// Setting a field into the gap fails the same way.
	before := utcMillis(t, 2024, 3, 10, 6, 30, 0) // 01:30 EST
	_, err = c.HourOfDay().Set(before, 2)
	r.ErrorIs(err, types.ErrGap)
}

func TestZonedArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	c := ISO(eastern(t))
	utc := ISOUTC()

	// Adding a day across spring-forward keeps the wall-clock time, so
	// the elapsed span is 23 hours.
	before := utcMillis(t, 2024, 3, 10, 6, 0, 0) // 01:00 EST Mar 10
	a.Equal(1, c.HourOfDay().Get(before))
	after, err := c.Days().Add(before, 1)
	r.NoError(err)
	a.Equal(1, c.HourOfDay().Get(after))
	a.Equal(11, c.DayOfMonth().Get(after))
	a.Equal(23*types.MillisPerHour, after-before)

	// Hour arithmetic is exact elapsed time, crossing the gap.
	after, err = c.Hours().Add(before, 2)
	r.NoError(err)
	a.Equal(2*types.MillisPerHour, after-before)
	a.Equal(4, c.HourOfDay().Get(after))

	// Month arithmetic counts wall-clock months even though the UTC span
	// is an hour short.
	start := utcMillis(t, 2024, 2, 15, 17, 0, 0) // 12:00 EST Feb 15
	moved, err := c.Months().Add(start, 1)
	r.NoError(err)
	a.Equal(3, c.MonthOfYear().Get(moved))
	a.Equal(12, c.HourOfDay().Get(moved))
	months, err := c.Months().Difference(moved, start)
	r.NoError(err)
	a.Equal(int64(1), months)

	// Rounding to the day floors on the local midnight, not the UTC one.
	instant := utcMillis(t, 2024, 1, 15, 3, 0, 0) // 22:00 Jan 14 local
	localMidnight := utcMillis(t, 2024, 1, 14, 5, 0, 0)
	a.Equal(localMidnight, c.DayOfMonth().RoundFloor(instant))
	a.NotEqual(utc.DayOfMonth().RoundFloor(instant), c.DayOfMonth().RoundFloor(instant))
}
