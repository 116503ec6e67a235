package temporal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparo/temporal/temporal/chrono"
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/period"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

func utcMillis(t *testing.T, year, month, day, hour, min, sec int) int64 {
	t.Helper()
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC).UnixMilli()
}

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

func TestInstantAndDuration(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	epoch := NewInstant(0)
	later := NewInstant(90_000)
	a.True(epoch.Before(later))
	a.True(later.After(epoch))
	a.False(epoch.Equal(later))
	a.Equal(-1, epoch.Compare(later))
	a.Equal(0, epoch.Compare(NewInstant(0)))

	between, err := DurationBetween(epoch, later)
	r.NoError(err)
	a.Equal(int64(90_000), between.Millis())

	moved, err := epoch.Plus(between)
	r.NoError(err)
	a.True(moved.Equal(later))

	back, err := later.Minus(between)
	r.NoError(err)
	a.True(back.Equal(epoch))

	hours, err := DurationOfHours(2)
	r.NoError(err)
	a.Equal(2*types.MillisPerHour, hours.Millis())

	doubled, err := hours.MultipliedBy(2)
	r.NoError(err)
	a.Equal(4*types.MillisPerHour, doubled.Millis())

	neg, err := hours.Negated()
	r.NoError(err)
	a.Equal(-2*types.MillisPerHour, neg.Millis())
	a.True(NewDuration(0).IsZero())

	_, err = NewInstant(1).Plus(NewDuration(math.MaxInt64))
	a.ErrorIs(err, types.ErrOverflow)
}

func TestDateTimeFields(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt, err := DateTimeOf(chrono.ISOUTC(), 2024, 2, 29, 15, 4, 5, 123)
	r.NoError(err)

	a.Equal(utcMillis(t, 2024, 2, 29, 15, 4, 5)+123, dt.Millis())
	a.Equal(2024, dt.Year())
	a.Equal(2, dt.MonthOfYear())
	a.Equal(29, dt.DayOfMonth())
	a.Equal(4, dt.DayOfWeek())
	a.Equal(60, dt.DayOfYear())
	a.Equal(15, dt.HourOfDay())
	a.Equal(4, dt.MinuteOfHour())
	a.Equal(5, dt.SecondOfMinute())
	a.Equal(123, dt.MillisOfSecond())
	a.Equal(2024, dt.Get(field.Weekyear))
	a.Equal("2024-02-29T15:04:05.123Z", dt.String())

	a.Equal(dt.Millis(), dt.Instant().Millis())
	a.Equal("UTC", dt.Zone().ID())

	_, err = DateTimeOf(chrono.ISOUTC(), 2023, 2, 29, 0, 0, 0, 0)
	var rng *types.RangeError
	r.ErrorAs(err, &rng)
	a.Equal("dayOfMonth", rng.Field)
}

func TestDateTimeWith(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt, err := DateTimeOf(chrono.ISOUTC(), 2024, 1, 31, 10, 0, 0, 0)
	r.NoError(err)

	set, err := dt.WithField(field.MonthOfYear, 2)
	r.NoError(err)
	a.Equal(2, set.MonthOfYear())
	a.Equal(29, set.DayOfMonth())
	a.Equal(10, set.HourOfDay())

	added, err := dt.WithFieldAdded(field.MonthOfYear, 1)
	r.NoError(err)
	a.Equal("2024-02-29T10:00:00Z", added.String())

	_, err = dt.WithField(field.DayOfMonth, 32)
	a.ErrorIs(err, types.ErrRange)

	moved, err := dt.Plus(period.New(0, 0, 0, 1, 2, 30, 0, 0))
	r.NoError(err)
	a.Equal("2024-02-01T12:30:00Z", moved.String())

	back, err := moved.Minus(period.New(0, 0, 0, 1, 2, 30, 0, 0))
	r.NoError(err)
	a.True(back.Equal(dt))

	shifted, err := dt.PlusDuration(NewDuration(90 * types.MillisPerMinute))
	r.NoError(err)
	a.Equal("2024-01-31T11:30:00Z", shifted.String())
}

func TestDateTimeZones(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	z := eastern(t)

	utc := NewDateTime(utcMillis(t, 2024, 1, 15, 3, 0, 0), chrono.ISOUTC())
	local := utc.WithZone(z)

	// Same instant, shifted wall clock.
	a.Equal(utc.Millis(), local.Millis())
	a.Equal(22, local.HourOfDay())
	a.Equal(14, local.DayOfMonth())
	a.Equal("2024-01-14T22:00:00-05:00", local.String())

	// Keeping the fields moves the instant by the offset difference.
	kept, err := utc.WithZoneRetainFields(z)
	r.NoError(err)
	a.Equal(3, kept.HourOfDay())
	a.Equal(utc.Millis()+5*types.MillisPerHour, kept.Millis())

	// Constructing a wall clock inside the spring-forward gap fails.
	_, err = DateTimeOf(chrono.ISO(z), 2024, 3, 10, 2, 30, 0, 0)
	a.ErrorIs(err, types.ErrGap)
}

func TestPeriodBetweenDateTimes(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	start, err := DateTimeOf(chrono.ISOUTC(), 2023, 11, 28, 20, 0, 0, 0)
	r.NoError(err)
	end, err := DateTimeOf(chrono.ISOUTC(), 2024, 2, 1, 0, 30, 0, 0)
	r.NoError(err)

	p, err := PeriodBetween(start, end, nil)
	r.NoError(err)
	a.Equal(period.StandardType(), p.Type())
	a.Equal(0, p.GetYears())
	a.Equal(2, p.GetMonths())
	a.Equal(0, p.GetWeeks())
	a.Equal(3, p.GetDays())
	a.Equal(4, p.GetHours())
	a.Equal(30, p.GetMinutes())

	days, err := PeriodBetween(start, end, period.DayTimeType())
	r.NoError(err)
	a.Equal(64, days.GetDays())
	a.Equal(4, days.GetHours())

	// The decomposition is computed in the start chronology, so a span
	// across a transition counts wall-clock days.
	z := eastern(t)
	before, err := DateTimeOf(chrono.ISO(z), 2024, 3, 9, 12, 0, 0, 0)
	r.NoError(err)
	after, err := DateTimeOf(chrono.ISO(z), 2024, 3, 11, 12, 0, 0, 0)
	r.NoError(err)
	span, err := PeriodBetween(before, after, period.DayTimeType())
	r.NoError(err)
	a.Equal(2, span.GetDays())
	a.Equal(0, span.GetHours())
}

func TestMutableDateTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	base, err := DateTimeOf(chrono.ISOUTC(), 2024, 6, 12, 9, 45, 33, 500)
	r.NoError(err)
	m := NewMutableDateTime(base)

	r.NoError(m.Set(field.HourOfDay, 14))
	a.Equal(14, m.Get(field.HourOfDay))
	a.Equal(45, m.Get(field.MinuteOfHour))

	r.NoError(m.Add(field.DayOfMonth, 20))
	a.Equal(7, m.Get(field.MonthOfYear))
	a.Equal(2, m.Get(field.DayOfMonth))

	r.NoError(m.SetDate(2023, 2, 28))
	a.Equal("2023-02-28T14:45:33.500Z", m.String())

	r.NoError(m.SetTime(23, 59, 59, 999))
	a.Equal("2023-02-28T23:59:59.999Z", m.String())

	r.NoError(m.AddPeriod(period.Days(1), 1))
	a.Equal("2023-03-01T23:59:59.999Z", m.String())

	r.NoError(m.AddDuration(NewDuration(1)))
	a.Equal("2023-03-02T00:00:00Z", m.String())

	snap := m.Snapshot()
	r.NoError(m.Add(field.HourOfDay, 5))
	a.NotEqual(snap.Millis(), m.Millis())
}

func TestMutableRounding(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	base, err := DateTimeOf(chrono.ISOUTC(), 2024, 6, 12, 9, 45, 33, 500)
	r.NoError(err)
	c := base.Chronology()

	m := NewMutableDateTime(base)
	m.SetRounding(c.MinuteOfHour(), RoundFloor)
	a.Equal("2024-06-12T09:45:00Z", m.String())

	r.NoError(m.Set(field.SecondOfMinute, 59))
	a.Equal(0, m.Get(field.SecondOfMinute))

	m.SetRounding(field.HourOfDay.Field(c), RoundHalfEven)
	a.Equal("2024-06-12T10:00:00Z", m.String())

	m.SetRounding(nil, RoundNone)
	r.NoError(m.Set(field.MinuteOfHour, 17))
	a.Equal(17, m.Get(field.MinuteOfHour))
}
