package temporal

import (
	"fmt"

	"github.com/aparo/temporal/temporal/chrono"
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/period"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

// DateTime is an instant viewed through a chronology: the same
// millisecond count, plus the calendar and zone that give its fields
// meaning. A nil chronology reads as ISO in the process default zone.
type DateTime struct {
	millis int64
	chrono field.Chronology
}

// NewDateTime returns the date-time at millis in c, or in ISO with the
// process default zone when c is nil.
func NewDateTime(millis int64, c field.Chronology) DateTime {
	if c == nil {
		c = chrono.ISO(nil)
	}
	return DateTime{millis: millis, chrono: c}
}

// DateTimeOf builds a date-time from wall-clock fields in c. A field
// value outside its bounds, or a wall-clock reading inside a zone gap,
// fails.
func DateTimeOf(c field.Chronology,
	year, monthOfYear, dayOfMonth, hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int,
) (DateTime, error) {
	if c == nil {
		c = chrono.ISO(nil)
	}
	millis, err := c.DateTimeMillis(year, monthOfYear, dayOfMonth,
		hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{millis: millis, chrono: c}, nil
}

// Millis returns the underlying instant.
func (d DateTime) Millis() int64 { return d.millis }

// Instant returns the underlying instant as a value.
func (d DateTime) Instant() Instant { return Instant{millis: d.millis} }

// Chronology returns the chronology the fields are computed in.
func (d DateTime) Chronology() field.Chronology {
	if d.chrono == nil {
		return chrono.ISO(nil)
	}
	return d.chrono
}

// Zone returns the zone of the chronology.
func (d DateTime) Zone() zone.Zone { return d.Chronology().Zone() }

// Get returns the value of kind at this date-time.
func (d DateTime) Get(kind field.DateTimeFieldType) int {
	return kind.Field(d.Chronology()).Get(d.millis)
}

// Year returns the year field.
func (d DateTime) Year() int { return d.Get(field.Year) }

// MonthOfYear returns the month field, 1 through 12.
func (d DateTime) MonthOfYear() int { return d.Get(field.MonthOfYear) }

// DayOfMonth returns the day of month field.
func (d DateTime) DayOfMonth() int { return d.Get(field.DayOfMonth) }

// DayOfWeek returns the day of week, Monday 1 through Sunday 7.
func (d DateTime) DayOfWeek() int { return d.Get(field.DayOfWeek) }

// DayOfYear returns the day of year field.
func (d DateTime) DayOfYear() int { return d.Get(field.DayOfYear) }

// HourOfDay returns the hour field, 0 through 23.
func (d DateTime) HourOfDay() int { return d.Get(field.HourOfDay) }

// MinuteOfHour returns the minute field.
func (d DateTime) MinuteOfHour() int { return d.Get(field.MinuteOfHour) }

// SecondOfMinute returns the second field.
func (d DateTime) SecondOfMinute() int { return d.Get(field.SecondOfMinute) }

// MillisOfSecond returns the millisecond field.
func (d DateTime) MillisOfSecond() int { return d.Get(field.MillisOfSecond) }

// WithMillis returns the date-time at a different instant in the same
// chronology.
func (d DateTime) WithMillis(millis int64) DateTime {
	return DateTime{millis: millis, chrono: d.Chronology()}
}

// WithChronology returns the same instant viewed through c.
func (d DateTime) WithChronology(c field.Chronology) DateTime {
	return NewDateTime(d.millis, c)
}

// WithZone returns the same instant viewed in z: the wall-clock fields
// change, the instant does not.
func (d DateTime) WithZone(z zone.Zone) DateTime {
	return DateTime{millis: d.millis, chrono: d.Chronology().WithZone(z)}
}

// WithZoneRetainFields moves the instant so the wall-clock fields read
// the same in z as they did in the old zone, resolving leniently through
// any transition.
func (d DateTime) WithZoneRetainFields(z zone.Zone) (DateTime, error) {
	if z == nil {
		z = zone.Default()
	}
	millis, err := zone.MillisKeepLocal(d.Zone(), z, d.millis)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{millis: millis, chrono: d.Chronology().WithZone(z)}, nil
}

// WithField returns the date-time with kind set to value.
func (d DateTime) WithField(kind field.DateTimeFieldType, value int) (DateTime, error) {
	millis, err := kind.Field(d.Chronology()).Set(d.millis, value)
	if err != nil {
		return DateTime{}, err
	}
	return d.WithMillis(millis), nil
}

// WithFieldAdded returns the date-time with amount units of kind added,
// overflowing into larger fields.
func (d DateTime) WithFieldAdded(kind field.DateTimeFieldType, amount int64) (DateTime, error) {
	millis, err := kind.Field(d.Chronology()).Add(d.millis, amount)
	if err != nil {
		return DateTime{}, err
	}
	return d.WithMillis(millis), nil
}

// Plus returns the date-time moved forward by p.
func (d DateTime) Plus(p field.PeriodReader) (DateTime, error) {
	millis, err := d.Chronology().AddPeriod(p, d.millis, 1)
	if err != nil {
		return DateTime{}, err
	}
	return d.WithMillis(millis), nil
}

// Minus returns the date-time moved backward by p.
func (d DateTime) Minus(p field.PeriodReader) (DateTime, error) {
	millis, err := d.Chronology().AddPeriod(p, d.millis, -1)
	if err != nil {
		return DateTime{}, err
	}
	return d.WithMillis(millis), nil
}

// PlusDuration returns the date-time moved by an exact span.
func (d DateTime) PlusDuration(dur Duration) (DateTime, error) {
	millis, err := types.SafeAdd(d.millis, dur.Millis())
	if err != nil {
		return DateTime{}, err
	}
	return d.WithMillis(millis), nil
}

// Equal reports whether both date-times are the same instant in
// chronologies of the same name and zone.
func (d DateTime) Equal(o DateTime) bool {
	return d.millis == o.millis &&
		d.Chronology().Name() == o.Chronology().Name() &&
		d.Zone().ID() == o.Zone().ID()
}

// String renders the date-time in ISO-8601 form with the zone offset,
// such as "2024-02-29T15:04:05.123-05:00".
func (d DateTime) String() string {
	c := d.Chronology()
	offset := c.Zone().OffsetAt(d.millis)
	suffix := "Z"
	if offset != 0 {
		suffix = types.FormatOffset(offset)
	}
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year(), d.MonthOfYear(), d.DayOfMonth(),
		d.HourOfDay(), d.MinuteOfHour(), d.SecondOfMinute())
	if ms := d.MillisOfSecond(); ms != 0 {
		s += fmt.Sprintf(".%03d", ms)
	}
	return s + suffix
}

// PeriodBetween decomposes the span from start to end into typ's field
// vocabulary, computed in start's chronology. The standard type is used
// when typ is nil.
func PeriodBetween(start, end DateTime, typ *period.Type) (period.Period, error) {
	if typ == nil {
		typ = period.StandardType()
	}
	fieldTypes := make([]field.DurationFieldType, typ.Size())
	for i := range fieldTypes {
		fieldTypes[i] = typ.FieldType(i)
	}
	values, err := start.Chronology().PeriodValues(fieldTypes, start.Millis(), end.Millis())
	if err != nil {
		return period.Period{}, err
	}
	return period.FromValues(typ, values)
}
