package chrono

import (
	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

// zoned is the ISO chronology bound to a zone. Fields whose unit is
// shorter than a halfday are unaffected by offset transitions and pass
// through; day-and-larger fields compute in local wall-clock time and
// convert back through the zone, biased toward the pre-operation offset
// so arithmetic across an overlap stays on the same side of it.
type zoned struct {
	base *iso
	zn   zone.Zone

	durations [12]field.DurationField
	fields    [23]field.DateTimeField
}

func newZoned(base *iso, z zone.Zone) *zoned {
	c := &zoned{base: base, zn: z}

	durCache := map[field.DurationField]field.DurationField{}
	convDur := func(d field.DurationField) field.DurationField {
		if d == nil || !d.IsSupported() {
			return d
		}
		if d.IsPrecise() && d.UnitMillis() < types.MillisPerHalfday {
			return d
		}
		if w, ok := durCache[d]; ok {
			return w
		}
		w := &zonedDuration{base: d, zn: z}
		durCache[d] = w
		return w
	}
	for i := field.DurationFieldType(0); int(i) < len(c.durations); i++ {
		c.durations[i] = convDur(i.Field(base))
	}
	for i := field.DateTimeFieldType(0); int(i) < len(c.fields); i++ {
		f := i.Field(base)
		c.fields[i] = &zonedField{
			base:      f,
			zn:        z,
			unit:      convDur(f.DurationField()),
			rng:       convDur(f.RangeDurationField()),
			timeField: f.DurationField().IsPrecise() && f.DurationField().UnitMillis() < types.MillisPerHalfday,
		}
	}
	return c
}

func (c *zoned) Name() string    { return c.base.Name() }
func (c *zoned) Zone() zone.Zone { return c.zn }

func (c *zoned) WithUTC() field.Chronology { return c.base }

func (c *zoned) WithZone(z zone.Zone) field.Chronology {
	if z == nil {
		z = zone.Default()
	}
	if z == c.zn {
		return c
	}
	return c.base.WithZone(z)
}

func (c *zoned) Millis() field.DurationField    { return c.durations[field.DurationMillis] }
func (c *zoned) Seconds() field.DurationField   { return c.durations[field.DurationSeconds] }
func (c *zoned) Minutes() field.DurationField   { return c.durations[field.DurationMinutes] }
func (c *zoned) Hours() field.DurationField     { return c.durations[field.DurationHours] }
func (c *zoned) Halfdays() field.DurationField  { return c.durations[field.DurationHalfdays] }
func (c *zoned) Days() field.DurationField      { return c.durations[field.DurationDays] }
func (c *zoned) Weeks() field.DurationField     { return c.durations[field.DurationWeeks] }
func (c *zoned) Weekyears() field.DurationField { return c.durations[field.DurationWeekyears] }
func (c *zoned) Months() field.DurationField    { return c.durations[field.DurationMonths] }
func (c *zoned) Years() field.DurationField     { return c.durations[field.DurationYears] }
func (c *zoned) Centuries() field.DurationField { return c.durations[field.DurationCenturies] }
func (c *zoned) Eras() field.DurationField      { return c.durations[field.DurationEras] }

func (c *zoned) MillisOfSecond() field.DateTimeField     { return c.fields[field.MillisOfSecond] }
func (c *zoned) MillisOfDay() field.DateTimeField        { return c.fields[field.MillisOfDay] }
func (c *zoned) SecondOfMinute() field.DateTimeField     { return c.fields[field.SecondOfMinute] }
func (c *zoned) SecondOfDay() field.DateTimeField        { return c.fields[field.SecondOfDay] }
func (c *zoned) MinuteOfHour() field.DateTimeField       { return c.fields[field.MinuteOfHour] }
func (c *zoned) MinuteOfDay() field.DateTimeField        { return c.fields[field.MinuteOfDay] }
func (c *zoned) HourOfDay() field.DateTimeField          { return c.fields[field.HourOfDay] }
func (c *zoned) ClockhourOfDay() field.DateTimeField     { return c.fields[field.ClockhourOfDay] }
func (c *zoned) HourOfHalfday() field.DateTimeField      { return c.fields[field.HourOfHalfday] }
func (c *zoned) ClockhourOfHalfday() field.DateTimeField { return c.fields[field.ClockhourOfHalfday] }
func (c *zoned) HalfdayOfDay() field.DateTimeField       { return c.fields[field.HalfdayOfDay] }
func (c *zoned) DayOfWeek() field.DateTimeField          { return c.fields[field.DayOfWeek] }
func (c *zoned) DayOfMonth() field.DateTimeField         { return c.fields[field.DayOfMonth] }
func (c *zoned) DayOfYear() field.DateTimeField          { return c.fields[field.DayOfYear] }
func (c *zoned) WeekOfWeekyear() field.DateTimeField     { return c.fields[field.WeekOfWeekyear] }
func (c *zoned) Weekyear() field.DateTimeField           { return c.fields[field.Weekyear] }
func (c *zoned) WeekyearOfCentury() field.DateTimeField  { return c.fields[field.WeekyearOfCentury] }
func (c *zoned) MonthOfYear() field.DateTimeField        { return c.fields[field.MonthOfYear] }
func (c *zoned) Year() field.DateTimeField               { return c.fields[field.Year] }
func (c *zoned) YearOfEra() field.DateTimeField          { return c.fields[field.YearOfEra] }
func (c *zoned) YearOfCentury() field.DateTimeField      { return c.fields[field.YearOfCentury] }
func (c *zoned) CenturyOfEra() field.DateTimeField       { return c.fields[field.CenturyOfEra] }
func (c *zoned) Era() field.DateTimeField                { return c.fields[field.Era] }

func (c *zoned) localOf(instant int64) int64 {
	return instant + int64(c.zn.OffsetAt(instant))
}

func (c *zoned) DateMillis(year, monthOfYear, dayOfMonth int) (int64, error) {
	local, err := c.base.DateMillis(year, monthOfYear, dayOfMonth)
	if err != nil {
		return 0, err
	}
	return zone.LocalToUTC(c.zn, local, true)
}

func (c *zoned) DateTimeMillis(year, monthOfYear, dayOfMonth,
	hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int,
) (int64, error) {
	local, err := c.base.DateTimeMillis(year, monthOfYear, dayOfMonth,
		hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond)
	if err != nil {
		return 0, err
	}
	return zone.LocalToUTC(c.zn, local, true)
}

func (c *zoned) TimeMillis(instant int64,
	hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int,
) (int64, error) {
	local, err := c.base.TimeMillis(c.localOf(instant),
		hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond)
	if err != nil {
		return 0, err
	}
	return zone.LocalToUTC(c.zn, local, true)
}

func (c *zoned) Get(partial field.PartialReader, instant int64) []int {
	return getPartial(c, partial, instant)
}

func (c *zoned) Validate(partial field.PartialReader, values []int) error {
	return validatePartial(c, partial, values)
}

func (c *zoned) Set(partial field.PartialReader, instant int64) (int64, error) {
	return setPartial(c, partial, instant)
}

func (c *zoned) AddPeriod(period field.PeriodReader, instant int64, scalar int) (int64, error) {
	return addPeriod(c, period, instant, scalar)
}

func (c *zoned) PeriodValues(fieldTypes []field.DurationFieldType, start, end int64) ([]int, error) {
	return periodValuesBetween(c, fieldTypes, start, end)
}

func (c *zoned) PeriodValuesOf(fieldTypes []field.DurationFieldType, duration int64) ([]int, error) {
	return periodValuesOf(c, fieldTypes, duration)
}

// zonedDuration does calendar arithmetic in local time: convert in, run
// the UTC field, convert back by resolving the result's local offset.
type zonedDuration struct {
	base field.DurationField
	zn   zone.Zone
}

func (d *zonedDuration) Type() field.DurationFieldType { return d.base.Type() }
func (d *zonedDuration) Name() string                  { return d.base.Name() }
func (d *zonedDuration) IsSupported() bool             { return d.base.IsSupported() }
func (d *zonedDuration) IsPrecise() bool               { return d.base.IsPrecise() && d.zn.IsFixed() }
func (d *zonedDuration) UnitMillis() int64             { return d.base.UnitMillis() }

func (d *zonedDuration) localOf(instant int64) int64 {
	return instant + int64(d.zn.OffsetAt(instant))
}

func (d *zonedDuration) Value(duration, instant int64) (int64, error) {
	return d.base.Value(duration, d.localOf(instant))
}

func (d *zonedDuration) Millis(value, instant int64) (int64, error) {
	return d.base.Millis(value, d.localOf(instant))
}

func (d *zonedDuration) Add(instant, amount int64) (int64, error) {
	local, err := d.base.Add(d.localOf(instant), amount)
	if err != nil {
		return 0, err
	}
	return types.SafeSubtract(local, int64(zone.OffsetFromLocal(d.zn, local)))
}

func (d *zonedDuration) Difference(minuend, subtrahend int64) (int64, error) {
	return d.base.Difference(d.localOf(minuend), d.localOf(subtrahend))
}

// zonedField reads and writes a calendar field through local wall-clock
// time. Time-of-day fields keep the offset in force at the original
// instant; date fields resolve the offset at the result.
type zonedField struct {
	base      field.DateTimeField
	zn        zone.Zone
	unit      field.DurationField
	rng       field.DurationField
	timeField bool
}

func (f *zonedField) Type() field.DateTimeFieldType { return f.base.Type() }
func (f *zonedField) Name() string                  { return f.base.Name() }
func (f *zonedField) IsSupported() bool             { return f.base.IsSupported() }
func (f *zonedField) IsLenient() bool               { return f.base.IsLenient() }

func (f *zonedField) localOf(instant int64) int64 {
	return instant + int64(f.zn.OffsetAt(instant))
}

// fromLocal converts a computed local instant back to UTC. Time fields
// reuse the offset that produced the local instant; date fields resolve
// the offset where the result landed.
func (f *zonedField) fromLocal(local, original int64) (int64, error) {
	if f.timeField {
		return types.SafeSubtract(local, int64(f.zn.OffsetAt(original)))
	}
	return types.SafeSubtract(local, int64(zone.OffsetFromLocal(f.zn, local)))
}

func (f *zonedField) Get(instant int64) int {
	return f.base.Get(f.localOf(instant))
}

func (f *zonedField) Set(instant int64, value int) (int64, error) {
	local, err := f.base.Set(f.localOf(instant), value)
	if err != nil {
		return 0, err
	}
	result, err := zone.LocalToUTCFrom(f.zn, local, false, instant)
	if err != nil {
		return 0, err
	}
	if f.Get(result) != value {
		// The requested wall-clock reading fell into a gap.
		return 0, &types.GapError{LocalMillis: local, ZoneID: f.zn.ID()}
	}
	return result, nil
}

func (f *zonedField) Add(instant, amount int64) (int64, error) {
	local, err := f.base.Add(f.localOf(instant), amount)
	if err != nil {
		return 0, err
	}
	return f.fromLocal(local, instant)
}

func (f *zonedField) AddWrapField(instant int64, amount int) (int64, error) {
	local, err := f.base.AddWrapField(f.localOf(instant), amount)
	if err != nil {
		return 0, err
	}
	return f.fromLocal(local, instant)
}

func (f *zonedField) SetInPartial(partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	return f.base.SetInPartial(partial, index, values, value)
}

func (f *zonedField) AddToPartial(partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	return f.base.AddToPartial(partial, index, values, amount)
}

func (f *zonedField) MinimumValue() int { return f.base.MinimumValue() }
func (f *zonedField) MaximumValue() int { return f.base.MaximumValue() }

func (f *zonedField) MinimumValueAt(instant int64) int {
	return f.base.MinimumValueAt(f.localOf(instant))
}

func (f *zonedField) MaximumValueAt(instant int64) int {
	return f.base.MaximumValueAt(f.localOf(instant))
}

func (f *zonedField) MaximumValueIn(partial field.PartialReader, values []int) int {
	return f.base.MaximumValueIn(partial, values)
}

func (f *zonedField) DurationField() field.DurationField      { return f.unit }
func (f *zonedField) RangeDurationField() field.DurationField { return f.rng }

func (f *zonedField) RoundFloor(instant int64) int64 {
	local := f.base.RoundFloor(f.localOf(instant))
	result, _ := f.fromLocal(local, instant)
	return result
}

func (f *zonedField) RoundCeiling(instant int64) int64 {
	local := f.base.RoundCeiling(f.localOf(instant))
	result, _ := f.fromLocal(local, instant)
	return result
}

func (f *zonedField) RoundHalfFloor(instant int64) int64   { return roundHalfFloor(f, instant) }
func (f *zonedField) RoundHalfCeiling(instant int64) int64 { return roundHalfCeiling(f, instant) }
func (f *zonedField) RoundHalfEven(instant int64) int64    { return roundHalfEven(f, instant) }

func (f *zonedField) Remainder(instant int64) int64 {
	return f.base.Remainder(f.localOf(instant))
}
