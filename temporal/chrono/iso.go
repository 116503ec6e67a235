package chrono

import (
	"math"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
	"github.com/aparo/temporal/temporal/zone"
)

// Duration field singletons. All calendar math is zone-free here; the
// zoned wrapper layers wall-clock conversion on top.
//
//nolint:gochecknoglobals
var (
	durMillis   = &preciseDuration{typ: field.DurationMillis, unit: 1}
	durSeconds  = &preciseDuration{typ: field.DurationSeconds, unit: types.MillisPerSecond}
	durMinutes  = &preciseDuration{typ: field.DurationMinutes, unit: types.MillisPerMinute}
	durHours    = &preciseDuration{typ: field.DurationHours, unit: types.MillisPerHour}
	durHalfdays = &preciseDuration{typ: field.DurationHalfdays, unit: types.MillisPerHalfday}
	durDays     = &preciseDuration{typ: field.DurationDays, unit: types.MillisPerDay}
	durWeeks    = &preciseDuration{typ: field.DurationWeeks, unit: types.MillisPerWeek}

	durMonths = &impreciseDuration{
		typ: field.DurationMonths, unit: avgMillisPerMonth, add: monthsAdd, diff: monthsDiff,
	}
	durYears = &impreciseDuration{
		typ: field.DurationYears, unit: avgMillisPerYear, add: yearsAdd, diff: yearsDiff,
	}
	durWeekyears = &impreciseDuration{
		typ: field.DurationWeekyears, unit: avgMillisPerYear, add: weekyearsAdd, diff: weekyearsDiff,
	}
	durCenturies = &scaledDuration{typ: field.DurationCenturies, base: durYears, scalar: 100}
	durEras      = &unsupportedDuration{typ: field.DurationEras}
)

func eraOf(instant int64) int {
	if yearOf(instant) <= 0 {
		return 0
	}
	return 1
}

func yearOfEraOf(instant int64) int {
	y := yearOf(instant)
	if y <= 0 {
		return 1 - y
	}
	return y
}

// setYearOfEra writes a year-of-era value, preserving the era.
func setYearOfEra(instant int64, value int) int64 {
	if yearOf(instant) <= 0 {
		return setYearKeepFields(instant, 1-value)
	}
	return setYearKeepFields(instant, value)
}

func monthOf(instant int64) int {
	return monthOfYearIn(instant, yearOf(instant))
}

func setMonthKeepFields(instant int64, month int) int64 {
	year := yearOf(instant)
	day := dayOfMonthIn(instant, year, monthOfYearIn(instant, year))
	if max := daysInYearMonth(year, month); day > max {
		day = max
	}
	return yearMonthDayMillis(year, month, day) + int64(millisOfDayOf(instant))
}

func dayOfMonthOf(instant int64) int {
	year := yearOf(instant)
	return dayOfMonthIn(instant, year, monthOfYearIn(instant, year))
}

// partialValue finds the value a partial pins down for kind, if any.
func partialValue(partial field.PartialReader, values []int, kind field.DateTimeFieldType) (int, bool) {
	for i := 0; i < partial.Size(); i++ {
		if partial.FieldType(i) == kind {
			return values[i], true
		}
	}
	return 0, false
}

// Calendar field singletons.
//
//nolint:gochecknoglobals
var (
	fldMillisOfSecond = newPreciseField(field.MillisOfSecond, durMillis, durSeconds, types.MillisPerSecond, 0, 0)
	fldMillisOfDay    = newPreciseField(field.MillisOfDay, durMillis, durDays, types.MillisPerDay, 0, 0)
	fldSecondOfMinute = newPreciseField(field.SecondOfMinute, durSeconds, durMinutes, types.MillisPerMinute, 0, 0)
	fldSecondOfDay    = newPreciseField(field.SecondOfDay, durSeconds, durDays, types.MillisPerDay, 0, 0)
	fldMinuteOfHour   = newPreciseField(field.MinuteOfHour, durMinutes, durHours, types.MillisPerHour, 0, 0)
	fldMinuteOfDay    = newPreciseField(field.MinuteOfDay, durMinutes, durDays, types.MillisPerDay, 0, 0)
	fldHourOfDay      = newPreciseField(field.HourOfDay, durHours, durDays, types.MillisPerDay, 0, 0)
	fldHourOfHalfday  = newPreciseField(field.HourOfHalfday, durHours, durHalfdays, types.MillisPerHalfday, 0, 0)
	fldHalfdayOfDay   = newPreciseField(field.HalfdayOfDay, durHalfdays, durDays, types.MillisPerDay, 0, 0)

	fldClockhourOfDay     = &zeroIsMax{typ: field.ClockhourOfDay, base: fldHourOfDay, max: 24}
	fldClockhourOfHalfday = &zeroIsMax{typ: field.ClockhourOfHalfday, base: fldHourOfHalfday, max: 12}

	// The epoch fell on a Thursday; the phase shifts bucketing so weeks
	// run Monday through Sunday.
	fldDayOfWeek = newPreciseField(field.DayOfWeek, durDays, durWeeks, types.MillisPerWeek, 1, 3*types.MillisPerDay)

	fldDayOfMonth = &boundedField{
		typ:        field.DayOfMonth,
		unit:       durDays,
		rng:        durMonths,
		unitMillis: types.MillisPerDay,
		max:        31,
		get:        dayOfMonthOf,
		maxAt: func(instant int64) int {
			year := yearOf(instant)
			return daysInYearMonth(year, monthOfYearIn(instant, year))
		},
		maxIn: func(partial field.PartialReader, values []int) int {
			month, ok := partialValue(partial, values, field.MonthOfYear)
			if !ok {
				return 31
			}
			if year, ok := partialValue(partial, values, field.Year); ok {
				return daysInYearMonth(year, month)
			}
			return leapDaysInMonth[month-1]
		},
	}

	fldDayOfYear = &boundedField{
		typ:        field.DayOfYear,
		unit:       durDays,
		rng:        durYears,
		unitMillis: types.MillisPerDay,
		max:        366,
		get: func(instant int64) int {
			return dayOfYearIn(instant, yearOf(instant))
		},
		maxAt: func(instant int64) int {
			return daysInYear(yearOf(instant))
		},
		maxIn: func(partial field.PartialReader, values []int) int {
			if year, ok := partialValue(partial, values, field.Year); ok {
				return daysInYear(year)
			}
			return 366
		},
	}

	fldWeekOfWeekyear = &boundedField{
		typ:        field.WeekOfWeekyear,
		unit:       durWeeks,
		rng:        durWeekyears,
		unitMillis: types.MillisPerWeek,
		max:        53,
		get:        weekOfWeekyearIn,
		maxAt: func(instant int64) int {
			return weeksInYear(weekyearOf(instant))
		},
		maxIn: func(partial field.PartialReader, values []int) int {
			if wy, ok := partialValue(partial, values, field.Weekyear); ok {
				return weeksInYear(wy)
			}
			return 53
		},
		floor: func(instant int64) int64 {
			dayStart := instant - types.FloorMod(instant, types.MillisPerDay)
			return dayStart - int64(dayOfWeekOf(instant)-1)*types.MillisPerDay
		},
	}

	fldYear = &calField{
		typ:  field.Year,
		unit: durYears,
		min:  minYear,
		max:  maxYear,
		get:  yearOf,
		set:  setYearKeepFields,
		add:  yearsAdd,
		floor: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant))
		},
		ceil: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant) + 1)
		},
	}

	fldYearOfEra = &calField{
		typ:  field.YearOfEra,
		unit: durYears,
		rng:  durEras,
		min:  1,
		max:  maxYear,
		get:  yearOfEraOf,
		set:  setYearOfEra,
		add:  yearsAdd,
		floor: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant))
		},
		ceil: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant) + 1)
		},
	}

	fldYearOfCentury = &calField{
		typ:  field.YearOfCentury,
		unit: durYears,
		rng:  durCenturies,
		min:  0,
		max:  99,
		get: func(instant int64) int {
			return yearOfEraOf(instant) % 100
		},
		set: func(instant int64, value int) int64 {
			yoe := yearOfEraOf(instant)
			return setYearOfEra(instant, yoe-yoe%100+value)
		},
		add: yearsAdd,
		floor: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant))
		},
		ceil: func(instant int64) int64 {
			return yearFirstDayMillis(yearOf(instant) + 1)
		},
	}

	fldCenturyOfEra = &calField{
		typ:  field.CenturyOfEra,
		unit: durCenturies,
		rng:  durEras,
		min:  0,
		max:  maxYear / 100,
		get: func(instant int64) int {
			return yearOfEraOf(instant) / 100
		},
		set: func(instant int64, value int) int64 {
			yoe := yearOfEraOf(instant)
			return setYearOfEra(instant, value*100+yoe%100)
		},
		floor: func(instant int64) int64 {
			yoe := yearOfEraOf(instant)
			year := yearOf(instant)
			if year <= 0 {
				return yearFirstDayMillis(year - (99 - yoe%100))
			}
			return yearFirstDayMillis(year - yoe%100)
		},
		ceil: func(instant int64) int64 {
			yoe := yearOfEraOf(instant)
			year := yearOf(instant)
			if year <= 0 {
				return yearFirstDayMillis(year + yoe%100 + 1)
			}
			return yearFirstDayMillis(year - yoe%100 + 100)
		},
	}

	fldWeekyear = &calField{
		typ:  field.Weekyear,
		unit: durWeekyears,
		min:  minYear,
		max:  maxYear,
		get:  weekyearOf,
		set:  setWeekyearKeepFields,
		add:  weekyearsAdd,
		floor: func(instant int64) int64 {
			return firstWeekMillis(weekyearOf(instant))
		},
		ceil: func(instant int64) int64 {
			return firstWeekMillis(weekyearOf(instant) + 1)
		},
	}

	fldWeekyearOfCentury = &calField{
		typ:  field.WeekyearOfCentury,
		unit: durWeekyears,
		rng:  durCenturies,
		min:  0,
		max:  99,
		get: func(instant int64) int {
			return int(types.FloorMod(int64(weekyearOf(instant)), 100))
		},
		set: func(instant int64, value int) int64 {
			wy := weekyearOf(instant)
			base := wy - int(types.FloorMod(int64(wy), 100))
			return setWeekyearKeepFields(instant, base+value)
		},
		add: weekyearsAdd,
		floor: func(instant int64) int64 {
			return firstWeekMillis(weekyearOf(instant))
		},
		ceil: func(instant int64) int64 {
			return firstWeekMillis(weekyearOf(instant) + 1)
		},
	}

	fldMonthOfYear = &calField{
		typ:   field.MonthOfYear,
		unit:  durMonths,
		rng:   durYears,
		min:   1,
		max:   12,
		get:   monthOf,
		set:   setMonthKeepFields,
		add:   monthsAdd,
		floor: func(instant int64) int64 {
			year := yearOf(instant)
			return yearMonthMillis(year, monthOfYearIn(instant, year))
		},
		ceil: func(instant int64) int64 {
			year := yearOf(instant)
			month := monthOfYearIn(instant, year)
			if month == 12 {
				return yearFirstDayMillis(year + 1)
			}
			return yearMonthMillis(year, month+1)
		},
	}

	fldEra = &calField{
		typ:  field.Era,
		unit: durEras,
		min:  0,
		max:  1,
		get:  eraOf,
		set: func(instant int64, value int) int64 {
			if value == eraOf(instant) {
				return instant
			}
			return setYearKeepFields(instant, 1-yearOf(instant))
		},
		add: func(_, _ int64) (int64, error) {
			return 0, &types.UnsupportedError{Field: field.DurationEras.Name()}
		},
		floor: func(instant int64) int64 {
			if eraOf(instant) == 1 {
				return yearFirstDayMillis(1)
			}
			return math.MinInt64
		},
		ceil: func(instant int64) int64 {
			if eraOf(instant) == 1 {
				return math.MaxInt64
			}
			return yearFirstDayMillis(1)
		},
	}
)

// iso is the ISO chronology computing in UTC: pure proleptic Gregorian
// calendar arithmetic with ISO week rules, no zone conversion anywhere.
type iso struct{}

//nolint:gochecknoglobals
var isoUTC = &iso{}

// ISOUTC returns the ISO chronology in UTC.
func ISOUTC() field.Chronology { return isoUTC }

// ISO returns the ISO chronology computing in z, the process default zone
// when z is nil.
func ISO(z zone.Zone) field.Chronology { return isoUTC.WithZone(z) }

func (c *iso) Name() string    { return "ISO" }
func (c *iso) Zone() zone.Zone { return zone.UTC }

func (c *iso) WithUTC() field.Chronology { return c }

func (c *iso) WithZone(z zone.Zone) field.Chronology {
	if z == nil {
		z = zone.Default()
	}
	if z == zone.UTC {
		return c
	}
	return newZoned(c, z)
}

func (c *iso) Millis() field.DurationField    { return durMillis }
func (c *iso) Seconds() field.DurationField   { return durSeconds }
func (c *iso) Minutes() field.DurationField   { return durMinutes }
func (c *iso) Hours() field.DurationField     { return durHours }
func (c *iso) Halfdays() field.DurationField  { return durHalfdays }
func (c *iso) Days() field.DurationField      { return durDays }
func (c *iso) Weeks() field.DurationField     { return durWeeks }
func (c *iso) Weekyears() field.DurationField { return durWeekyears }
func (c *iso) Months() field.DurationField    { return durMonths }
func (c *iso) Years() field.DurationField     { return durYears }
func (c *iso) Centuries() field.DurationField { return durCenturies }
func (c *iso) Eras() field.DurationField      { return durEras }

func (c *iso) MillisOfSecond() field.DateTimeField     { return fldMillisOfSecond }
func (c *iso) MillisOfDay() field.DateTimeField        { return fldMillisOfDay }
func (c *iso) SecondOfMinute() field.DateTimeField     { return fldSecondOfMinute }
func (c *iso) SecondOfDay() field.DateTimeField        { return fldSecondOfDay }
func (c *iso) MinuteOfHour() field.DateTimeField       { return fldMinuteOfHour }
func (c *iso) MinuteOfDay() field.DateTimeField        { return fldMinuteOfDay }
func (c *iso) HourOfDay() field.DateTimeField          { return fldHourOfDay }
func (c *iso) ClockhourOfDay() field.DateTimeField     { return fldClockhourOfDay }
func (c *iso) HourOfHalfday() field.DateTimeField      { return fldHourOfHalfday }
func (c *iso) ClockhourOfHalfday() field.DateTimeField { return fldClockhourOfHalfday }
func (c *iso) HalfdayOfDay() field.DateTimeField       { return fldHalfdayOfDay }
func (c *iso) DayOfWeek() field.DateTimeField          { return fldDayOfWeek }
func (c *iso) DayOfMonth() field.DateTimeField         { return fldDayOfMonth }
func (c *iso) DayOfYear() field.DateTimeField          { return fldDayOfYear }
func (c *iso) WeekOfWeekyear() field.DateTimeField     { return fldWeekOfWeekyear }
func (c *iso) Weekyear() field.DateTimeField           { return fldWeekyear }
func (c *iso) WeekyearOfCentury() field.DateTimeField  { return fldWeekyearOfCentury }
func (c *iso) MonthOfYear() field.DateTimeField        { return fldMonthOfYear }
func (c *iso) Year() field.DateTimeField               { return fldYear }
func (c *iso) YearOfEra() field.DateTimeField          { return fldYearOfEra }
func (c *iso) YearOfCentury() field.DateTimeField      { return fldYearOfCentury }
func (c *iso) CenturyOfEra() field.DateTimeField       { return fldCenturyOfEra }
func (c *iso) Era() field.DateTimeField                { return fldEra }

func (c *iso) DateMillis(year, monthOfYear, dayOfMonth int) (int64, error) {
	if err := verifyBounds(fldYear, year, minYear, maxYear); err != nil {
		return 0, err
	}
	if err := verifyBounds(fldMonthOfYear, monthOfYear, 1, 12); err != nil {
		return 0, err
	}
	if err := verifyBounds(fldDayOfMonth, dayOfMonth, 1, daysInYearMonth(year, monthOfYear)); err != nil {
		return 0, err
	}
	return yearMonthDayMillis(year, monthOfYear, dayOfMonth), nil
}

func (c *iso) DateTimeMillis(year, monthOfYear, dayOfMonth,
	hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int,
) (int64, error) {
	date, err := c.DateMillis(year, monthOfYear, dayOfMonth)
	if err != nil {
		return 0, err
	}
	return c.TimeMillis(date, hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond)
}

func (c *iso) TimeMillis(instant int64,
	hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int,
) (int64, error) {
	if err := verifyBounds(fldHourOfDay, hourOfDay, 0, 23); err != nil {
		return 0, err
	}
	if err := verifyBounds(fldMinuteOfHour, minuteOfHour, 0, 59); err != nil {
		return 0, err
	}
	if err := verifyBounds(fldSecondOfMinute, secondOfMinute, 0, 59); err != nil {
		return 0, err
	}
	if err := verifyBounds(fldMillisOfSecond, millisOfSecond, 0, 999); err != nil {
		return 0, err
	}
	dayStart := instant - types.FloorMod(instant, types.MillisPerDay)
	timeOfDay := int64(hourOfDay)*types.MillisPerHour +
		int64(minuteOfHour)*types.MillisPerMinute +
		int64(secondOfMinute)*types.MillisPerSecond +
		int64(millisOfSecond)
	return types.SafeAdd(dayStart, timeOfDay)
}

func (c *iso) Get(partial field.PartialReader, instant int64) []int {
	return getPartial(c, partial, instant)
}

func (c *iso) Validate(partial field.PartialReader, values []int) error {
	return validatePartial(c, partial, values)
}

func (c *iso) Set(partial field.PartialReader, instant int64) (int64, error) {
	return setPartial(c, partial, instant)
}

func (c *iso) AddPeriod(period field.PeriodReader, instant int64, scalar int) (int64, error) {
	return addPeriod(c, period, instant, scalar)
}

func (c *iso) PeriodValues(fieldTypes []field.DurationFieldType, start, end int64) ([]int, error) {
	return periodValuesBetween(c, fieldTypes, start, end)
}

func (c *iso) PeriodValuesOf(fieldTypes []field.DurationFieldType, duration int64) ([]int, error) {
	return periodValuesOf(c, fieldTypes, duration)
}
