package chrono

import (
	"fmt"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

func checkYear(year int64) (int, error) {
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("%w: year %d outside [%d, %d]", types.ErrOverflow, year, minYear, maxYear)
	}
	return int(year), nil
}

// monthsAdd moves instant by months of calendar. The day of month clamps
// to the length of the target month; the time of day is preserved.
func monthsAdd(instant, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	year := yearOf(instant)
	month := monthOfYearIn(instant, year)
	day := dayOfMonthIn(instant, year, month)
	millis := millisOfDayOf(instant)

	total, err := types.SafeAdd(int64(year)*12+int64(month-1), amount)
	if err != nil {
		return 0, err
	}
	newYear, err := checkYear(types.FloorDiv(total, 12))
	if err != nil {
		return 0, err
	}
	newMonth := int(types.FloorMod(total, 12)) + 1
	if max := daysInYearMonth(newYear, newMonth); day > max {
		day = max
	}
	return yearMonthDayMillis(newYear, newMonth, day) + int64(millis), nil
}

// monthsDiff counts whole months between the instants such that adding the
// result to subtrahend never passes minuend.
func monthsDiff(minuend, subtrahend int64) (int64, error) {
	minYr := yearOf(minuend)
	minMo := monthOfYearIn(minuend, minYr)
	subYr := yearOf(subtrahend)
	subMo := monthOfYearIn(subtrahend, subYr)

	diff := (int64(minYr)-int64(subYr))*12 + int64(minMo) - int64(subMo)
	minRem := minuend - yearMonthMillis(minYr, minMo)
	subRem := subtrahend - yearMonthMillis(subYr, subMo)
	switch {
	case diff > 0 && minRem < subRem:
		diff--
	case diff < 0 && minRem > subRem:
		diff++
	}
	return diff, nil
}

func yearsAdd(instant, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	target, err := types.SafeAdd(int64(yearOf(instant)), amount)
	if err != nil {
		return 0, err
	}
	year, err := checkYear(target)
	if err != nil {
		return 0, err
	}
	return setYearKeepFields(instant, year), nil
}

// yearsDiff counts whole years, balancing the extra day of a leap year so
// that 29 February to 1 March of the next year is one year, not zero.
func yearsDiff(minuend, subtrahend int64) (int64, error) {
	minYr := yearOf(minuend)
	subYr := yearOf(subtrahend)
	minRem := minuend - yearFirstDayMillis(minYr)
	subRem := subtrahend - yearFirstDayMillis(subYr)

	const feb29 = 59 * types.MillisPerDay
	if subRem >= feb29 {
		if isLeapYear(subYr) {
			if !isLeapYear(minYr) {
				subRem -= types.MillisPerDay
			}
		} else if minRem >= feb29 && isLeapYear(minYr) {
			minRem -= types.MillisPerDay
		}
	}
	diff := int64(minYr) - int64(subYr)
	if minRem < subRem {
		diff--
	}
	return diff, nil
}

// setWeekyearKeepFields rewrites the week-based year, preserving week,
// day of week and time of day, clamping week 53 when the target year is
// shorter.
func setWeekyearKeepFields(instant int64, year int) int64 {
	week := weekOfWeekyearIn(instant)
	dow := dayOfWeekOf(instant)
	millis := millisOfDayOf(instant)
	if max := weeksInYear(year); week > max {
		week = max
	}
	return firstWeekMillis(year) +
		int64(week-1)*types.MillisPerWeek +
		int64(dow-1)*types.MillisPerDay +
		int64(millis)
}

func weekyearsAdd(instant, amount int64) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	target, err := types.SafeAdd(int64(weekyearOf(instant)), amount)
	if err != nil {
		return 0, err
	}
	year, err := checkYear(target)
	if err != nil {
		return 0, err
	}
	return setWeekyearKeepFields(instant, year), nil
}

func weekyearsDiff(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		diff, err := weekyearsDiff(subtrahend, minuend)
		return -diff, err
	}
	diff := int64(weekyearOf(minuend) - weekyearOf(subtrahend))
	for diff > 0 {
		moved, err := weekyearsAdd(subtrahend, diff)
		if err != nil {
			return 0, err
		}
		if moved <= minuend {
			break
		}
		diff--
	}
	return diff, nil
}

// calField is a calendar field with calendar-dependent arithmetic,
// parameterized by hooks. The set hook receives a value already
// range-checked against [min, maxAt(instant)].
type calField struct {
	typ   field.DateTimeFieldType
	unit  field.DurationField
	rng   field.DurationField
	min   int
	max   int
	get   func(instant int64) int
	set   func(instant int64, value int) int64
	add   func(instant, amount int64) (int64, error)
	maxAt func(instant int64) int
	floor func(instant int64) int64
	ceil  func(instant int64) int64
}

func (f *calField) Type() field.DateTimeFieldType { return f.typ }
func (f *calField) Name() string                  { return f.typ.Name() }
func (f *calField) IsSupported() bool             { return true }
func (f *calField) IsLenient() bool               { return false }

func (f *calField) Get(instant int64) int { return f.get(instant) }

func (f *calField) Set(instant int64, value int) (int64, error) {
	if err := verifyBounds(f, value, f.min, f.MaximumValueAt(instant)); err != nil {
		return 0, err
	}
	return f.set(instant, value), nil
}

func (f *calField) Add(instant, amount int64) (int64, error) {
	if f.add != nil {
		return f.add(instant, amount)
	}
	return f.unit.Add(instant, amount)
}

func (f *calField) AddWrapField(instant int64, amount int) (int64, error) {
	return f.Set(instant, wrapValue(f.get(instant), amount, f.min, f.MaximumValueAt(instant)))
}

func (f *calField) SetInPartial(partial field.PartialReader, index int,
	values []int, value int,
) ([]int, error) {
	return setInPartial(f, partial, index, values, value)
}

func (f *calField) AddToPartial(partial field.PartialReader, index int,
	values []int, amount int,
) ([]int, error) {
	return addToPartial(f, partial, index, values, amount)
}

func (f *calField) MinimumValue() int          { return f.min }
func (f *calField) MaximumValue() int          { return f.max }
func (f *calField) MinimumValueAt(_ int64) int { return f.min }

func (f *calField) MaximumValueAt(instant int64) int {
	if f.maxAt != nil {
		return f.maxAt(instant)
	}
	return f.max
}

func (f *calField) MaximumValueIn(_ field.PartialReader, _ []int) int {
	return f.max
}

func (f *calField) DurationField() field.DurationField      { return f.unit }
func (f *calField) RangeDurationField() field.DurationField { return f.rng }

func (f *calField) RoundFloor(instant int64) int64 { return f.floor(instant) }

func (f *calField) RoundCeiling(instant int64) int64 {
	if f.floor(instant) == instant {
		return instant
	}
	return f.ceil(instant)
}

func (f *calField) RoundHalfFloor(instant int64) int64   { return roundHalfFloor(f, instant) }
func (f *calField) RoundHalfCeiling(instant int64) int64 { return roundHalfCeiling(f, instant) }
func (f *calField) RoundHalfEven(instant int64) int64    { return roundHalfEven(f, instant) }

func (f *calField) Remainder(instant int64) int64 {
	return instant - f.floor(instant)
}
