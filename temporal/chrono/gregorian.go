// Package chrono implements the ISO calendar system: proleptic Gregorian
// date math, one concrete field per field kind, and the generic algorithms
// that assemble, extract and shift sets of field values. The UTC instance
// performs pure calendar arithmetic; zone-bound instances wrap it with
// wall-clock conversion.
package chrono

import (
	"github.com/aparo/temporal/temporal/types"
)

// Supported year range. Outside it the millisecond instant arithmetic
// would overflow.
const (
	minYear = -292275054
	maxYear = 292278993
)

const (
	// Proleptic Gregorian days from 0000-01-01 to the epoch, as consumed
	// by the leap-count formula in yearFirstDayMillis.
	daysZeroToEpoch = 719527

	// 365.2425 days, the mean Gregorian year, halved to keep the year
	// estimate inside int64 when instants run to the range edges.
	halfAvgMillisPerYear = 15778476000

	// 1970 mean years, halved likewise.
	halfMillisAtEpoch = 31083597720000

	avgMillisPerMonth = 2629746000
	avgMillisPerYear  = 31556952000
)

//nolint:gochecknoglobals
var (
	minDaysBeforeMonth  = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	leapDaysBeforeMonth = [12]int64{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	minDaysInMonth      = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leapDaysInMonth     = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

func isLeapYear(year int) bool {
	return year&3 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func daysInYearMonth(year, month int) int {
	if isLeapYear(year) {
		return leapDaysInMonth[month-1]
	}
	return minDaysInMonth[month-1]
}

// yearFirstDayMillis returns the instant of 1 January, midnight, of year.
func yearFirstDayMillis(year int) int64 {
	leapYears := int64(year) / 100
	y := int64(year)
	if year < 0 {
		leapYears = ((y + 3) >> 2) - leapYears + ((leapYears + 3) >> 2) - 1
	} else {
		leapYears = (y >> 2) - leapYears + (leapYears >> 2)
		if isLeapYear(year) {
			leapYears--
		}
	}
	return (y*365 + (leapYears - daysZeroToEpoch)) * types.MillisPerDay
}

// yearOf returns the calendar year containing instant, by mean-year
// estimate plus a one-year correction in either direction.
func yearOf(instant int64) int {
	i2 := (instant >> 1) + halfMillisAtEpoch
	if i2 < 0 {
		i2 = i2 - halfAvgMillisPerYear + 1
	}
	year := int(i2 / halfAvgMillisPerYear)
	yearStart := yearFirstDayMillis(year)
	diff := instant - yearStart
	switch {
	case diff < 0:
		year--
	case diff >= 365*types.MillisPerDay:
		oneYear := int64(daysInYear(year)) * types.MillisPerDay
		if yearStart+oneYear <= instant {
			year++
		}
	}
	return year
}

func monthOfYearIn(instant int64, year int) int {
	millisInYear := instant - yearFirstDayMillis(year)
	table := &minDaysBeforeMonth
	if isLeapYear(year) {
		table = &leapDaysBeforeMonth
	}
	month := 1
	for month < 12 && millisInYear >= table[month]*types.MillisPerDay {
		month++
	}
	return month
}

func yearMonthMillis(year, month int) int64 {
	table := &minDaysBeforeMonth
	if isLeapYear(year) {
		table = &leapDaysBeforeMonth
	}
	return yearFirstDayMillis(year) + table[month-1]*types.MillisPerDay
}

func yearMonthDayMillis(year, month, day int) int64 {
	return yearMonthMillis(year, month) + int64(day-1)*types.MillisPerDay
}

func dayOfMonthIn(instant int64, year, month int) int {
	return int((instant-yearMonthMillis(year, month))/types.MillisPerDay) + 1
}

func dayOfYearIn(instant int64, year int) int {
	return int((instant-yearFirstDayMillis(year))/types.MillisPerDay) + 1
}

// dayOfWeekOf returns the ISO day of week, Monday 1 through Sunday 7. The
// epoch fell on a Thursday.
func dayOfWeekOf(instant int64) int {
	day := types.FloorDiv(instant, types.MillisPerDay)
	return int(types.FloorMod(day+3, 7)) + 1
}

func millisOfDayOf(instant int64) int {
	return int(types.FloorMod(instant, types.MillisPerDay))
}

// setYearKeepFields rewrites the year of instant, preserving day of year
// and time of day. Past February, the day of year shifts by one when
// exactly one of the two years is a leap year, keeping 29 February
// clamped to 28 February and 1 March on 1 March.
func setYearKeepFields(instant int64, year int) int64 {
	thisYear := yearOf(instant)
	if year == thisYear {
		return instant
	}
	dayOfYear := dayOfYearIn(instant, thisYear)
	millisOfDay := millisOfDayOf(instant)
	if dayOfYear > 59 {
		switch {
		case isLeapYear(thisYear) && !isLeapYear(year):
			dayOfYear--
		case !isLeapYear(thisYear) && isLeapYear(year):
			dayOfYear++
		}
	}
	return yearFirstDayMillis(year) + int64(dayOfYear-1)*types.MillisPerDay + int64(millisOfDay)
}

// firstWeekMillis returns the instant of the first day of the first ISO
// week of year, the Monday of the week containing 4 January.
func firstWeekMillis(year int) int64 {
	jan1 := yearFirstDayMillis(year)
	dow := dayOfWeekOf(jan1)
	if dow > 4 {
		return jan1 + int64(8-dow)*types.MillisPerDay
	}
	return jan1 - int64(dow-1)*types.MillisPerDay
}

// weekyearOf returns the ISO week-based year containing instant.
func weekyearOf(instant int64) int {
	year := yearOf(instant)
	switch {
	case instant < firstWeekMillis(year):
		return year - 1
	case instant >= firstWeekMillis(year + 1):
		return year + 1
	default:
		return year
	}
}

func weekOfWeekyearIn(instant int64) int {
	return int((instant-firstWeekMillis(weekyearOf(instant)))/types.MillisPerWeek) + 1
}

func weeksInYear(weekyear int) int {
	return int((firstWeekMillis(weekyear+1) - firstWeekMillis(weekyear)) / types.MillisPerWeek)
}
