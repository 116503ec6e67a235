package field

import "fmt"

// DateTimeFieldType identifies a calendar field. Each kind carries the
// duration type of its unit and, unless unbounded, of its range: dayOfMonth
// counts days within months, while year counts years within nothing.
type DateTimeFieldType int

// The twenty-three calendar field kinds, largest first.
const (
	Era DateTimeFieldType = iota
	YearOfEra
	CenturyOfEra
	YearOfCentury
	Year
	DayOfYear
	MonthOfYear
	DayOfMonth
	WeekyearOfCentury
	Weekyear
	WeekOfWeekyear
	DayOfWeek
	HalfdayOfDay
	HourOfHalfday
	ClockhourOfHalfday
	ClockhourOfDay
	HourOfDay
	MinuteOfDay
	MinuteOfHour
	SecondOfDay
	SecondOfMinute
	MillisOfDay
	MillisOfSecond

	numDateTimeTypes = iota
)

// dateTimeTypeInfo fixes the name and unit/range relationship of a kind.
type dateTimeTypeInfo struct {
	name        string
	unit, rnge  DurationFieldType
}

//nolint:gochecknoglobals
var dateTimeTypes = [numDateTimeTypes]dateTimeTypeInfo{
	Era:                {"era", DurationEras, DurationNone},
	YearOfEra:          {"yearOfEra", DurationYears, DurationEras},
	CenturyOfEra:       {"centuryOfEra", DurationCenturies, DurationEras},
	YearOfCentury:      {"yearOfCentury", DurationYears, DurationCenturies},
	Year:               {"year", DurationYears, DurationNone},
	DayOfYear:          {"dayOfYear", DurationDays, DurationYears},
	MonthOfYear:        {"monthOfYear", DurationMonths, DurationYears},
	DayOfMonth:         {"dayOfMonth", DurationDays, DurationMonths},
	WeekyearOfCentury:  {"weekyearOfCentury", DurationWeekyears, DurationCenturies},
	Weekyear:           {"weekyear", DurationWeekyears, DurationNone},
	WeekOfWeekyear:     {"weekOfWeekyear", DurationWeeks, DurationWeekyears},
	DayOfWeek:          {"dayOfWeek", DurationDays, DurationWeeks},
	HalfdayOfDay:       {"halfdayOfDay", DurationHalfdays, DurationDays},
	HourOfHalfday:      {"hourOfHalfday", DurationHours, DurationHalfdays},
	ClockhourOfHalfday: {"clockhourOfHalfday", DurationHours, DurationHalfdays},
	ClockhourOfDay:     {"clockhourOfDay", DurationHours, DurationDays},
	HourOfDay:          {"hourOfDay", DurationHours, DurationDays},
	MinuteOfDay:        {"minuteOfDay", DurationMinutes, DurationDays},
	MinuteOfHour:       {"minuteOfHour", DurationMinutes, DurationHours},
	SecondOfDay:        {"secondOfDay", DurationSeconds, DurationDays},
	SecondOfMinute:     {"secondOfMinute", DurationSeconds, DurationMinutes},
	MillisOfDay:        {"millisOfDay", DurationMillis, DurationDays},
	MillisOfSecond:     {"millisOfSecond", DurationMillis, DurationSeconds},
}

// Name returns the kind name, such as "dayOfMonth".
func (t DateTimeFieldType) Name() string {
	if t < 0 || t >= numDateTimeTypes {
		return fmt.Sprintf("dateTimeFieldType(%d)", int(t))
	}
	return dateTimeTypes[t].name
}

// String returns the kind name.
func (t DateTimeFieldType) String() string { return t.Name() }

// DurationType returns the duration kind of this field's unit.
func (t DateTimeFieldType) DurationType() DurationFieldType {
	return dateTimeTypes[t].unit
}

// RangeDurationType returns the duration kind of this field's range, or
// DurationNone when the field is unbounded.
func (t DateTimeFieldType) RangeDurationType() DurationFieldType {
	return dateTimeTypes[t].rnge
}

// Field resolves this kind against a chronology. The enumeration is
// closed, so an unknown ordinal is an internal invariant violation and
// panics.
func (t DateTimeFieldType) Field(c Chronology) DateTimeField {
	switch t {
	case Era:
		return c.Era()
	case YearOfEra:
		return c.YearOfEra()
	case CenturyOfEra:
		return c.CenturyOfEra()
	case YearOfCentury:
		return c.YearOfCentury()
	case Year:
		return c.Year()
	case DayOfYear:
		return c.DayOfYear()
	case MonthOfYear:
		return c.MonthOfYear()
	case DayOfMonth:
		return c.DayOfMonth()
	case WeekyearOfCentury:
		return c.WeekyearOfCentury()
	case Weekyear:
		return c.Weekyear()
	case WeekOfWeekyear:
		return c.WeekOfWeekyear()
	case DayOfWeek:
		return c.DayOfWeek()
	case HalfdayOfDay:
		return c.HalfdayOfDay()
	case HourOfHalfday:
		return c.HourOfHalfday()
	case ClockhourOfHalfday:
		return c.ClockhourOfHalfday()
	case ClockhourOfDay:
		return c.ClockhourOfDay()
	case HourOfDay:
		return c.HourOfDay()
	case MinuteOfDay:
		return c.MinuteOfDay()
	case MinuteOfHour:
		return c.MinuteOfHour()
	case SecondOfDay:
		return c.SecondOfDay()
	case SecondOfMinute:
		return c.SecondOfMinute()
	case MillisOfDay:
		return c.MillisOfDay()
	case MillisOfSecond:
		return c.MillisOfSecond()
	default:
		panic(fmt.Sprintf("field: no datetime field for ordinal %d", int(t)))
	}
}

// IsSupported reports whether the chronology supports this kind.
func (t DateTimeFieldType) IsSupported(c Chronology) bool {
	return t.Field(c).IsSupported()
}
