package field

import "github.com/aparo/temporal/temporal/zone"

// Chronology is the facade a concrete calendar system implements: one
// accessor per field kind plus the generic algorithms that assemble,
// extract and shift sets of field values. Implementations are immutable.
//
// A chronology is bound to a zone. Field accessors of a zoned chronology
// operate on local wall-clock arithmetic and delegate offset questions to
// the zone; the WithUTC variant performs pure calendar math.
type Chronology interface {
	// Name identifies the calendar system, such as "ISO".
	Name() string

	// Zone returns the zone this chronology computes in.
	Zone() zone.Zone

	// WithUTC returns this chronology computing in UTC.
	WithUTC() Chronology

	// WithZone returns this chronology computing in z. A nil z means the
	// process default zone.
	WithZone(z zone.Zone) Chronology

	// Duration fields, smallest first.
	Millis() DurationField
	Seconds() DurationField
	Minutes() DurationField
	Hours() DurationField
	Halfdays() DurationField
	Days() DurationField
	Weeks() DurationField
	Weekyears() DurationField
	Months() DurationField
	Years() DurationField
	Centuries() DurationField
	Eras() DurationField

	// Calendar fields, smallest first.
	MillisOfSecond() DateTimeField
	MillisOfDay() DateTimeField
	SecondOfMinute() DateTimeField
	SecondOfDay() DateTimeField
	MinuteOfHour() DateTimeField
	MinuteOfDay() DateTimeField
	HourOfDay() DateTimeField
	ClockhourOfDay() DateTimeField
	HourOfHalfday() DateTimeField
	ClockhourOfHalfday() DateTimeField
	HalfdayOfDay() DateTimeField
	DayOfWeek() DateTimeField
	DayOfMonth() DateTimeField
	DayOfYear() DateTimeField
	WeekOfWeekyear() DateTimeField
	Weekyear() DateTimeField
	WeekyearOfCentury() DateTimeField
	MonthOfYear() DateTimeField
	Year() DateTimeField
	YearOfEra() DateTimeField
	YearOfCentury() DateTimeField
	CenturyOfEra() DateTimeField
	Era() DateTimeField

	// DateMillis builds the instant at the given date, midnight. Each
	// field is validated against the bounds in force as it is set.
	DateMillis(year, monthOfYear, dayOfMonth int) (int64, error)

	// DateTimeMillis builds the instant at the given date and time of
	// day, validating each field largest to smallest.
	DateTimeMillis(year, monthOfYear, dayOfMonth, hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int) (int64, error)

	// TimeMillis adjusts instant to the given time of day, validating
	// each field.
	TimeMillis(instant int64, hourOfDay, minuteOfHour, secondOfMinute, millisOfSecond int) (int64, error)

	// Get extracts one value per field of partial from instant.
	Get(partial PartialReader, instant int64) []int

	// Validate checks values against partial's field bounds, tightening
	// to value-dependent bounds once the larger fields are known.
	Validate(partial PartialReader, values []int) error

	// Set writes each field value of partial onto instant.
	Set(partial PartialReader, instant int64) (int64, error)

	// AddPeriod moves instant by each field of period multiplied by
	// scalar, largest field first.
	AddPeriod(period PeriodReader, instant int64, scalar int) (int64, error)

	// PeriodValues decomposes the elapsed time between start and end
	// into the given field vocabulary, largest field first, recomputing
	// the remainder after each field so the result depends on the field
	// order.
	PeriodValues(fieldTypes []DurationFieldType, start, end int64) ([]int, error)

	// PeriodValuesOf decomposes an exact millisecond duration likewise,
	// using only precise fields.
	PeriodValuesOf(fieldTypes []DurationFieldType, duration int64) ([]int, error)
}
