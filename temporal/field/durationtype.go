package field

import "fmt"

// DurationFieldType identifies a unit of elapsed time. The identity is
// chronology-independent; the magnitude of the unit comes from resolving
// the type against a Chronology.
type DurationFieldType int

// The twelve duration field kinds, largest first.
const (
	DurationEras DurationFieldType = iota
	DurationCenturies
	DurationWeekyears
	DurationYears
	DurationMonths
	DurationWeeks
	DurationDays
	DurationHalfdays
	DurationHours
	DurationMinutes
	DurationSeconds
	DurationMillis

	numDurationTypes = iota
)

// DurationNone marks the absence of a duration field type, for calendar
// fields with no range, such as year.
const DurationNone DurationFieldType = -1

//nolint:gochecknoglobals
var durationNames = [numDurationTypes]string{
	"eras", "centuries", "weekyears", "years", "months", "weeks",
	"days", "halfdays", "hours", "minutes", "seconds", "millis",
}

// Name returns the kind name, such as "months".
func (t DurationFieldType) Name() string {
	if t < 0 || t >= numDurationTypes {
		return fmt.Sprintf("durationFieldType(%d)", int(t))
	}
	return durationNames[t]
}

// String returns the kind name.
func (t DurationFieldType) String() string { return t.Name() }

// Field resolves this kind against a chronology. The enumeration is
// closed, so an unknown ordinal is an internal invariant violation and
// panics.
func (t DurationFieldType) Field(c Chronology) DurationField {
	switch t {
	case DurationEras:
		return c.Eras()
	case DurationCenturies:
		return c.Centuries()
	case DurationWeekyears:
		return c.Weekyears()
	case DurationYears:
		return c.Years()
	case DurationMonths:
		return c.Months()
	case DurationWeeks:
		return c.Weeks()
	case DurationDays:
		return c.Days()
	case DurationHalfdays:
		return c.Halfdays()
	case DurationHours:
		return c.Hours()
	case DurationMinutes:
		return c.Minutes()
	case DurationSeconds:
		return c.Seconds()
	case DurationMillis:
		return c.Millis()
	default:
		panic(fmt.Sprintf("field: no duration field for ordinal %d", int(t)))
	}
}

// IsSupported reports whether the chronology supports this kind.
func (t DurationFieldType) IsSupported(c Chronology) bool {
	return t.Field(c).IsSupported()
}
