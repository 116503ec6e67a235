// Package field defines the chronology-independent field vocabulary: the
// duration and calendar field kinds, the capability interfaces a concrete
// chronology implements for each kind, and the Chronology facade contract
// the rest of the engine programs against.
//
// Field kinds are closed enumerations keyed by ordinal. Dispatching a kind
// against a chronology is total: an unmapped ordinal is a programming
// error, not a user error, and panics.
package field

// DurationField measures elapsed time in one unit. A precise field has a
// fixed millisecond length (seconds, hours); an imprecise one varies with
// its position in the calendar (months, years).
type DurationField interface {
	// Type returns the kind of this field.
	Type() DurationFieldType

	// Name returns the kind name, such as "months".
	Name() string

	// IsSupported reports whether the field is usable. Operations on an
	// unsupported field return an error matching types.ErrUnsupported.
	IsSupported() bool

	// IsPrecise reports whether the unit length never varies.
	IsPrecise() bool

	// UnitMillis returns the unit length in milliseconds. For imprecise
	// fields it is an average used only for comparisons.
	UnitMillis() int64

	// Value returns how many units of this field fit in duration,
	// evaluated relative to instant for imprecise fields.
	Value(duration, instant int64) (int64, error)

	// Millis returns the millisecond span of value units of this field,
	// evaluated relative to instant for imprecise fields.
	Millis(value, instant int64) (int64, error)

	// Add returns instant moved by amount units.
	Add(instant int64, amount int64) (int64, error)

	// Difference returns the whole number of units between subtrahend and
	// minuend, such that Add(subtrahend, diff) does not overshoot
	// minuend.
	Difference(minuend, subtrahend int64) (int64, error)
}

// DateTimeField reads and writes one calendar field of an instant. All
// instants are milliseconds since the epoch in the field's own chronology
// and zone handling.
type DateTimeField interface {
	// Type returns the kind of this field.
	Type() DateTimeFieldType

	// Name returns the kind name, such as "dayOfMonth".
	Name() string

	// IsSupported reports whether the field is usable in its chronology.
	IsSupported() bool

	// IsLenient reports whether Set accepts out-of-bounds values by
	// rolling them into adjacent larger fields.
	IsLenient() bool

	// Get returns the value of this field at instant.
	Get(instant int64) int

	// Set returns instant with this field set to value. The value is
	// range-checked against the bounds in force at instant; a violation
	// reports the field name, rejected value, and bounds.
	Set(instant int64, value int) (int64, error)

	// Add returns instant moved by amount units of this field's
	// duration, overflowing into larger fields: adding 2 months to
	// November rolls into January of the following year.
	Add(instant int64, amount int64) (int64, error)

	// AddWrapField is Add confined to this field's own range: November
	// plus 2 months wrapped is January of the same year.
	AddWrapField(instant int64, amount int) (int64, error)

	// SetInPartial sets values[index] to value within the partial's own
	// value array, range-checked against the partial, returning the
	// updated array.
	SetInPartial(partial PartialReader, index int, values []int, value int) ([]int, error)

	// AddToPartial adds amount to values[index] within the partial's own
	// value array, overflowing into the partial's larger fields when
	// present and failing when the overflow has nowhere to go.
	AddToPartial(partial PartialReader, index int, values []int, amount int) ([]int, error)

	// MinimumValue and MaximumValue return the smallest and largest
	// value the field can take anywhere.
	MinimumValue() int
	MaximumValue() int

	// MinimumValueAt and MaximumValueAt return the bounds in force at
	// instant, which for a field like dayOfMonth depend on the larger
	// fields there.
	MinimumValueAt(instant int64) int
	MaximumValueAt(instant int64) int

	// MaximumValueIn returns the largest value the field can take given
	// the other values of a partial, or the global maximum when the
	// partial does not pin it down.
	MaximumValueIn(partial PartialReader, values []int) int

	// DurationField returns the field measuring this field's unit.
	DurationField() DurationField

	// RangeDurationField returns the field measuring this field's range,
	// or nil when the field is unbounded, like year.
	RangeDurationField() DurationField

	// RoundFloor rounds instant down to the highest instant at or below
	// it where this field and all smaller fields are at minimum.
	RoundFloor(instant int64) int64

	// RoundCeiling rounds instant up likewise, returning instant itself
	// when already on a boundary.
	RoundCeiling(instant int64) int64

	// RoundHalfFloor, RoundHalfCeiling and RoundHalfEven round to the
	// nearer of floor and ceiling, breaking exact halves down, up, or to
	// the even floor value respectively.
	RoundHalfFloor(instant int64) int64
	RoundHalfCeiling(instant int64) int64
	RoundHalfEven(instant int64) int64

	// Remainder returns instant minus RoundFloor(instant).
	Remainder(instant int64) int64
}

// PartialReader is a read-only view of an ordered set of calendar field
// values, largest duration first.
type PartialReader interface {
	// Size returns the number of fields.
	Size() int

	// FieldType returns the kind of the field at index i.
	FieldType(i int) DateTimeFieldType

	// Value returns the value of the field at index i.
	Value(i int) int

	// Chronology returns the chronology the values are interpreted in.
	Chronology() Chronology
}

// PeriodReader is a read-only view of an ordered set of duration field
// amounts, largest first.
type PeriodReader interface {
	// Size returns the number of fields.
	Size() int

	// FieldType returns the kind of the field at index i.
	FieldType(i int) DurationFieldType

	// Value returns the amount of the field at index i.
	Value(i int) int
}
