// Package period implements the period value engine: ordered vocabularies
// of duration fields (period types) with fixed-slot index tables, and the
// immutable field vectors measured in them.
package period

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/field"
)

// ErrPeriod wraps errors returned by the period package.
var ErrPeriod = errors.New("period")

// The eight standard slots, in canonical order. Every period type maps a
// subset of these onto positions in its value array.
//
//nolint:gochecknoglobals
var standardSlots = [8]field.DurationFieldType{
	field.DurationYears,
	field.DurationMonths,
	field.DurationWeeks,
	field.DurationDays,
	field.DurationHours,
	field.DurationMinutes,
	field.DurationSeconds,
	field.DurationMillis,
}

// slotOf returns the standard slot of t, or -1 when t is not one of the
// eight primary duration kinds.
func slotOf(t field.DurationFieldType) int {
	for i, s := range standardSlots {
		if s == t {
			return i
		}
	}
	return -1
}

// Type is an ordered subset of the eight primary duration kinds. The index
// table maps each standard slot to the position of that kind in a period's
// value array, or -1 when the kind is unsupported; it is the single source
// of truth for both support and position. A Type is identified by its
// field-type array alone: two Types with identical arrays are equal
// whatever their names.
type Type struct {
	name    string
	types   []field.DurationFieldType
	indices [8]int
}

// Name returns the descriptive name of the type, such as "Standard" or
// "StandardNoYears".
func (t *Type) Name() string { return t.name }

// String returns "PeriodType[" plus the name plus "]".
func (t *Type) String() string { return "PeriodType[" + t.name + "]" }

// Size returns the number of supported fields.
func (t *Type) Size() int { return len(t.types) }

// FieldType returns the duration kind at position i of the value array.
func (t *Type) FieldType(i int) field.DurationFieldType { return t.types[i] }

// Index returns the position of kind in the value array, or -1 when
// unsupported.
func (t *Type) Index(kind field.DurationFieldType) int {
	if slot := slotOf(kind); slot >= 0 {
		return t.indices[slot]
	}
	return -1
}

// IsSupported reports whether the type carries kind.
func (t *Type) IsSupported(kind field.DurationFieldType) bool {
	return t.Index(kind) >= 0
}

// Equal reports whether t and other carry the same ordered field kinds.
// Names do not participate.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return slices.Equal(t.types, other.types)
}

// ForFields returns the period type carrying exactly the given kinds,
// which must be distinct primary kinds in canonical largest-first order.
// Types matching a standard type are returned as that type.
func ForFields(kinds ...field.DurationFieldType) (*Type, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: at least one field kind is required", ErrPeriod)
	}
	t := &Type{types: slices.Clone(kinds)}
	prev := -1
	for i, kind := range kinds {
		slot := slotOf(kind)
		if slot < 0 {
			return nil, fmt.Errorf("%w: %v is not a primary duration kind", ErrPeriod, kind)
		}
		if slot <= prev {
			return nil, fmt.Errorf("%w: field kinds must be distinct and largest first, got %v after %v",
				ErrPeriod, kind, kinds[i-1])
		}
		prev = slot
		t.indices[slot] = i
	}
	for slot := range t.indices {
		if !slices.Contains(kinds, standardSlots[slot]) {
			t.indices[slot] = -1
		}
	}

	// Prefer the canonical instance and its name when one matches.
	for _, std := range builtinTypes() {
		if t.Equal(std) {
			return std, nil
		}
	}
	var names []string
	for _, kind := range kinds {
		names = append(names, capitalize(kind.Name()))
	}
	t.name = strings.Join(names, "")
	return t, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// withFieldRemoved derives the type without the kind at the given standard
// slot. The value array shrinks by one and every index past the removed
// position shifts down, keeping the remaining indices contiguous and
// zero-based.
func (t *Type) withFieldRemoved(slot int, suffix string) *Type {
	removed := t.indices[slot]
	if removed < 0 {
		return t
	}
	derived := &Type{
		name:  t.name + suffix,
		types: slices.Delete(slices.Clone(t.types), removed, removed+1),
	}
	for i, idx := range t.indices {
		switch {
		case i == slot:
			derived.indices[i] = -1
		case idx > removed:
			derived.indices[i] = idx - 1
		default:
			derived.indices[i] = idx
		}
	}
	return derived
}

// WithYearsRemoved returns this type without years, named with a "NoYears"
// suffix; the receiver when years are already absent.
func (t *Type) WithYearsRemoved() *Type { return t.withFieldRemoved(0, "NoYears") }

// WithMonthsRemoved returns this type without months.
func (t *Type) WithMonthsRemoved() *Type { return t.withFieldRemoved(1, "NoMonths") }

// WithWeeksRemoved returns this type without weeks.
func (t *Type) WithWeeksRemoved() *Type { return t.withFieldRemoved(2, "NoWeeks") }

// WithDaysRemoved returns this type without days.
func (t *Type) WithDaysRemoved() *Type { return t.withFieldRemoved(3, "NoDays") }

// WithHoursRemoved returns this type without hours.
func (t *Type) WithHoursRemoved() *Type { return t.withFieldRemoved(4, "NoHours") }

// WithMinutesRemoved returns this type without minutes.
func (t *Type) WithMinutesRemoved() *Type { return t.withFieldRemoved(5, "NoMinutes") }

// WithSecondsRemoved returns this type without seconds.
func (t *Type) WithSecondsRemoved() *Type { return t.withFieldRemoved(6, "NoSeconds") }

// WithMillisRemoved returns this type without millis.
func (t *Type) WithMillisRemoved() *Type { return t.withFieldRemoved(7, "NoMillis") }

func mustType(name string, kinds ...field.DurationFieldType) *Type {
	t := &Type{name: name, types: kinds}
	for i := range t.indices {
		t.indices[i] = -1
	}
	for i, kind := range kinds {
		t.indices[slotOf(kind)] = i
	}
	return t
}

//nolint:gochecknoglobals
var (
	typeStandard = mustType("Standard", standardSlots[:]...)
	typeYMDTime  = mustType("YearMonthDayTime",
		field.DurationYears, field.DurationMonths, field.DurationDays,
		field.DurationHours, field.DurationMinutes, field.DurationSeconds, field.DurationMillis)
	typeYMD = mustType("YearMonthDay", field.DurationYears, field.DurationMonths, field.DurationDays)
	typeYWDTime = mustType("YearWeekDayTime",
		field.DurationYears, field.DurationWeeks, field.DurationDays,
		field.DurationHours, field.DurationMinutes, field.DurationSeconds, field.DurationMillis)
	typeYWD = mustType("YearWeekDay", field.DurationYears, field.DurationWeeks, field.DurationDays)
	typeYDTime = mustType("YearDayTime",
		field.DurationYears, field.DurationDays,
		field.DurationHours, field.DurationMinutes, field.DurationSeconds, field.DurationMillis)
	typeYD = mustType("YearDay", field.DurationYears, field.DurationDays)
	typeDayTime = mustType("DayTime",
		field.DurationDays, field.DurationHours, field.DurationMinutes,
		field.DurationSeconds, field.DurationMillis)
	typeTime = mustType("Time",
		field.DurationHours, field.DurationMinutes, field.DurationSeconds, field.DurationMillis)
	typeYears   = mustType("Years", field.DurationYears)
	typeMonths  = mustType("Months", field.DurationMonths)
	typeWeeks   = mustType("Weeks", field.DurationWeeks)
	typeDays    = mustType("Days", field.DurationDays)
	typeHours   = mustType("Hours", field.DurationHours)
	typeMinutes = mustType("Minutes", field.DurationMinutes)
	typeSeconds = mustType("Seconds", field.DurationSeconds)
	typeMillis  = mustType("Millis", field.DurationMillis)
)

func builtinTypes() []*Type {
	return []*Type{
		typeStandard, typeYMDTime, typeYMD, typeYWDTime, typeYWD,
		typeYDTime, typeYD, typeDayTime, typeTime,
		typeYears, typeMonths, typeWeeks, typeDays,
		typeHours, typeMinutes, typeSeconds, typeMillis,
	}
}

// StandardType carries all eight primary kinds.
func StandardType() *Type { return typeStandard }

// YearMonthDayTimeType carries years, months, days and the time kinds.
func YearMonthDayTimeType() *Type { return typeYMDTime }

// YearMonthDayType carries years, months and days.
func YearMonthDayType() *Type { return typeYMD }

// YearWeekDayTimeType carries years, weeks, days and the time kinds.
func YearWeekDayTimeType() *Type { return typeYWDTime }

// YearWeekDayType carries years, weeks and days.
func YearWeekDayType() *Type { return typeYWD }

// YearDayTimeType carries years, days and the time kinds.
func YearDayTimeType() *Type { return typeYDTime }

// YearDayType carries years and days.
func YearDayType() *Type { return typeYD }

// DayTimeType carries days and the time kinds.
func DayTimeType() *Type { return typeDayTime }

// TimeType carries hours, minutes, seconds and millis.
func TimeType() *Type { return typeTime }

// YearsType carries years alone.
func YearsType() *Type { return typeYears }

// MonthsType carries months alone.
func MonthsType() *Type { return typeMonths }

// WeeksType carries weeks alone.
func WeeksType() *Type { return typeWeeks }

// DaysType carries days alone.
func DaysType() *Type { return typeDays }

// HoursType carries hours alone.
func HoursType() *Type { return typeHours }

// MinutesType carries minutes alone.
func MinutesType() *Type { return typeMinutes }

// SecondsType carries seconds alone.
func SecondsType() *Type { return typeSeconds }

// MillisType carries millis alone.
func MillisType() *Type { return typeMillis }
