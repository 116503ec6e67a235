package period

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/field"
	"github.com/aparo/temporal/temporal/types"
)

// Period is an immutable vector of int field amounts measured in the kinds
// of its Type. The zero value is an empty standard period. Mutating
// operations return new values and fail with types.ErrUnsupported when
// asked to place an amount in a kind the type does not carry.
type Period struct {
	typ    *Type
	values []int
}

var _ field.PeriodReader = Period{}

// New returns a standard period with the given amounts.
func New(years, months, weeks, days, hours, minutes, seconds, millis int) Period {
	return Period{
		typ:    typeStandard,
		values: []int{years, months, weeks, days, hours, minutes, seconds, millis},
	}
}

// Zero returns the empty period of the given type, or of the standard type
// when typ is nil.
func Zero(typ *Type) Period {
	if typ == nil {
		typ = typeStandard
	}
	return Period{typ: typ, values: make([]int, typ.Size())}
}

// FromValues returns a period of the given type holding the given amounts,
// one per supported field in type order.
func FromValues(typ *Type, values []int) (Period, error) {
	if typ == nil {
		typ = typeStandard
	}
	if len(values) != typ.Size() {
		return Period{}, fmt.Errorf("%w: %s holds %d fields, got %d values",
			ErrPeriod, typ, typ.Size(), len(values))
	}
	return Period{typ: typ, values: slices.Clone(values)}, nil
}

// Years returns a period of that many years, using the years-only type.
func Years(n int) Period { return Period{typ: typeYears, values: []int{n}} }

// Months returns a period of that many months.
func Months(n int) Period { return Period{typ: typeMonths, values: []int{n}} }

// Weeks returns a period of that many weeks.
func Weeks(n int) Period { return Period{typ: typeWeeks, values: []int{n}} }

// Days returns a period of that many days.
func Days(n int) Period { return Period{typ: typeDays, values: []int{n}} }

// Hours returns a period of that many hours.
func Hours(n int) Period { return Period{typ: typeHours, values: []int{n}} }

// Minutes returns a period of that many minutes.
func Minutes(n int) Period { return Period{typ: typeMinutes, values: []int{n}} }

// Seconds returns a period of that many seconds.
func Seconds(n int) Period { return Period{typ: typeSeconds, values: []int{n}} }

// Millis returns a period of that many milliseconds.
func Millis(n int) Period { return Period{typ: typeMillis, values: []int{n}} }

// YearMonthDay returns a date period using the year-month-day type.
func YearMonthDay(years, months, days int) Period {
	return Period{typ: typeYMD, values: []int{years, months, days}}
}

// HourMinuteSecond returns a time period with no milliseconds, using the
// time type.
func HourMinuteSecond(hours, minutes, seconds int) Period {
	return Period{typ: typeTime, values: []int{hours, minutes, seconds, 0}}
}

// Type returns the period's type.
func (p Period) Type() *Type {
	if p.typ == nil {
		return typeStandard
	}
	return p.typ
}

// Size returns the number of fields the period carries.
func (p Period) Size() int { return p.Type().Size() }

// FieldType returns the duration kind at position i.
func (p Period) FieldType(i int) field.DurationFieldType { return p.Type().FieldType(i) }

// Value returns the amount at position i.
func (p Period) Value(i int) int {
	if i < 0 || i >= len(p.values) {
		return 0
	}
	return p.values[i]
}

// Values returns a copy of the value array.
func (p Period) Values() []int {
	if p.values == nil {
		return make([]int, p.Type().Size())
	}
	return slices.Clone(p.values)
}

// Get returns the amount stored for kind, zero when the kind is
// unsupported.
func (p Period) Get(kind field.DurationFieldType) int {
	return p.Value(p.Type().Index(kind))
}

// IsSupported reports whether the period's type carries kind.
func (p Period) IsSupported(kind field.DurationFieldType) bool {
	return p.Type().IsSupported(kind)
}

// GetYears returns the years amount, zero when unsupported.
func (p Period) GetYears() int { return p.Get(field.DurationYears) }

// GetMonths returns the months amount, zero when unsupported.
func (p Period) GetMonths() int { return p.Get(field.DurationMonths) }

// GetWeeks returns the weeks amount, zero when unsupported.
func (p Period) GetWeeks() int { return p.Get(field.DurationWeeks) }

// GetDays returns the days amount, zero when unsupported.
func (p Period) GetDays() int { return p.Get(field.DurationDays) }

// GetHours returns the hours amount, zero when unsupported.
func (p Period) GetHours() int { return p.Get(field.DurationHours) }

// GetMinutes returns the minutes amount, zero when unsupported.
func (p Period) GetMinutes() int { return p.Get(field.DurationMinutes) }

// GetSeconds returns the seconds amount, zero when unsupported.
func (p Period) GetSeconds() int { return p.Get(field.DurationSeconds) }

// GetMillis returns the millis amount, zero when unsupported.
func (p Period) GetMillis() int { return p.Get(field.DurationMillis) }

// With returns a period with kind set to value. Unlike WithFieldAdded, a
// zero value still requires the kind to be supported.
func (p Period) With(kind field.DurationFieldType, value int) (Period, error) {
	idx := p.Type().Index(kind)
	if idx < 0 {
		return Period{}, &types.UnsupportedError{Field: kind.Name()}
	}
	values := p.Values()
	values[idx] = value
	return Period{typ: p.Type(), values: values}, nil
}

// WithFieldAdded returns a period with value added to the amount stored for
// kind. Adding zero to an unsupported kind returns the period unchanged;
// any other amount requires support.
func (p Period) WithFieldAdded(kind field.DurationFieldType, value int) (Period, error) {
	if value == 0 {
		return p, nil
	}
	idx := p.Type().Index(kind)
	if idx < 0 {
		return Period{}, &types.UnsupportedError{Field: kind.Name()}
	}
	sum, err := types.SafeAdd(int64(p.Value(idx)), int64(value))
	if err != nil {
		return Period{}, err
	}
	v, err := types.SafeToInt(sum)
	if err != nil {
		return Period{}, err
	}
	values := p.Values()
	values[idx] = int(v)
	return Period{typ: p.Type(), values: values}, nil
}

// Plus returns the field-wise sum of p and o. Every nonzero field of o must
// be supported by p's type; p's type is retained.
func (p Period) Plus(o field.PeriodReader) (Period, error) {
	return p.merge(o, 1)
}

// Minus returns the field-wise difference of p and o under the same rules
// as Plus.
func (p Period) Minus(o field.PeriodReader) (Period, error) {
	return p.merge(o, -1)
}

func (p Period) merge(o field.PeriodReader, sign int) (Period, error) {
	if o == nil {
		return p, nil
	}
	result := p
	for i := 0; i < o.Size(); i++ {
		v, err := types.SafeMultiply(int64(o.Value(i)), int64(sign))
		if err != nil {
			return Period{}, err
		}
		vi, err := types.SafeToInt(v)
		if err != nil {
			return Period{}, err
		}
		result, err = result.WithFieldAdded(o.FieldType(i), int(vi))
		if err != nil {
			return Period{}, err
		}
	}
	return result, nil
}

// MultipliedBy returns the period with every amount multiplied by scalar.
func (p Period) MultipliedBy(scalar int) (Period, error) {
	if scalar == 1 || p.IsZero() {
		return p, nil
	}
	values := p.Values()
	for i, v := range values {
		scaled, err := types.SafeMultiply(int64(v), int64(scalar))
		if err != nil {
			return Period{}, err
		}
		si, err := types.SafeToInt(scaled)
		if err != nil {
			return Period{}, err
		}
		values[i] = int(si)
	}
	return Period{typ: p.Type(), values: values}, nil
}

// Negated returns the period with every amount negated.
func (p Period) Negated() (Period, error) {
	return p.MultipliedBy(-1)
}

// IsZero reports whether every amount is zero.
func (p Period) IsZero() bool {
	for _, v := range p.values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether p and o have equal types and equal amounts.
func (p Period) Equal(o Period) bool {
	return p.Type().Equal(o.Type()) && slices.Equal(p.Values(), o.Values())
}

// preciseMillis sums the precise fields, weeks down to millis, using the
// standard unit lengths.
func (p Period) preciseMillis() (int64, error) {
	total := int64(p.GetMillis())
	for _, f := range []struct {
		kind field.DurationFieldType
		unit int64
	}{
		{field.DurationSeconds, types.MillisPerSecond},
		{field.DurationMinutes, types.MillisPerMinute},
		{field.DurationHours, types.MillisPerHour},
		{field.DurationDays, types.MillisPerDay},
		{field.DurationWeeks, types.MillisPerWeek},
	} {
		part, err := types.SafeMultiply(int64(p.Get(f.kind)), f.unit)
		if err != nil {
			return 0, err
		}
		total, err = types.SafeAdd(total, part)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Normalized redistributes the period into typ (the standard type when
// nil): the precise fields collapse to milliseconds and are split over the
// target's precise kinds largest first; years and months collapse to total
// months and are split over the target's years and months. A period with a
// year or month amount the target cannot carry fails with
// types.ErrUnsupported.
func (p Period) Normalized(typ *Type) (Period, error) {
	if typ == nil {
		typ = typeStandard
	}
	millis, err := p.preciseMillis()
	if err != nil {
		return Period{}, err
	}
	result := Zero(typ)
	for _, f := range []struct {
		kind field.DurationFieldType
		unit int64
	}{
		{field.DurationWeeks, types.MillisPerWeek},
		{field.DurationDays, types.MillisPerDay},
		{field.DurationHours, types.MillisPerHour},
		{field.DurationMinutes, types.MillisPerMinute},
		{field.DurationSeconds, types.MillisPerSecond},
		{field.DurationMillis, 1},
	} {
		idx := typ.Index(f.kind)
		if idx < 0 {
			continue
		}
		amount := millis / f.unit
		v, err := types.SafeToInt(amount)
		if err != nil {
			return Period{}, err
		}
		result.values[idx] = int(v)
		millis -= amount * f.unit
	}

	totalMonths := int64(p.GetYears())*12 + int64(p.GetMonths())
	if totalMonths != 0 {
		if idx := typ.Index(field.DurationYears); idx >= 0 {
			years := totalMonths / 12
			v, err := types.SafeToInt(years)
			if err != nil {
				return Period{}, err
			}
			result.values[idx] = int(v)
			totalMonths -= years * 12
		}
		if idx := typ.Index(field.DurationMonths); idx >= 0 {
			v, err := types.SafeToInt(totalMonths)
			if err != nil {
				return Period{}, err
			}
			result.values[idx] = int(v)
			totalMonths = 0
		}
		if totalMonths != 0 {
			return Period{}, &types.UnsupportedError{Field: "months"}
		}
	}
	return result, nil
}

// String renders the period in ISO-8601 form, such as "P1Y2M3DT4H5M6.007S".
// The zero period renders as "PT0S".
func (p Period) String() string {
	var b strings.Builder
	b.WriteByte('P')
	writePart := func(v int, suffix byte) {
		if v != 0 {
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(suffix)
		}
	}
	writePart(p.GetYears(), 'Y')
	writePart(p.GetMonths(), 'M')
	writePart(p.GetWeeks(), 'W')
	writePart(p.GetDays(), 'D')

	hours, minutes := p.GetHours(), p.GetMinutes()
	seconds, millis := p.GetSeconds(), p.GetMillis()
	if hours != 0 || minutes != 0 || seconds != 0 || millis != 0 {
		b.WriteByte('T')
		writePart(hours, 'H')
		writePart(minutes, 'M')
		switch {
		case millis == 0:
			writePart(seconds, 'S')
		default:
			fmt.Fprintf(&b, "%d.%03dS", seconds, abs(millis))
		}
	}
	if b.Len() == 1 {
		return "PT0S"
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
